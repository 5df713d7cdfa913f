package models

import (
	"time"
)

// Listing is the common envelope shared by every category. Exactly one of
// the attribute sets is populated and it must match Category.
type Listing struct {
	ID           string        `json:"id" validate:"required"`
	Category     Category      `json:"category" validate:"required,is-category"`
	OwnerID      string        `json:"ownerId,omitempty"`
	Status       ListingStatus `json:"status" validate:"required,is-listing-status"`
	Tier         Tier          `json:"tier,omitempty" validate:"omitempty,is-tier"`
	CreatedAt    time.Time     `json:"createdAt"`
	PublishedAt  *time.Time    `json:"publishedAt,omitempty"`
	DurationDays int           `json:"durationDays,omitempty" validate:"min=0"`
	ExpiresAt    *time.Time    `json:"expiresAt,omitempty"`

	Title       string   `json:"title,omitempty" validate:"max=200"`
	Description string   `json:"description,omitempty"`
	Region      string   `json:"region"`
	PriceMnt    int64    `json:"priceMnt" validate:"min=0"`
	Contact     Contact  `json:"contact"`
	Media       []string `json:"media,omitempty"`

	Vehicle       *VehicleAttrs       `json:"vehicle,omitempty" validate:"omitempty"`
	Motorcycle    *MotorcycleAttrs    `json:"motorcycle,omitempty" validate:"omitempty"`
	Tire          *TireAttrs          `json:"tire,omitempty" validate:"omitempty"`
	Part          *PartAttrs          `json:"part,omitempty" validate:"omitempty"`
	Rental        *RentalAttrs        `json:"rental,omitempty" validate:"omitempty"`
	ServiceCenter *ServiceCenterAttrs `json:"serviceCenter,omitempty" validate:"omitempty"`
}

type Contact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsExpired reports whether a published listing's window has closed at now.
// Expiration is never stored; it is derived on every read.
func IsExpired(status ListingStatus, expiresAt *time.Time, now time.Time) bool {
	return status == ListingStatusPublished && expiresAt != nil && !expiresAt.After(now)
}

func (l *Listing) Expired(now time.Time) bool {
	return IsExpired(l.Status, l.ExpiresAt, now)
}

// Visible reports whether the listing belongs in public query results.
func (l *Listing) Visible(now time.Time) bool {
	return l.Status == ListingStatusPublished && !l.Expired(now)
}

// WindowConsistent reports whether a published listing's expiry, when set,
// falls after its publication time.
func (l *Listing) WindowConsistent() bool {
	if l.Status != ListingStatusPublished || l.ExpiresAt == nil {
		return true
	}
	return l.PublishedAt != nil && l.ExpiresAt.After(*l.PublishedAt)
}

// HasAttributesFor reports whether the populated attribute set matches the category.
func (l *Listing) HasAttributesFor(c Category) bool {
	set := 0
	for _, present := range []bool{
		l.Vehicle != nil, l.Motorcycle != nil, l.Tire != nil,
		l.Part != nil, l.Rental != nil, l.ServiceCenter != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return false
	}
	switch c {
	case CategoryVehicle:
		return l.Vehicle != nil
	case CategoryMotorcycle:
		return l.Motorcycle != nil
	case CategoryTire:
		return l.Tire != nil
	case CategoryPart:
		return l.Part != nil
	case CategoryRental:
		return l.Rental != nil
	case CategoryServiceCenter:
		return l.ServiceCenter != nil
	}
	return false
}

// Clone returns a deep copy so lifecycle transitions can replace whole records.
func (l Listing) Clone() Listing {
	out := l
	if l.PublishedAt != nil {
		t := *l.PublishedAt
		out.PublishedAt = &t
	}
	if l.ExpiresAt != nil {
		t := *l.ExpiresAt
		out.ExpiresAt = &t
	}
	if l.Media != nil {
		out.Media = append([]string(nil), l.Media...)
	}
	if l.Vehicle != nil {
		v := *l.Vehicle
		out.Vehicle = &v
	}
	if l.Motorcycle != nil {
		v := *l.Motorcycle
		out.Motorcycle = &v
	}
	if l.Tire != nil {
		v := *l.Tire
		out.Tire = &v
	}
	if l.Part != nil {
		v := *l.Part
		out.Part = &v
	}
	if l.Rental != nil {
		v := *l.Rental
		out.Rental = &v
	}
	if l.ServiceCenter != nil {
		v := *l.ServiceCenter
		out.ServiceCenter = &v
	}
	return out
}
