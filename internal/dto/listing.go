package dto

import (
	"strconv"
	"time"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/models"
)

// SubmitListingRequest is the seller form. Exactly one attribute set must be
// present and it must match Category.
type SubmitListingRequest struct {
	Category    models.Category `json:"category" validate:"required,is-category"`
	Title       string          `json:"title" validate:"max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Region      string          `json:"region" validate:"required,max=100"`
	PriceMnt    int64           `json:"priceMnt" validate:"min=0"`
	Contact     models.Contact  `json:"contact"`
	Media       []string        `json:"media" validate:"max=20,dive,max=500"`

	Vehicle       *models.VehicleAttrs       `json:"vehicle,omitempty"`
	Motorcycle    *models.MotorcycleAttrs    `json:"motorcycle,omitempty"`
	Tire          *models.TireAttrs          `json:"tire,omitempty"`
	Part          *models.PartAttrs          `json:"part,omitempty"`
	Rental        *models.RentalAttrs        `json:"rental,omitempty"`
	ServiceCenter *models.ServiceCenterAttrs `json:"serviceCenter,omitempty"`
}

// ToListing copies the form into a listing envelope. Identity, status and
// timestamps are left for the lifecycle to assign.
func (r *SubmitListingRequest) ToListing() models.Listing {
	l := models.Listing{
		Category:      r.Category,
		Title:         r.Title,
		Description:   r.Description,
		Region:        r.Region,
		PriceMnt:      r.PriceMnt,
		Contact:       r.Contact,
		Media:         r.Media,
		Vehicle:       r.Vehicle,
		Motorcycle:    r.Motorcycle,
		Tire:          r.Tire,
		Part:          r.Part,
		Rental:        r.Rental,
		ServiceCenter: r.ServiceCenter,
	}
	return l.Clone()
}

// ConfirmPaymentRequest is the payment gateway success event.
type ConfirmPaymentRequest struct {
	Tier         models.Tier          `json:"tier" validate:"required,is-tier"`
	DurationDays int                  `json:"durationDays" validate:"required,min=1,max=365"`
	Method       models.PaymentMethod `json:"method" validate:"required,is-payment-method"`
	AmountMnt    int64                `json:"amountMnt" validate:"min=0"`
}

func (r *ConfirmPaymentRequest) ToPlan() models.Plan {
	return models.Plan{
		Tier:         r.Tier,
		DurationDays: r.DurationDays,
		Method:       r.Method,
		AmountMnt:    r.AmountMnt,
	}
}

type ModerateRequest struct {
	Outcome models.ModerationOutcome `json:"outcome" validate:"required,is-moderation-outcome"`
	Reason  string                   `json:"reason" validate:"max=500"`
}

// Publication is the result of a successful payment confirmation.
type Publication struct {
	ListingID   string               `json:"listingId"`
	Status      models.ListingStatus `json:"status"`
	Tier        models.Tier          `json:"tier"`
	PublishedAt time.Time            `json:"publishedAt"`
	ExpiresAt   time.Time            `json:"expiresAt"`
}

// ListItemView is the card shown in search results.
type ListItemView struct {
	ID          string            `json:"id"`
	Category    models.Category   `json:"category"`
	Tier        models.Tier       `json:"tier,omitempty"`
	Title       string            `json:"title"`
	PriceMnt    int64             `json:"priceMnt"`
	Region      string            `json:"region"`
	RegionGroup string            `json:"regionGroup"`
	Cover       string            `json:"cover"`
	CreatedAt   time.Time         `json:"createdAt"`
	ExpiresAt   *time.Time        `json:"expiresAt,omitempty"`
	Summary     map[string]string `json:"summary,omitempty"`
}

// NewListItemView projects a listing to its card. placeholder is used when
// the listing carries no media.
func NewListItemView(l *models.Listing, placeholder string) ListItemView {
	cover := placeholder
	if len(l.Media) > 0 && l.Media[0] != "" {
		cover = l.Media[0]
	}
	return ListItemView{
		ID:          l.ID,
		Category:    l.Category,
		Tier:        l.Tier,
		Title:       algorithms.DisplayTitle(l),
		PriceMnt:    l.PriceMnt,
		Region:      l.Region,
		RegionGroup: algorithms.RegionGroup(l.Region),
		Cover:       cover,
		CreatedAt:   l.CreatedAt,
		ExpiresAt:   l.ExpiresAt,
		Summary:     summarize(l),
	}
}

func summarize(l *models.Listing) map[string]string {
	s := map[string]string{}
	put := func(k, v string) {
		if v != "" && v != "0" {
			s[k] = v
		}
	}
	switch {
	case l.Vehicle != nil:
		put("year", itoa(l.Vehicle.Year))
		put("mileageKm", itoa64(l.Vehicle.MileageKm))
		put("fuel", l.Vehicle.Fuel)
		put("transmission", l.Vehicle.Transmission)
	case l.Motorcycle != nil:
		put("year", itoa(l.Motorcycle.Year))
		put("mileageKm", itoa64(l.Motorcycle.MileageKm))
		put("engineCc", itoa(l.Motorcycle.EngineCc))
	case l.Tire != nil:
		put("size", algorithms.TireSize(l.Tire))
		put("season", l.Tire.Season)
		put("condition", l.Tire.Condition)
	case l.Part != nil:
		put("partType", l.Part.PartType)
		put("condition", l.Part.Condition)
	case l.Rental != nil:
		put("year", itoa(l.Rental.Year))
		put("seats", itoa(l.Rental.Seats))
		put("transmission", l.Rental.Transmission)
	case l.ServiceCenter != nil:
		put("serviceType", l.ServiceCenter.ServiceType)
		put("rating", strconv.FormatFloat(l.ServiceCenter.Rating, 'f', 1, 64))
	}
	if len(s) == 0 {
		return nil
	}
	return s
}

func itoa(v int) string     { return strconv.Itoa(v) }
func itoa64(v int64) string { return strconv.FormatInt(v, 10) }

// ListingDetail is the full record plus derived presentation fields.
type ListingDetail struct {
	*models.Listing
	DisplayTitle string `json:"displayTitle"`
	RegionGroup  string `json:"regionGroup"`
	Expired      bool   `json:"expired"`
}

func NewListingDetail(l *models.Listing, now time.Time) *ListingDetail {
	if l == nil {
		return nil
	}
	return &ListingDetail{
		Listing:      l,
		DisplayTitle: algorithms.DisplayTitle(l),
		RegionGroup:  algorithms.RegionGroup(l.Region),
		Expired:      l.Expired(now),
	}
}
