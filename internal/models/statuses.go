package models

type Category string
type ListingStatus string
type Tier string
type PaymentStatus string
type PaymentMethod string
type ModerationOutcome string
type UserRole string

const (
	CategoryVehicle       Category = "vehicle"
	CategoryMotorcycle    Category = "motorcycle"
	CategoryTire          Category = "tire"
	CategoryPart          Category = "part"
	CategoryRental        Category = "rental"
	CategoryServiceCenter Category = "service_center"

	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusReviewing ListingStatus = "reviewing"
	ListingStatusPublished ListingStatus = "published"
	ListingStatusRejected  ListingStatus = "rejected"
	ListingStatusDeleted   ListingStatus = "deleted"

	TierGold    Tier = "gold"
	TierSilver  Tier = "silver"
	TierGeneral Tier = "general"

	PaymentStatusPaid PaymentStatus = "paid"

	PaymentMethodQPay      PaymentMethod = "qpay"
	PaymentMethodSocialPay PaymentMethod = "socialpay"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodBank      PaymentMethod = "bank"

	ModerationReview ModerationOutcome = "review"
	ModerationReject ModerationOutcome = "reject"

	UserRoleSeller UserRole = "seller"
	UserRoleAdmin  UserRole = "admin"
)

// Categories is the closed set of listing categories in display order.
var Categories = []Category{
	CategoryVehicle,
	CategoryMotorcycle,
	CategoryTire,
	CategoryPart,
	CategoryRental,
	CategoryServiceCenter,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryVehicle, CategoryMotorcycle, CategoryTire, CategoryPart, CategoryRental, CategoryServiceCenter:
		return true
	}
	return false
}

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusReviewing, ListingStatusPublished, ListingStatusRejected, ListingStatusDeleted:
		return true
	}
	return false
}

func (t Tier) Valid() bool {
	switch t {
	case TierGold, TierSilver, TierGeneral:
		return true
	}
	return false
}

// Rank is the primary display priority: gold first, unknown tiers last.
func (t Tier) Rank() int {
	switch t {
	case TierGold:
		return 0
	case TierSilver:
		return 1
	case TierGeneral:
		return 2
	default:
		return 3
	}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodQPay, PaymentMethodSocialPay, PaymentMethodCard, PaymentMethodBank:
		return true
	}
	return false
}

func (o ModerationOutcome) Valid() bool {
	return o == ModerationReview || o == ModerationReject
}
