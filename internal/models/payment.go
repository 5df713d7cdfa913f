package models

import "time"

// PaymentRecord is one entry of the append-only payment log.
type PaymentRecord struct {
	ID           string        `json:"id"`
	ListingID    string        `json:"listingId"`
	Method       PaymentMethod `json:"method"`
	Tier         Tier          `json:"tier"`
	DurationDays int           `json:"durationDays"`
	AmountMnt    int64         `json:"amountMnt"`
	Status       PaymentStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Plan is a purchased publication plan as reported by the payment gateway.
type Plan struct {
	Tier         Tier          `json:"tier"`
	DurationDays int           `json:"durationDays"`
	Method       PaymentMethod `json:"method"`
	AmountMnt    int64         `json:"amountMnt"`
}

// PlanOption is one purchasable tier/duration pair in the public catalog.
type PlanOption struct {
	Tier         Tier  `json:"tier"`
	DurationDays int   `json:"durationDays"`
	PriceMnt     int64 `json:"priceMnt"`
}

// PlanCatalog lists the tiers sellers can buy. Prices are informational;
// the gateway remains the price authority.
var PlanCatalog = []PlanOption{
	{Tier: TierGold, DurationDays: 5, PriceMnt: 8000},
	{Tier: TierGold, DurationDays: 15, PriceMnt: 20000},
	{Tier: TierGold, DurationDays: 30, PriceMnt: 35000},
	{Tier: TierSilver, DurationDays: 5, PriceMnt: 5000},
	{Tier: TierSilver, DurationDays: 15, PriceMnt: 12000},
	{Tier: TierSilver, DurationDays: 30, PriceMnt: 20000},
	{Tier: TierGeneral, DurationDays: 30, PriceMnt: 0},
}
