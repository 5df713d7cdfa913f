package algorithms

import (
	"cmp"
	"fmt"
	"slices"

	"autozar_backend/internal/models"
)

// SortMode is the user-selected secondary ordering inside a tier group.
type SortMode string

const (
	SortNewest      SortMode = "newest"
	SortPriceAsc    SortMode = "priceAsc"
	SortPriceDesc   SortMode = "priceDesc"
	SortMileageAsc  SortMode = "mileageAsc"
	SortMileageDesc SortMode = "mileageDesc"
)

// ParseSortMode accepts the empty string as the default (newest).
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case "":
		return SortNewest, nil
	case SortNewest, SortPriceAsc, SortPriceDesc, SortMileageAsc, SortMileageDesc:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortMode, s)
}

// Sort orders listings by tier rank first and mode second. The tier key is
// never overridden. The sort is stable and returns a new slice.
func Sort(listings []models.Listing, mode SortMode) []models.Listing {
	out := slices.Clone(listings)
	secondary := secondaryCompare(mode)
	slices.SortStableFunc(out, func(a, b models.Listing) int {
		if c := cmp.Compare(a.Tier.Rank(), b.Tier.Rank()); c != 0 {
			return c
		}
		return secondary(&a, &b)
	})
	return out
}

func secondaryCompare(mode SortMode) func(a, b *models.Listing) int {
	switch mode {
	case SortPriceAsc:
		return func(a, b *models.Listing) int { return cmp.Compare(a.PriceMnt, b.PriceMnt) }
	case SortPriceDesc:
		return func(a, b *models.Listing) int { return cmp.Compare(b.PriceMnt, a.PriceMnt) }
	case SortMileageAsc:
		return func(a, b *models.Listing) int { return cmp.Compare(Mileage(a), Mileage(b)) }
	case SortMileageDesc:
		return func(a, b *models.Listing) int { return cmp.Compare(Mileage(b), Mileage(a)) }
	default:
		return func(a, b *models.Listing) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

// Mileage returns the odometer reading for categories that have one, else 0.
func Mileage(l *models.Listing) int64 {
	switch {
	case l.Vehicle != nil:
		return l.Vehicle.MileageKm
	case l.Motorcycle != nil:
		return l.Motorcycle.MileageKm
	}
	return 0
}
