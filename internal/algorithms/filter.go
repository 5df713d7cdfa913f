package algorithms

import "autozar_backend/internal/models"

// Filter returns the listings that satisfy every predicate of q, in input order.
func Filter(listings []models.Listing, q Query) []models.Listing {
	preds := q.Predicates()
	out := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if matchesAll(&listings[i], preds) {
			out = append(out, listings[i])
		}
	}
	return out
}

func matchesAll(l *models.Listing, preds []Predicate) bool {
	for _, p := range preds {
		if !p(l) {
			return false
		}
	}
	return true
}
