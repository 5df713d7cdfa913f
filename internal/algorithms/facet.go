package algorithms

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"autozar_backend/internal/models"
)

type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facet counts listings per value of d under every constraint of q except
// d's own. Selecting a value for d therefore never shrinks d's own counts.
// Listings without a value for d are not counted. Values that differ only in
// case or surrounding space share a bucket, shown with the first spelling seen.
func Facet(listings []models.Listing, q Query, d Dimension) ([]FacetCount, error) {
	spec, ok := lookupDimension(q.Category, d)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownDimension, q.Category, d)
	}

	matched := Filter(listings, q.Without(d))

	buckets := make(map[string]int)
	var out []FacetCount
	for i := range matched {
		v := strings.TrimSpace(spec.facetValue(&matched[i]))
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if j, ok := buckets[key]; ok {
			out[j].Count++
			continue
		}
		buckets[key] = len(out)
		out = append(out, FacetCount{Value: v, Count: 1})
	}
	if out == nil {
		out = []FacetCount{}
	}
	slices.SortFunc(out, func(a, b FacetCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out, nil
}
