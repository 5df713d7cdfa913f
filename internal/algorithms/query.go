package algorithms

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"autozar_backend/internal/models"
)

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownDimension = errors.New("dimension is not valid for category")
	ErrInvalidRange     = errors.New("range minimum is greater than maximum")
	ErrInvalidSortMode  = errors.New("unknown sort mode")
	ErrInvalidPageSize  = errors.New("page size must be positive")
)

// Range is an inclusive numeric bound; either side may be absent.
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r Range) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Query is the typed filter set for one category. Enum and range
// constraints are keyed by dimension so a single dimension can be dropped
// for facet self-exclusion.
type Query struct {
	Category models.Category
	Enums    map[Dimension]string
	Ranges   map[Dimension]Range
	Text     string
	Sort     SortMode
}

// NewQuery returns an empty query for category c: every listing of c matches.
func NewQuery(c models.Category) Query {
	return Query{
		Category: c,
		Enums:    map[Dimension]string{},
		Ranges:   map[Dimension]Range{},
		Sort:     SortNewest,
	}
}

// WithEnum adds an exact-match constraint; blank values are ignored.
func (q Query) WithEnum(d Dimension, value string) Query {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	q.Enums = maps.Clone(q.Enums)
	if q.Enums == nil {
		q.Enums = map[Dimension]string{}
	}
	q.Enums[d] = value
	return q
}

// WithRange adds an inclusive numeric constraint; an open range is ignored.
func (q Query) WithRange(d Dimension, r Range) Query {
	if r.IsZero() {
		return q
	}
	q.Ranges = maps.Clone(q.Ranges)
	if q.Ranges == nil {
		q.Ranges = map[Dimension]Range{}
	}
	q.Ranges[d] = r
	return q
}

// Without returns a copy of q with every constraint on d removed.
func (q Query) Without(d Dimension) Query {
	q.Enums = maps.Clone(q.Enums)
	q.Ranges = maps.Clone(q.Ranges)
	delete(q.Enums, d)
	delete(q.Ranges, d)
	return q
}

// Validate checks the query once at the boundary so the predicates can
// trust it afterwards.
func (q Query) Validate() error {
	if !q.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}
	for d := range q.Enums {
		spec, ok := lookupDimension(q.Category, d)
		if !ok || spec.kind != enumDimension {
			return fmt.Errorf("%w: %s/%s", ErrUnknownDimension, q.Category, d)
		}
	}
	for d, r := range q.Ranges {
		spec, ok := lookupDimension(q.Category, d)
		if !ok || spec.kind != rangeDimension {
			return fmt.Errorf("%w: %s/%s", ErrUnknownDimension, q.Category, d)
		}
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return fmt.Errorf("%w: %s", ErrInvalidRange, d)
		}
	}
	if _, err := ParseSortMode(string(q.Sort)); err != nil {
		return err
	}
	return nil
}

// Predicate decides whether one listing satisfies one constraint.
type Predicate func(l *models.Listing) bool

// Predicates returns one predicate per active constraint. Absent
// constraints contribute nothing, which is the same as an always-true predicate.
func (q Query) Predicates() []Predicate {
	var preds []Predicate
	preds = append(preds, func(l *models.Listing) bool { return l.Category == q.Category })

	for d, want := range q.Enums {
		spec, ok := lookupDimension(q.Category, d)
		if !ok || spec.kind != enumDimension {
			continue
		}
		want := want
		preds = append(preds, func(l *models.Listing) bool {
			return strings.EqualFold(strings.TrimSpace(spec.enum(l)), want)
		})
	}
	for d, r := range q.Ranges {
		spec, ok := lookupDimension(q.Category, d)
		if !ok || spec.kind != rangeDimension {
			continue
		}
		r := r
		preds = append(preds, func(l *models.Listing) bool {
			return r.Contains(spec.number(l))
		})
	}
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		preds = append(preds, func(l *models.Listing) bool {
			return strings.Contains(searchHaystack(l), text)
		})
	}
	return preds
}
