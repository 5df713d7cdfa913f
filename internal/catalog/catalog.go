package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"autozar_backend/internal/models"
)

//go:embed seed/*.json
var seedFS embed.FS

// Catalog is the static, read-only listing source merged ahead of persisted
// publications.
type Catalog interface {
	Listings(c models.Category) []models.Listing
}

// Static is an in-memory catalog keyed by category.
type Static struct {
	byCategory map[models.Category][]models.Listing
}

// NewStatic groups ls by category. Listings are copied.
func NewStatic(ls []models.Listing) *Static {
	s := &Static{byCategory: make(map[models.Category][]models.Listing)}
	for _, l := range ls {
		s.byCategory[l.Category] = append(s.byCategory[l.Category], l.Clone())
	}
	return s
}

// Load parses the embedded seed files, one per category.
func Load() (*Static, error) {
	var all []models.Listing
	for _, c := range models.Categories {
		file := path.Join("seed", string(c)+".json")
		raw, err := seedFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", file, err)
		}

		var ls []models.Listing
		if err := json.Unmarshal(raw, &ls); err != nil {
			return nil, fmt.Errorf("parse seed %s: %w", file, err)
		}
		for i := range ls {
			if ls[i].Category != c || !ls[i].HasAttributesFor(c) {
				return nil, fmt.Errorf("seed %s: listing %q does not belong to %s", file, ls[i].ID, c)
			}
		}
		all = append(all, ls...)
	}
	return NewStatic(all), nil
}

// MustLoad panics when the embedded seed is broken.
func MustLoad() *Static {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Listings returns copies of the catalog entries for c in file order.
func (s *Static) Listings(c models.Category) []models.Listing {
	src := s.byCategory[c]
	out := make([]models.Listing, len(src))
	for i := range src {
		out[i] = src[i].Clone()
	}
	return out
}

// Empty is a catalog with no entries.
type Empty struct{}

func (Empty) Listings(models.Category) []models.Listing { return nil }
