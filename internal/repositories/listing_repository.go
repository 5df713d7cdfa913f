package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"autozar_backend/internal/models"
	"autozar_backend/internal/storage"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	// ErrMalformedRecord marks a located record whose body does not decode.
	ErrMalformedRecord = errors.New("malformed listing record")
)

// ListingRepository stores user listings as one JSON array per category.
// Elements that do not decode are preserved untouched on every write.
type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Listing, error)

	// Mutate loads the listing, applies fn to a copy and replaces the whole
	// record. Nothing is written when fn fails. Calls are serialized.
	Mutate(ctx context.Context, id string, fn func(l *models.Listing) error) (*models.Listing, error)

	// RawRecords returns the undecoded array elements for a category.
	RawRecords(ctx context.Context, c models.Category) ([]json.RawMessage, error)
}

type ListingRepositoryImpl struct {
	kv storage.KV
	mu sync.Mutex
}

func NewListingRepository(kv storage.KV) ListingRepository {
	return &ListingRepositoryImpl{kv: kv}
}

// recordHeader is the part of a stored record needed to locate it.
type recordHeader struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
}

func (r *ListingRepositoryImpl) Create(ctx context.Context, l *models.Listing) error {
	if !l.Category.Valid() {
		return fmt.Errorf("create listing: unknown category %q", l.Category)
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode listing %s: %w", l.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := ListingsKey(l.Category)
	records, err := r.load(ctx, key)
	if err != nil {
		return err
	}
	records = append(records, raw)
	return storeJSON(ctx, r.kv, key, records)
}

func (r *ListingRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	for _, c := range models.Categories {
		records, err := r.loadReadable(ctx, ListingsKey(c))
		if err != nil {
			return nil, err
		}
		if i := indexOf(records, id); i >= 0 {
			var l models.Listing
			if err := json.Unmarshal(records[i], &l); err != nil {
				return nil, fmt.Errorf("decode listing %s: %w: %v", id, ErrMalformedRecord, err)
			}
			return &l, nil
		}
	}
	return nil, ErrListingNotFound
}

func (r *ListingRepositoryImpl) FindByOwner(ctx context.Context, ownerID string) ([]models.Listing, error) {
	var out []models.Listing
	for _, c := range models.Categories {
		records, err := r.loadReadable(ctx, ListingsKey(c))
		if err != nil {
			return nil, err
		}
		for _, raw := range records {
			var h recordHeader
			if json.Unmarshal(raw, &h) != nil || h.OwnerID != ownerID {
				continue
			}
			var l models.Listing
			if err := json.Unmarshal(raw, &l); err != nil {
				continue
			}
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *ListingRepositoryImpl) Mutate(ctx context.Context, id string, fn func(l *models.Listing) error) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range models.Categories {
		key := ListingsKey(c)
		records, err := r.loadReadable(ctx, key)
		if err != nil {
			return nil, err
		}
		i := indexOf(records, id)
		if i < 0 {
			continue
		}

		var current models.Listing
		if err := json.Unmarshal(records[i], &current); err != nil {
			return nil, fmt.Errorf("decode listing %s: %w: %v", id, ErrMalformedRecord, err)
		}
		next := current.Clone()
		if err := fn(&next); err != nil {
			return nil, err
		}

		raw, err := json.Marshal(&next)
		if err != nil {
			return nil, fmt.Errorf("encode listing %s: %w", id, err)
		}
		records[i] = raw
		if err := storeJSON(ctx, r.kv, key, records); err != nil {
			return nil, err
		}
		return &next, nil
	}
	return nil, ErrListingNotFound
}

func (r *ListingRepositoryImpl) RawRecords(ctx context.Context, c models.Category) ([]json.RawMessage, error) {
	return r.load(ctx, ListingsKey(c))
}

func (r *ListingRepositoryImpl) load(ctx context.Context, key string) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := loadJSON(ctx, r.kv, key, &records); err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return records, nil
}

// loadReadable treats a corrupt namespace as empty.
func (r *ListingRepositoryImpl) loadReadable(ctx context.Context, key string) ([]json.RawMessage, error) {
	records, err := r.load(ctx, key)
	if errors.Is(err, ErrCorruptBlob) {
		return nil, nil
	}
	return records, err
}

func indexOf(records []json.RawMessage, id string) int {
	for i, raw := range records {
		var h recordHeader
		if json.Unmarshal(raw, &h) == nil && h.ID == id {
			return i
		}
	}
	return -1
}
