package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"autozar_backend/internal/storage"
)

// FavoritesRepository keeps a per-user ordered set of listing ids, newest first.
type FavoritesRepository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
}

// RecentRepository keeps a per-user capped list of viewed ids, newest first.
type RecentRepository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Push(ctx context.Context, userID, listingID string) error
}

type idListRepository struct {
	kv     storage.KV
	mu     sync.Mutex
	keyFor func(userID string) string
	limit  int // 0 means unbounded
}

func NewFavoritesRepository(kv storage.KV) FavoritesRepository {
	return &idListRepository{kv: kv, keyFor: FavoritesKey}
}

// NewRecentRepository keeps at most limit ids per user.
func NewRecentRepository(kv storage.KV, limit int) RecentRepository {
	return &idListRepository{kv: kv, keyFor: RecentKey, limit: limit}
}

func (r *idListRepository) List(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	if err := loadJSON(ctx, r.kv, r.keyFor(userID), &ids); err != nil {
		return nil, fmt.Errorf("load ids: %w", err)
	}
	return ids, nil
}

// Add moves listingID to the front, dropping any earlier occurrence.
func (r *idListRepository) Add(ctx context.Context, userID, listingID string) error {
	return r.update(ctx, userID, func(ids []string) []string {
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == listingID })
		ids = append([]string{listingID}, ids...)
		if r.limit > 0 && len(ids) > r.limit {
			ids = ids[:r.limit]
		}
		return ids
	})
}

func (r *idListRepository) Push(ctx context.Context, userID, listingID string) error {
	return r.Add(ctx, userID, listingID)
}

func (r *idListRepository) Remove(ctx context.Context, userID, listingID string) error {
	return r.update(ctx, userID, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(id string) bool { return id == listingID })
	})
}

func (r *idListRepository) update(ctx context.Context, userID string, fn func([]string) []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.List(ctx, userID)
	if err != nil {
		return err
	}
	return storeJSON(ctx, r.kv, r.keyFor(userID), fn(ids))
}
