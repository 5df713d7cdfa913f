package repositories

import (
	"context"
	"encoding/json"

	"autozar_backend/internal/models"
	"autozar_backend/internal/storage"
)

// DraftRepository holds one autosave slot per (user, category). Payloads
// are partial forms and are kept verbatim.
type DraftRepository interface {
	Save(ctx context.Context, userID string, c models.Category, payload json.RawMessage) error
	Find(ctx context.Context, userID string, c models.Category) (json.RawMessage, error)
	Delete(ctx context.Context, userID string, c models.Category) error
}

type DraftRepositoryImpl struct {
	kv storage.KV
}

func NewDraftRepository(kv storage.KV) DraftRepository {
	return &DraftRepositoryImpl{kv: kv}
}

func (r *DraftRepositoryImpl) Save(ctx context.Context, userID string, c models.Category, payload json.RawMessage) error {
	return r.kv.Set(ctx, DraftKey(userID, c), payload)
}

// Find returns nil when the slot is empty.
func (r *DraftRepositoryImpl) Find(ctx context.Context, userID string, c models.Category) (json.RawMessage, error) {
	return r.kv.Get(ctx, DraftKey(userID, c))
}

func (r *DraftRepositoryImpl) Delete(ctx context.Context, userID string, c models.Category) error {
	return r.kv.Remove(ctx, DraftKey(userID, c))
}
