package repositories

import (
	"context"
	"fmt"
	"sync"

	"autozar_backend/internal/models"
	"autozar_backend/internal/storage"
)

// PaymentRepository is the append-only payment log.
type PaymentRepository interface {
	Append(ctx context.Context, rec *models.PaymentRecord) error
	FindByListing(ctx context.Context, listingID string) ([]models.PaymentRecord, error)
}

type PaymentRepositoryImpl struct {
	kv storage.KV
	mu sync.Mutex
}

func NewPaymentRepository(kv storage.KV) PaymentRepository {
	return &PaymentRepositoryImpl{kv: kv}
}

func (r *PaymentRepositoryImpl) Append(ctx context.Context, rec *models.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var log []models.PaymentRecord
	if err := loadJSON(ctx, r.kv, paymentsKey, &log); err != nil {
		return fmt.Errorf("load payments: %w", err)
	}
	log = append(log, *rec)
	return storeJSON(ctx, r.kv, paymentsKey, log)
}

// FindByListing returns the listing's records oldest first.
func (r *PaymentRepositoryImpl) FindByListing(ctx context.Context, listingID string) ([]models.PaymentRecord, error) {
	var log []models.PaymentRecord
	if err := loadJSON(ctx, r.kv, paymentsKey, &log); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	out := make([]models.PaymentRecord, 0)
	for _, rec := range log {
		if rec.ListingID == listingID {
			out = append(out, rec)
		}
	}
	return out, nil
}
