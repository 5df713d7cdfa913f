package storage

import (
	"context"
	"encoding/json"
	"time"

	"autozar_backend/internal/logger"
)

type loggedStore struct {
	Store
	backend string
}

// WithLogging reports every operation through logger.StoreLog.
func WithLogging(s Store, backend string) Store {
	return &loggedStore{Store: s, backend: backend}
}

func (l *loggedStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	start := time.Now()
	v, err := l.Store.Get(ctx, key)
	logger.StoreLog(l.backend, "get", key, time.Since(start), err)
	return v, err
}

func (l *loggedStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	start := time.Now()
	err := l.Store.Set(ctx, key, value)
	logger.StoreLog(l.backend, "set", key, time.Since(start), err)
	return err
}

func (l *loggedStore) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := l.Store.Remove(ctx, key)
	logger.StoreLog(l.backend, "remove", key, time.Since(start), err)
	return err
}
