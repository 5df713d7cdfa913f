package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"autozar_backend/internal/storage"
)

// ErrCorruptBlob marks a stored value that is not valid JSON for its namespace.
var ErrCorruptBlob = errors.New("corrupt stored value")

// loadJSON decodes the value at key into out. A missing key leaves out untouched.
func loadJSON(ctx context.Context, kv storage.KV, key string, out any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w: %v", key, ErrCorruptBlob, err)
	}
	return nil
}

func storeJSON(ctx context.Context, kv storage.KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}
