package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// KV is the persistence port. Values are opaque JSON documents; a missing
// key is reported as (nil, nil) by Get and is not an error for Remove.
type KV interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Remove(ctx context.Context, key string) error
}

// Store is a KV backend that owns resources.
type Store interface {
	KV
	Close() error
}

var ErrEmptyKey = errors.New("storage: empty key")

// Config selects and parameterizes a backend.
type Config struct {
	Type string // memory, badger, gorm, mongo

	// badger
	Path       string
	GCInterval time.Duration

	// gorm (postgres, mysql) and mongo
	Driver   string
	DSN      string
	Database string
}

// NewStore opens the configured backend wrapped with operation logging.
func NewStore(ctx context.Context, cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Type {
	case "", "memory":
		s = NewMemoryStore()
	case "badger":
		bcfg := DefaultBadgerConfig()
		bcfg.Path = cfg.Path
		if cfg.GCInterval > 0 {
			bcfg.GCInterval = cfg.GCInterval
		}
		s, err = OpenBadgerStore(bcfg)
	case "gorm":
		s, err = OpenGormStore(cfg.Driver, cfg.DSN)
	case "mongo":
		s, err = OpenMongoStore(ctx, cfg.DSN, cfg.Database)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
	if err != nil {
		return nil, err
	}
	return WithLogging(s, backendName(cfg.Type)), nil
}

func backendName(t string) string {
	if t == "" {
		return "memory"
	}
	return t
}
