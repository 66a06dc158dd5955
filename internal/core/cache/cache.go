package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"pet-nutrition-api/internal/infrastructure/config"
)

// Sentinel errors returned by cache stores.
var (
	ErrMiss     = errors.New("cache miss")
	ErrDisabled = errors.New("cache disabled")
)

// Store is a string cache for serialized recommendation responses.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Stats() map[string]interface{}
	Close() error
}

// New builds the configured cache backend. Returns nil when caching is
// disabled; callers must treat a nil store as a pass-through.
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisStore(&cfg.Cache)
	case "memory":
		return NewManager(&cfg.Cache), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// Key derives a deterministic cache key from the canonical request body.
func Key(canonical string) string {
	hash := sha256.Sum256([]byte(canonical))
	return "recommend:" + hex.EncodeToString(hash[:])
}
