package cache

import (
	"context"
	"testing"
	"time"

	"pet-nutrition-api/internal/infrastructure/config"
)

func testCacheConfig() *config.CacheConfig {
	return &config.CacheConfig{
		Enabled:         true,
		Backend:         "memory",
		MaxSize:         2,
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	}
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(testCacheConfig())
	defer m.Close()

	ctx := context.Background()
	if err := m.Set(ctx, "k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := m.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "v1" {
		t.Errorf("Get = %q, want %q", got, "v1")
	}
}

func TestManagerMiss(t *testing.T) {
	m := NewManager(testCacheConfig())
	defer m.Close()

	if _, err := m.Get(context.Background(), "absent"); err != ErrMiss {
		t.Errorf("Get(absent) err = %v, want ErrMiss", err)
	}
}

func TestManagerExpiry(t *testing.T) {
	cfg := testCacheConfig()
	cfg.TTL = 10 * time.Millisecond
	m := NewManager(cfg)
	defer m.Close()

	ctx := context.Background()
	if err := m.Set(ctx, "k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := m.Get(ctx, "k1"); err != ErrMiss {
		t.Errorf("expired Get err = %v, want ErrMiss", err)
	}
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(testCacheConfig())
	defer m.Close()

	ctx := context.Background()
	m.Set(ctx, "k1", "v1")
	m.Set(ctx, "k2", "v2")

	// Touch k1 so k2 becomes the eviction candidate.
	m.Get(ctx, "k1")
	m.Get(ctx, "k1")

	if err := m.Set(ctx, "k3", "v3"); err != nil {
		t.Fatalf("Set over capacity failed: %v", err)
	}

	if _, err := m.Get(ctx, "k2"); err != ErrMiss {
		t.Errorf("k2 should have been evicted, err = %v", err)
	}
	if _, err := m.Get(ctx, "k1"); err != nil {
		t.Errorf("k1 should have survived eviction: %v", err)
	}
	if _, err := m.Get(ctx, "k3"); err != nil {
		t.Errorf("k3 should be present: %v", err)
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(testCacheConfig())
	defer m.Close()

	ctx := context.Background()
	m.Set(ctx, "k1", "v1")
	m.Get(ctx, "k1")
	m.Get(ctx, "absent")

	stats := m.Stats()
	if stats["backend"] != "memory" {
		t.Errorf("backend = %v, want memory", stats["backend"])
	}
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
}

func TestKeyDeterministic(t *testing.T) {
	k1 := Key(`{"profile":{"type":"dogs"}}`)
	k2 := Key(`{"profile":{"type":"dogs"}}`)
	k3 := Key(`{"profile":{"type":"cats"}}`)

	if k1 != k2 {
		t.Errorf("identical payloads produced different keys: %q vs %q", k1, k2)
	}
	if k1 == k3 {
		t.Error("different payloads produced identical keys")
	}
}

func TestNewDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	store, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store != nil {
		t.Error("disabled cache should return a nil store")
	}
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache = *testCacheConfig()
	cfg.Cache.Backend = "memcached"

	if _, err := New(cfg); err == nil {
		t.Error("unknown backend should fail")
	}
}
