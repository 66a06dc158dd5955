package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-nutrition-api/internal/infrastructure/config"
)

func TestLoadBuiltin(t *testing.T) {
	cat, err := Load(context.Background(), &config.CatalogConfig{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cat.Source() != "builtin" {
		t.Errorf("Source = %q, want builtin", cat.Source())
	}
	if cat.Len() != len(DefaultRecipes()) {
		t.Errorf("Len = %d, want %d", cat.Len(), len(DefaultRecipes()))
	}

	r, ok := cat.ByID("dog-turkey-sweet-potato")
	if !ok {
		t.Fatal("expected dog-turkey-sweet-potato in builtin catalog")
	}
	if r.Category != "dogs" {
		t.Errorf("Category = %q, want dogs", r.Category)
	}

	if _, ok := cat.ByID("no-such-recipe"); ok {
		t.Error("ByID should miss for unknown id")
	}
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "remote-chicken", "name": "Remote Chicken Bowl", "category": "dogs"},
			{"id": "remote-fish", "name": "Remote Fish Bowl", "category": "cats"}
		]`))
	}))
	defer srv.Close()

	cfg := &config.CatalogConfig{
		SourceURL: srv.URL,
		Timeout:   5 * time.Second,
	}

	cat, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cat.Source() != srv.URL {
		t.Errorf("Source = %q, want %q", cat.Source(), srv.URL)
	}
	if cat.Len() != 2 {
		t.Errorf("Len = %d, want 2", cat.Len())
	}
	if _, ok := cat.ByID("remote-fish"); !ok {
		t.Error("expected remote-fish in remote catalog")
	}
}

func TestLoadRemoteErrorFallsBackToBuiltin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &config.CatalogConfig{
		SourceURL: srv.URL,
		Timeout:   5 * time.Second,
	}

	cat, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cat.Source() != "builtin" {
		t.Errorf("Source = %q, want builtin after remote failure", cat.Source())
	}
	if cat.Len() != len(DefaultRecipes()) {
		t.Errorf("Len = %d, want builtin count %d", cat.Len(), len(DefaultRecipes()))
	}
}

func TestLoadRemoteRejectsEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := &config.CatalogConfig{
		SourceURL: srv.URL,
		Timeout:   5 * time.Second,
	}

	cat, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Source() != "builtin" {
		t.Errorf("empty remote catalog should fall back to builtin, got %q", cat.Source())
	}
}

func TestDefaultRecipesIntegrity(t *testing.T) {
	recipes := DefaultRecipes()
	if len(recipes) == 0 {
		t.Fatal("builtin catalog is empty")
	}

	seen := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		if r.ID == "" {
			t.Errorf("recipe %q has no id", r.Name)
		}
		if seen[r.ID] {
			t.Errorf("duplicate recipe id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Category == "" {
			t.Errorf("recipe %s has no category", r.ID)
		}
		if len(r.Ingredients) == 0 {
			t.Errorf("recipe %s has no ingredients", r.ID)
		}
	}
}
