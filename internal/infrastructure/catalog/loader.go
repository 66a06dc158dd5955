package catalog

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"pet-nutrition-api/internal/core/nutrition"
	"pet-nutrition-api/internal/infrastructure/config"
	"pet-nutrition-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Catalog holds the loaded recipe set and serves lookups.
type Catalog struct {
	mu      sync.RWMutex
	recipes []*nutrition.Recipe
	byID    map[string]*nutrition.Recipe
	source  string
}

// Load builds the catalog. When a source URL is configured the recipes
// are fetched remotely; otherwise, or on fetch failure, the built-in
// catalog is used.
func Load(ctx context.Context, cfg *config.CatalogConfig) (*Catalog, error) {
	start := time.Now()

	if cfg.SourceURL != "" {
		recipes, err := fetchRemote(ctx, cfg)
		if err == nil {
			common.LogCatalogLoad(cfg.SourceURL, len(recipes), time.Since(start), nil)
			return newCatalog(recipes, cfg.SourceURL), nil
		}
		common.LogCatalogLoad(cfg.SourceURL, 0, time.Since(start), err)
	}

	recipes := DefaultRecipes()
	common.LogCatalogLoad("builtin", len(recipes), time.Since(start), nil)
	return newCatalog(recipes, "builtin"), nil
}

func newCatalog(recipes []*nutrition.Recipe, source string) *Catalog {
	byID := make(map[string]*nutrition.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	return &Catalog{
		recipes: recipes,
		byID:    byID,
		source:  source,
	}
}

func fetchRemote(ctx context.Context, cfg *config.CatalogConfig) ([]*nutrition.Recipe, error) {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries)

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(cfg.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode())
	}

	var recipes []*nutrition.Recipe
	if err := common.ParseJSONBytes(resp.Body(), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("catalog source returned no recipes")
	}
	for _, r := range recipes {
		if r.ID == "" {
			return nil, fmt.Errorf("catalog recipe missing id")
		}
	}

	return recipes, nil
}

// Recipes returns all recipes in the catalog.
func (c *Catalog) Recipes() []*nutrition.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recipes
}

// ByID returns the recipe with the given id.
func (c *Catalog) ByID(id string) (*nutrition.Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.byID[id]
	return r, ok
}

// Source reports where the catalog was loaded from.
func (c *Catalog) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}
