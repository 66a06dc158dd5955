package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pet-nutrition-api/internal/core/cache"
	"pet-nutrition-api/internal/core/nutrition"
	"pet-nutrition-api/internal/core/nutrition/data"
	"pet-nutrition-api/internal/infrastructure/catalog"
	"pet-nutrition-api/internal/infrastructure/config"
	"pet-nutrition-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Service assembles full recommendations from the catalog: score,
// modify, portion and shopping list for each surviving recipe.
type Service struct {
	catalog *catalog.Catalog
	store   cache.Store
	config  *config.RecommendConfig
}

// NewService creates a recommendation service.
func NewService(cat *catalog.Catalog, store cache.Store, cfg *config.RecommendConfig) *Service {
	return &Service{
		catalog: cat,
		store:   store,
		config:  cfg,
	}
}

// Response is the assembled recommendation payload.
type Response struct {
	PetName         string                        `json:"pet_name,omitempty"`
	Species         string                        `json:"species"`
	Recommendations []nutrition.RecommendedRecipe `json:"recommendations"`
	Count           int                           `json:"count"`
	CacheHit        bool                          `json:"cache_hit,omitempty"`
}

type scoredRecipe struct {
	recipe *nutrition.Recipe
	result nutrition.ScoreResult
}

// Recommend runs the full pipeline for one pet profile.
func (s *Service) Recommend(ctx context.Context, req *nutrition.RecommendRequest) (*Response, error) {
	if req.Profile.Type == "" {
		return nil, common.NewValidationError("pet type is required")
	}
	if req.Profile.WeightKg <= 0 {
		return nil, common.NewValidationError("pet weight must be positive")
	}

	start := time.Now()

	key, canonErr := s.cacheKey(req)
	if canonErr == nil && s.store != nil {
		if cached, err := s.store.Get(ctx, key); err == nil {
			var resp Response
			if decodeErr := common.ParseJSON(cached, &resp); decodeErr == nil {
				resp.CacheHit = true
				return &resp, nil
			} else {
				common.LogWarn("Failed to decode cached recommendation", zap.Error(decodeErr))
			}
		}
	}

	candidates := s.candidates(req)

	scored := make([]scoredRecipe, 0, len(candidates))
	minScore := req.MinScore
	if minScore <= 0 {
		minScore = s.config.MinScore
	}
	for _, recipe := range candidates {
		result := nutrition.Score(recipe, &req.Profile)
		if result.MatchScore < minScore {
			continue
		}
		scored = append(scored, scoredRecipe{recipe: recipe, result: result})
	}

	// Stable order: score descending, then recipe id for determinism.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].result.MatchScore != scored[j].result.MatchScore {
			return scored[i].result.MatchScore > scored[j].result.MatchScore
		}
		return scored[i].recipe.ID < scored[j].recipe.ID
	})

	limit := req.Limit
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}
	if limit > len(scored) {
		limit = len(scored)
	}

	recommendations := make([]nutrition.RecommendedRecipe, 0, limit)
	for _, sc := range scored[:limit] {
		recommendations = append(recommendations, s.assemble(sc, &req.Profile))
	}

	resp := &Response{
		PetName:         req.Profile.Name,
		Species:         nutrition.NormalizeSpecies(req.Profile.Type),
		Recommendations: recommendations,
		Count:           len(recommendations),
	}

	if canonErr == nil && s.store != nil {
		if encoded, err := common.ToJSON(resp); err == nil {
			if err := s.store.Set(ctx, key, encoded); err != nil && err != common.ErrCacheFull {
				common.LogWarn("Failed to cache recommendation", zap.Error(err))
			}
		}
	}

	common.LogInfo("Recommendation generated",
		zap.String("species", resp.Species),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(recommendations)),
		zap.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

// candidates resolves the recipe pool: explicit ids when given
// (unknown ids are skipped), otherwise the catalog filtered to the
// pet's species and capped at the configured pool size. The species
// filter runs before the cap so a species whose recipes sit past the
// cap still gets candidates.
func (s *Service) candidates(req *nutrition.RecommendRequest) []*nutrition.Recipe {
	var pool []*nutrition.Recipe
	if len(req.RecipeIDs) > 0 {
		pool = make([]*nutrition.Recipe, 0, len(req.RecipeIDs))
		for _, id := range req.RecipeIDs {
			if recipe, ok := s.catalog.ByID(id); ok {
				pool = append(pool, recipe)
			} else {
				common.LogWarn("Requested recipe not in catalog", zap.String("recipe_id", id))
			}
		}
	} else {
		pool = s.catalog.Recipes()
	}

	matched := make([]*nutrition.Recipe, 0, len(pool))
	for _, recipe := range pool {
		if nutrition.MatchesSpecies(recipe, &req.Profile) {
			matched = append(matched, recipe)
		}
	}

	if len(req.RecipeIDs) == 0 && len(matched) > s.config.CandidatePool {
		matched = matched[:s.config.CandidatePool]
	}
	return matched
}

// assemble builds one recommendation entry from a scored recipe:
// modifiers applied, portions computed, shopping list drawn from the
// modified recipe with amounts scaled to the portion multiplier.
func (s *Service) assemble(sc scoredRecipe, profile *nutrition.PetProfile) nutrition.RecommendedRecipe {
	modified := nutrition.ApplyModifiers(sc.recipe, profile)
	plan := nutrition.GetPortionPlan(modified.ModifiedRecipe, profile)

	shoppingList := make([]nutrition.ShoppingListItem, 0,
		len(modified.ModifiedRecipe.Ingredients)+len(modified.ModifiedRecipe.Supplements)+len(modified.AddedIngredients))

	for _, ing := range modified.ModifiedRecipe.Ingredients {
		shoppingList = append(shoppingList, shoppingItem(ing, plan.Multiplier))
	}
	for _, sup := range modified.ModifiedRecipe.Supplements {
		item := shoppingItem(sup, plan.Multiplier)
		if item.Category == "" {
			item.Category = "Supplement"
		}
		shoppingList = append(shoppingList, item)
	}
	for _, added := range modified.AddedIngredients {
		shoppingList = append(shoppingList, nutrition.ShoppingListItem{
			Name:         added.Name,
			Amount:       "1 dose/day",
			PurchaseLink: added.PurchaseLink,
			Notes:        fmt.Sprintf("Added for %s support. Benefit: %s", added.ForConcern, added.Benefit),
			Category:     "Supplement",
		})
	}

	return nutrition.RecommendedRecipe{
		Recipe:           modified.ModifiedRecipe,
		AddedIngredients: modified.AddedIngredients,
		PortionPlan:      plan,
		ShoppingList:     shoppingList,
		Score:            sc.result.MatchScore,
	}
}

// shoppingItem converts one recipe line into a shopping list entry,
// preferring the highest-commission affiliate link when the ingredient
// maps to a vetted product.
func shoppingItem(ing nutrition.Ingredient, multiplier float64) nutrition.ShoppingListItem {
	link := ing.PurchaseLink
	if links := data.AllAffiliateLinks(ing.Name); len(links) > 0 {
		link = links[0].URL
	}
	return nutrition.ShoppingListItem{
		Name:         ing.Name,
		Amount:       nutrition.ScaleAmount(ing.Amount, multiplier),
		PurchaseLink: link,
		Notes:        ing.Notes,
		Category:     ing.Category,
	}
}

func (s *Service) cacheKey(req *nutrition.RecommendRequest) (string, error) {
	canonical, err := common.CanonicalJSON(req)
	if err != nil {
		return "", err
	}
	return cache.Key(canonical), nil
}

// ScoreRecipe scores a single catalog recipe against a pet profile.
func (s *Service) ScoreRecipe(recipeID string, profile *nutrition.PetProfile) (*nutrition.ScoreResult, error) {
	recipe, ok := s.catalog.ByID(recipeID)
	if !ok {
		return nil, common.ErrRecipeNotFound
	}
	result := nutrition.Score(recipe, profile)
	return &result, nil
}

// ModifyRecipe applies dietary modifiers to a single catalog recipe.
func (s *Service) ModifyRecipe(recipeID string, profile *nutrition.PetProfile) (*nutrition.ModifierResult, error) {
	recipe, ok := s.catalog.ByID(recipeID)
	if !ok {
		return nil, common.ErrRecipeNotFound
	}
	result := nutrition.ApplyModifiers(recipe, profile)
	return &result, nil
}

// PortionPlan computes the feeding plan for a single catalog recipe.
func (s *Service) PortionPlan(recipeID string, profile *nutrition.PetProfile) (*nutrition.PortionPlan, error) {
	recipe, ok := s.catalog.ByID(recipeID)
	if !ok {
		return nil, common.ErrRecipeNotFound
	}
	plan := nutrition.GetPortionPlan(recipe, profile)
	return &plan, nil
}

// Stats exposes cache statistics for the health surface.
func (s *Service) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"catalog_size":   s.catalog.Len(),
		"catalog_source": s.catalog.Source(),
	}
	if s.store != nil {
		stats["cache"] = s.store.Stats()
	}
	return stats
}
