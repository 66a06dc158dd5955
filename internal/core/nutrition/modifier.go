package nutrition

import (
	"strings"

	"pet-nutrition-api/internal/core/nutrition/data"
)

// Acceptable Ca:P ratio band for feline recipes.
const (
	minCaPRatio = 1.0
	maxCaPRatio = 2.0
)

// scanAvoidConflicts returns the avoid tokens found in the ingredient
// list. Shared by the scorer and the modifier applier so the conflict
// scan lives in exactly one place; each caller accumulates its own
// count because both are independently callable.
func scanAvoidConflicts(ingredients []Ingredient, avoid []string) []string {
	text := ingredientText(ingredients)
	var hits []string
	for _, token := range avoid {
		if strings.Contains(text, strings.ToLower(token)) {
			hits = append(hits, token)
		}
	}
	return hits
}

// formatDisplayName turns a generic key ("ground turkey") into a
// display name ("Ground Turkey").
func formatDisplayName(value string) string {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer("-", " ", "_", " ").Replace(value)
	words := strings.Fields(value)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// vetIngredient rewrites one ingredient against the vetted product
// map: matched ingredients get the vetted identity plus a VET NOTE,
// unmatched ones lose any purchase link so only vetted products ever
// carry a buy button.
func vetIngredient(ing Ingredient) Ingredient {
	genericKey := data.GenericIngredientName(ing.Name)
	product, ok := data.GetVettedProduct(genericKey)
	if !ok {
		ing.PurchaseLink = ""
		ing.ProductName = ""
		return ing
	}
	ing.Name = formatDisplayName(genericKey)
	ing.ProductName = product.ProductName
	ing.PurchaseLink = data.BestAffiliateLink(genericKey)
	if product.Category != "" && ing.Category == "" {
		ing.Category = product.Category
	}
	vetNote := "VET NOTE: " + product.VetNote
	if ing.Notes != "" {
		ing.Notes = ing.Notes + " | " + vetNote
	} else {
		ing.Notes = vetNote
	}
	return ing
}

// ApplyModifiers produces a modified copy of the recipe for a pet:
// concern-driven supplement additions, vetted-product rewriting of
// every ingredient and supplement, and the conflict/hydration flags.
// The input recipe is never mutated. Missing rules or vetted products
// are the common case and degrade gracefully.
func ApplyModifiers(recipe *Recipe, pet *PetProfile) ModifierResult {
	species := NormalizeSpecies(pet.Type)
	modifiers := data.ModifiersForSpecies(species)
	modified := recipe.Clone()

	added := []AddedIngredient{}
	conflictCount := 0
	hasHydrationSupport := false

	// Concern-driven supplement additions.
	for _, concern := range pet.HealthConcerns {
		key, ok := ModifierKeyFor(concern)
		if !ok {
			continue
		}
		rule, ok := modifiers[key]
		if !ok {
			continue
		}
		for _, supplement := range rule.Add {
			name := supplement.Name
			link := supplement.PurchaseLink
			if product, found := data.GetVettedProduct(supplement.Name); found {
				name = product.ProductName
				if best := data.BestAffiliateLink(supplement.Name); best != "" {
					link = best
				}
			}
			added = append(added, AddedIngredient{
				Name:         name,
				Benefit:      supplement.Benefit,
				PurchaseLink: link,
				ForConcern:   concern,
			})
		}
		conflictCount += len(scanAvoidConflicts(recipe.Ingredients, rule.Avoid))
		if isHydrationConcern(concern) {
			hasHydrationSupport = true
		}
	}

	// Rewrite ingredients and supplements against the vetted map.
	for i, ing := range modified.Ingredients {
		modified.Ingredients[i] = vetIngredient(ing)
	}
	for i, sup := range modified.Supplements {
		modified.Supplements[i] = vetIngredient(sup)
	}

	// Cats need a calcium source to keep the Ca:P ratio in range.
	if species == SpeciesCats && needsCalciumSupport(modified) {
		modified.Supplements = append(modified.Supplements, vetIngredient(Ingredient{
			Name:     "Eggshell Powder",
			Amount:   "1/4 tsp",
			Notes:    "Added automatically to support calcium balance (Ca:P) for cats.",
			Category: "Supplement",
		}))
		added = append(added, AddedIngredient{
			Name:       "Eggshell Powder",
			Benefit:    "Supports calcium balance (Ca:P) for cats",
			ForConcern: "nutrition_balance",
		})
	}

	return ModifierResult{
		ModifiedRecipe:      modified,
		AddedIngredients:    added,
		ConflictCount:       conflictCount,
		HasHydrationSupport: hasHydrationSupport,
	}
}

// calciumSources are name fragments that indicate a recipe already
// carries a calcium source.
var calciumSources = []string{
	"eggshell", "egg shell", "calcium carbonate", "bone meal",
	"cuttlebone", "neck", "bone",
}

// needsCalciumSupport reports whether a feline recipe lacks a calcium
// source and, when structured nutrition data exists, whether its Ca:P
// ratio falls outside the acceptable band.
func needsCalciumSupport(recipe *Recipe) bool {
	text := ingredientText(recipe.Ingredients) + " " + ingredientText(recipe.Supplements)
	for _, source := range calciumSources {
		if strings.Contains(text, source) {
			return false
		}
	}
	ni := recipe.NutritionalInfo
	if ni == nil || ni.Calcium == nil || ni.Phosphorus == nil {
		return true
	}
	ca := (ni.Calcium.Min + ni.Calcium.Max) / 2
	p := (ni.Phosphorus.Min + ni.Phosphorus.Max) / 2
	if ca <= 0 || p <= 0 {
		return true
	}
	ratio := ca / p
	return ratio < minCaPRatio || ratio > maxCaPRatio
}
