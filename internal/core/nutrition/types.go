package nutrition

// Species category constants used by the recipe catalog.
const (
	SpeciesDogs = "dogs"
	SpeciesCats = "cats"
)

// Age group constants for pets and recipes.
const (
	AgeBaby   = "baby"
	AgeYoung  = "young"
	AgeAdult  = "adult"
	AgeSenior = "senior"
)

// Weight status constants.
const (
	WeightIdeal       = "ideal"
	WeightOverweight  = "overweight"
	WeightUnderweight = "underweight"
)

// NutrientRange is a min/max band for a single nutrient.
type NutrientRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NutritionalInfo is the structured nutrition summary of a recipe.
type NutritionalInfo struct {
	Protein    *NutrientRange `json:"protein,omitempty"`
	Fat        *NutrientRange `json:"fat,omitempty"`
	Fiber      *NutrientRange `json:"fiber,omitempty"`
	Calcium    *NutrientRange `json:"calcium,omitempty"`
	Phosphorus *NutrientRange `json:"phosphorus,omitempty"`
	Calories   *NutrientRange `json:"calories,omitempty"`
}

// LegacyNutritionInfo carries the old free-text nutrition fields that
// predate NutritionalInfo. Only the calorie string is still consumed.
type LegacyNutritionInfo struct {
	Calories string `json:"calories,omitempty"`
}

// Ingredient is a single recipe line item. Amount is a free-form
// quantity string ("200 g", "1 cup"). Purchase fields are only
// populated after the modifier applier has matched a vetted product.
type Ingredient struct {
	Name         string `json:"name"`
	Amount       string `json:"amount,omitempty"`
	ProductName  string `json:"product_name,omitempty"`
	PurchaseLink string `json:"purchase_link,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Category     string `json:"category,omitempty"`
}

// Recipe is immutable reference data from the catalog. The pipeline
// never mutates a Recipe in place; ApplyModifiers works on a Clone.
type Recipe struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Category        string               `json:"category"`
	AgeGroups       []string             `json:"age_groups,omitempty"`
	Breeds          []string             `json:"breeds,omitempty"`
	HealthConcerns  []string             `json:"health_concerns,omitempty"`
	Tags            []string             `json:"tags,omitempty"`
	Ingredients     []Ingredient         `json:"ingredients"`
	Supplements     []Ingredient         `json:"supplements,omitempty"`
	NutritionalInfo *NutritionalInfo     `json:"nutritional_info,omitempty"`
	NutritionInfo   *LegacyNutritionInfo `json:"nutrition_info,omitempty"`
}

// Clone returns a structurally independent copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	cp := *r
	cp.AgeGroups = append([]string(nil), r.AgeGroups...)
	cp.Breeds = append([]string(nil), r.Breeds...)
	cp.HealthConcerns = append([]string(nil), r.HealthConcerns...)
	cp.Tags = append([]string(nil), r.Tags...)
	cp.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	cp.Supplements = append([]Ingredient(nil), r.Supplements...)
	if r.NutritionalInfo != nil {
		ni := *r.NutritionalInfo
		ni.Protein = cloneRange(r.NutritionalInfo.Protein)
		ni.Fat = cloneRange(r.NutritionalInfo.Fat)
		ni.Fiber = cloneRange(r.NutritionalInfo.Fiber)
		ni.Calcium = cloneRange(r.NutritionalInfo.Calcium)
		ni.Phosphorus = cloneRange(r.NutritionalInfo.Phosphorus)
		ni.Calories = cloneRange(r.NutritionalInfo.Calories)
		cp.NutritionalInfo = &ni
	}
	if r.NutritionInfo != nil {
		li := *r.NutritionInfo
		cp.NutritionInfo = &li
	}
	return &cp
}

func cloneRange(nr *NutrientRange) *NutrientRange {
	if nr == nil {
		return nil
	}
	cp := *nr
	return &cp
}

// PetProfile is the caller-supplied pet description. Read-only to the
// pipeline. Zero values act as documented defaults: empty Breed skips
// the breed bonus, empty Allergies falls back to the common allergen
// list when an allergy concern is present, zero CaloriesPerKgOverride
// means no override.
type PetProfile struct {
	Name                  string   `json:"name,omitempty"`
	Type                  string   `json:"type"`
	Breed                 string   `json:"breed,omitempty"`
	Age                   string   `json:"age"`
	WeightKg              float64  `json:"weight_kg"`
	WeightStatus          string   `json:"weight_status,omitempty"`
	HealthConcerns        []string `json:"health_concerns,omitempty"`
	Allergies             []string `json:"allergies,omitempty"`
	CaloriesPerKgOverride float64  `json:"calories_per_kg_override,omitempty"`
}

// ScoreReasoning is the human-readable trail behind a score.
type ScoreReasoning struct {
	GoodMatches []string `json:"good_matches"`
	Conflicts   []string `json:"conflicts"`
}

// ScoreResult is the outcome of scoring one recipe against one pet.
type ScoreResult struct {
	MatchScore          int            `json:"match_score"`
	Stars               int            `json:"stars"`
	Reasoning           ScoreReasoning `json:"reasoning"`
	ConflictCount       int            `json:"conflict_count"`
	HasHydrationSupport bool           `json:"has_hydration_support"`
}

// AddedIngredient is a supplement recommendation emitted by the
// modifier applier, tagged with the concern that triggered it.
type AddedIngredient struct {
	Name         string `json:"name"`
	Benefit      string `json:"benefit"`
	PurchaseLink string `json:"purchase_link,omitempty"`
	ForConcern   string `json:"for_concern"`
}

// ModifierResult is the output of ApplyModifiers. ModifiedRecipe is
// always a structurally distinct copy of the input recipe.
type ModifierResult struct {
	ModifiedRecipe      *Recipe           `json:"modified_recipe"`
	AddedIngredients    []AddedIngredient `json:"added_ingredients"`
	ConflictCount       int               `json:"conflict_count"`
	HasHydrationSupport bool              `json:"has_hydration_support"`
}

// PortionPlan is the derived feeding plan for one recipe/pet pair.
type PortionPlan struct {
	CaloriesPerKg      float64  `json:"calories_per_kg"`
	DailyCalories      int      `json:"daily_calories"`
	WeeklyCalories     int      `json:"weekly_calories"`
	Multiplier         float64  `json:"multiplier"`
	DailyPortionGrams  int      `json:"daily_portion_grams"`
	WeeklyPortionGrams int      `json:"weekly_portion_grams"`
	Notes              []string `json:"notes"`
}

// ShoppingListItem is one purchasable entry of an assembled plan.
type ShoppingListItem struct {
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	PurchaseLink string `json:"purchase_link,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Category     string `json:"category,omitempty"`
}

// RecommendRequest selects and bounds a recommendation run.
type RecommendRequest struct {
	Profile   PetProfile `json:"profile"`
	RecipeIDs []string   `json:"recipe_ids,omitempty"`
	Limit     int        `json:"limit,omitempty"`
	MinScore  int        `json:"min_score,omitempty"`
}

// RecommendedRecipe is one entry of the assembler output, ordered
// best match first.
type RecommendedRecipe struct {
	Recipe           *Recipe            `json:"recipe"`
	AddedIngredients []AddedIngredient  `json:"added_ingredients"`
	PortionPlan      PortionPlan        `json:"portion_plan"`
	ShoppingList     []ShoppingListItem `json:"shopping_list"`
	Score            int                `json:"score"`
}
