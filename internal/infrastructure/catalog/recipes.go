package catalog

import "pet-nutrition-api/internal/core/nutrition"

func nr(min, max float64) *nutrition.NutrientRange {
	return &nutrition.NutrientRange{Min: min, Max: max}
}

// defaultRecipes is the embedded recipe catalog used when no remote
// catalog source is configured. Amounts are free-form strings parsed
// by the portion calculator.
var defaultRecipes = []*nutrition.Recipe{
	{
		ID:             "dog-turkey-sweet-potato",
		Name:           "Turkey & Sweet Potato Bowl",
		Category:       "dogs",
		AgeGroups:      []string{"adult", "senior"},
		Breeds:         []string{"labrador", "golden-retriever", "beagle"},
		HealthConcerns: []string{"weight-management", "joint-health"},
		Tags:           []string{"low-calorie", "grain-free"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Ground Turkey", Amount: "300 g"},
			{Name: "Sweet Potato", Amount: "150 g"},
			{Name: "Green Beans", Amount: "100 g"},
			{Name: "Fish Oil", Amount: "1 tsp"},
		},
		NutritionalInfo: &nutrition.NutritionalInfo{
			Protein:  nr(26, 32),
			Fat:      nr(10, 14),
			Fiber:    nr(3, 5),
			Calories: nr(420, 480),
		},
	},
	{
		ID:             "dog-salmon-rice",
		Name:           "Salmon & Brown Rice Dinner",
		Category:       "dogs",
		AgeGroups:      []string{"adult"},
		Breeds:         []string{"german-shepherd", "labrador"},
		HealthConcerns: []string{"joint-health", "skin-coat"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Salmon", Amount: "250 g"},
			{Name: "Brown Rice", Amount: "200 g"},
			{Name: "Carrots", Amount: "80 g"},
			{Name: "Eggshell Powder", Amount: "1/2 tsp"},
		},
		NutritionalInfo: &nutrition.NutritionalInfo{
			Protein:    nr(24, 30),
			Fat:        nr(12, 16),
			Calcium:    nr(1.0, 1.4),
			Phosphorus: nr(0.8, 1.1),
			Calories:   nr(500, 560),
		},
	},
	{
		ID:             "dog-beef-pumpkin",
		Name:           "Lean Beef & Pumpkin Mash",
		Category:       "dogs",
		AgeGroups:      []string{"adult", "young"},
		HealthConcerns: []string{"digestive", "weight-management"},
		Tags:           []string{"low-calorie"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Ground Beef", Amount: "280 g"},
			{Name: "Pumpkin Puree", Amount: "120 g"},
			{Name: "White Rice", Amount: "150 g"},
		},
		NutritionInfo: &nutrition.LegacyNutritionInfo{Calories: "about 450 kcal per serving"},
	},
	{
		ID:             "dog-egg-veggie-pup",
		Name:           "Puppy Egg & Veggie Scramble",
		Category:       "dogs",
		AgeGroups:      []string{"baby", "young"},
		HealthConcerns: []string{},
		Ingredients: []nutrition.Ingredient{
			{Name: "Eggs", Amount: "3"},
			{Name: "Carrots", Amount: "60 g"},
			{Name: "White Rice", Amount: "100 g"},
		},
	},
	{
		ID:             "dog-lamb-allergy",
		Name:           "Novel Protein Lamb Plate",
		Category:       "dogs",
		AgeGroups:      []string{"adult", "senior"},
		HealthConcerns: []string{"allergies", "skin-coat"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Ground Lamb", Amount: "300 g"},
			{Name: "Sweet Potato", Amount: "180 g"},
			{Name: "Green Beans", Amount: "90 g"},
		},
		NutritionalInfo: &nutrition.NutritionalInfo{
			Protein:  nr(27, 33),
			Fat:      nr(14, 18),
			Calories: nr(520, 590),
		},
	},
	{
		ID:             "cat-chicken-classic",
		Name:           "Classic Chicken & Rice",
		Category:       "cats",
		AgeGroups:      []string{"adult"},
		HealthConcerns: []string{"digestive"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Chicken Breast", Amount: "200 g"},
			{Name: "White Rice", Amount: "80 g"},
			{Name: "Pumpkin Puree", Amount: "40 g"},
			{Name: "Eggshell Powder", Amount: "1/4 tsp"},
		},
		NutritionalInfo: &nutrition.NutritionalInfo{
			Protein:    nr(35, 42),
			Fat:        nr(12, 16),
			Calcium:    nr(1.1, 1.5),
			Phosphorus: nr(0.9, 1.2),
			Calories:   nr(320, 360),
		},
	},
	{
		ID:             "cat-whitefish-renal",
		Name:           "Gentle Whitefish Renal Support",
		Category:       "cats",
		AgeGroups:      []string{"senior"},
		HealthConcerns: []string{"kidney", "urinary-health"},
		Ingredients: []nutrition.Ingredient{
			{Name: "White Fish", Amount: "180 g"},
			{Name: "White Rice", Amount: "60 g"},
			{Name: "Bone Broth", Amount: "100 ml"},
		},
		NutritionalInfo: &nutrition.NutritionalInfo{
			Protein:    nr(28, 34),
			Phosphorus: nr(0.4, 0.6),
			Calories:   nr(280, 320),
		},
	},
	{
		ID:             "cat-turkey-light",
		Name:           "Light Turkey Portions",
		Category:       "cats",
		AgeGroups:      []string{"adult", "senior"},
		HealthConcerns: []string{"weight-management", "diabetes"},
		Tags:           []string{"low-calorie"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Ground Turkey", Amount: "220 g"},
			{Name: "Green Beans", Amount: "50 g"},
		},
		NutritionInfo: &nutrition.LegacyNutritionInfo{Calories: "300 kcal"},
	},
	{
		ID:             "cat-sardine-shine",
		Name:           "Sardine Shine Bowl",
		Category:       "cats",
		AgeGroups:      []string{"baby", "young", "adult"},
		HealthConcerns: []string{"skin-coat", "joint-health"},
		Ingredients: []nutrition.Ingredient{
			{Name: "Sardines", Amount: "150 g"},
			{Name: "Eggs", Amount: "1"},
			{Name: "Pumpkin Puree", Amount: "30 g"},
		},
	},
	{
		ID:             "bird-seed-garden",
		Name:           "Garden Seed & Veggie Mix",
		Category:       "birds",
		AgeGroups:      []string{"adult"},
		HealthConcerns: []string{},
		Ingredients: []nutrition.Ingredient{
			{Name: "Millet", Amount: "40 g"},
			{Name: "Carrots", Amount: "20 g"},
			{Name: "Romaine Lettuce", Amount: "15 g"},
		},
	},
}

// DefaultRecipes returns the embedded catalog. Callers get the shared
// slice; recipes are reference data and must be cloned before any
// mutation.
func DefaultRecipes() []*nutrition.Recipe {
	return defaultRecipes
}
