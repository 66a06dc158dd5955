package nutrition

import (
	"strings"
	"testing"
)

func dogAllergyPet() *PetProfile {
	return &PetProfile{
		Type:           "dogs",
		Age:            "adult",
		WeightKg:       20,
		HealthConcerns: []string{"allergies"},
	}
}

func turkeyRecipe() *Recipe {
	return &Recipe{
		ID:             "test-turkey",
		Name:           "Turkey Bowl",
		Category:       "dogs",
		AgeGroups:      []string{"adult"},
		HealthConcerns: []string{"allergies"},
		Ingredients: []Ingredient{
			{Name: "Ground Turkey", Amount: "300 g"},
			{Name: "Mystery Veggie Blend", Amount: "100 g", PurchaseLink: "https://example.com/unvetted"},
		},
	}
}

func TestApplyModifiersAddsSupplementsForConcern(t *testing.T) {
	result := ApplyModifiers(turkeyRecipe(), dogAllergyPet())

	if len(result.AddedIngredients) == 0 {
		t.Fatal("AddedIngredients is empty, want allergy supplements")
	}
	found := false
	for _, added := range result.AddedIngredients {
		if added.ForConcern == "allergies" {
			found = true
			if added.Benefit == "" {
				t.Errorf("added ingredient %q has empty benefit", added.Name)
			}
		}
	}
	if !found {
		t.Errorf("no added ingredient tagged for allergies: %+v", result.AddedIngredients)
	}
}

func TestApplyModifiersCloneIndependence(t *testing.T) {
	original := turkeyRecipe()
	originalLen := len(original.Ingredients)
	originalFirst := original.Ingredients[0].Name

	result := ApplyModifiers(original, dogAllergyPet())

	result.ModifiedRecipe.Ingredients[0].Name = "MUTATED"
	result.ModifiedRecipe.Ingredients = append(result.ModifiedRecipe.Ingredients, Ingredient{Name: "Extra"})

	if len(original.Ingredients) != originalLen {
		t.Errorf("original ingredient count changed: %d -> %d", originalLen, len(original.Ingredients))
	}
	if original.Ingredients[0].Name != originalFirst {
		t.Errorf("original ingredient mutated: %q", original.Ingredients[0].Name)
	}
}

func TestApplyModifiersVettedRewrite(t *testing.T) {
	result := ApplyModifiers(turkeyRecipe(), dogAllergyPet())

	var turkey, unvetted *Ingredient
	for i := range result.ModifiedRecipe.Ingredients {
		ing := &result.ModifiedRecipe.Ingredients[i]
		switch {
		case strings.Contains(strings.ToLower(ing.Name), "turkey"):
			turkey = ing
		case strings.Contains(ing.Name, "Mystery"):
			unvetted = ing
		}
	}

	if turkey == nil {
		t.Fatal("turkey ingredient missing from modified recipe")
	}
	if turkey.ProductName == "" {
		t.Errorf("vetted turkey has no product name")
	}
	if turkey.PurchaseLink == "" {
		t.Errorf("vetted turkey has no purchase link")
	}
	if !strings.Contains(turkey.Notes, "VET NOTE: ") {
		t.Errorf("vetted turkey notes = %q, want VET NOTE prefix", turkey.Notes)
	}

	if unvetted == nil {
		t.Fatal("unvetted ingredient missing from modified recipe")
	}
	if unvetted.PurchaseLink != "" {
		t.Errorf("unvetted ingredient kept purchase link %q", unvetted.PurchaseLink)
	}
}

func TestApplyModifiersUnknownSpeciesNoRules(t *testing.T) {
	pet := dogAllergyPet()
	pet.Type = "bird"

	result := ApplyModifiers(turkeyRecipe(), pet)

	if len(result.AddedIngredients) != 0 {
		t.Errorf("bird pet got modifier additions: %+v", result.AddedIngredients)
	}
	if result.ModifiedRecipe == nil {
		t.Fatal("ModifiedRecipe is nil, want cloned recipe")
	}
}

func TestApplyModifiersConflictCount(t *testing.T) {
	recipe := turkeyRecipe()
	recipe.Ingredients = append(recipe.Ingredients, Ingredient{Name: "Cheddar Cheese", Amount: "30 g"})

	pet := dogAllergyPet()
	pet.HealthConcerns = []string{"weight management"}

	result := ApplyModifiers(recipe, pet)

	if result.ConflictCount == 0 {
		t.Errorf("ConflictCount = 0, want cheese flagged for weight management")
	}
}

func TestApplyModifiersHydrationFlag(t *testing.T) {
	pet := &PetProfile{
		Type:           "cat",
		Age:            "senior",
		WeightKg:       4,
		HealthConcerns: []string{"urinary problems"},
	}
	recipe := &Recipe{
		ID:       "test-fish",
		Category: "cats",
		Ingredients: []Ingredient{
			{Name: "White Fish", Amount: "180 g"},
			{Name: "Eggshell Powder", Amount: "1/4 tsp"},
		},
	}

	result := ApplyModifiers(recipe, pet)

	if !result.HasHydrationSupport {
		t.Errorf("HasHydrationSupport = false, want true for urinary concern")
	}
}

func TestApplyModifiersCatCalciumSupplement(t *testing.T) {
	recipe := &Recipe{
		ID:       "test-cat-plain",
		Category: "cats",
		Ingredients: []Ingredient{
			{Name: "Chicken Breast", Amount: "200 g"},
			{Name: "White Rice", Amount: "60 g"},
		},
	}
	pet := &PetProfile{Type: "cats", Age: "adult", WeightKg: 4}

	result := ApplyModifiers(recipe, pet)

	found := false
	for _, sup := range result.ModifiedRecipe.Supplements {
		if strings.Contains(strings.ToLower(sup.Name), "eggshell") {
			found = true
		}
	}
	if !found {
		t.Errorf("cat recipe without calcium source did not gain eggshell powder: %+v", result.ModifiedRecipe.Supplements)
	}
}

func TestApplyModifiersCatCalciumAlreadyPresent(t *testing.T) {
	recipe := &Recipe{
		ID:       "test-cat-calcium",
		Category: "cats",
		Ingredients: []Ingredient{
			{Name: "Chicken Breast", Amount: "200 g"},
			{Name: "Eggshell Powder", Amount: "1/4 tsp"},
		},
	}
	pet := &PetProfile{Type: "cats", Age: "adult", WeightKg: 4}

	result := ApplyModifiers(recipe, pet)

	for _, added := range result.AddedIngredients {
		if added.ForConcern == "nutrition_balance" {
			t.Errorf("calcium supplement added despite existing source: %+v", added)
		}
	}
}

func TestApplyModifiersDogsSkipCalciumCheck(t *testing.T) {
	recipe := turkeyRecipe()
	pet := &PetProfile{Type: "dogs", Age: "adult", WeightKg: 20}

	result := ApplyModifiers(recipe, pet)

	for _, added := range result.AddedIngredients {
		if added.ForConcern == "nutrition_balance" {
			t.Errorf("calcium balance supplement added for a dog: %+v", added)
		}
	}
}
