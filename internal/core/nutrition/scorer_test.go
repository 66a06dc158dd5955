package nutrition

import (
	"strings"
	"testing"
)

func jointHealthRecipe() *Recipe {
	return &Recipe{
		ID:             "test-chicken-rice",
		Name:           "Chicken & Rice",
		Category:       "dogs",
		AgeGroups:      []string{"adult"},
		Breeds:         []string{"labrador"},
		HealthConcerns: []string{"joint-health"},
		Ingredients: []Ingredient{
			{Name: "Chicken", Amount: "200 g"},
			{Name: "Rice", Amount: "100 g"},
		},
	}
}

func adultLabrador() *PetProfile {
	return &PetProfile{
		Name:           "Rex",
		Type:           "dogs",
		Breed:          "labrador",
		Age:            "adult",
		WeightKg:       25,
		WeightStatus:   WeightIdeal,
		HealthConcerns: []string{"joint-health"},
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

func TestScorePerfectMatch(t *testing.T) {
	result := Score(jointHealthRecipe(), adultLabrador())

	if result.MatchScore <= 80 {
		t.Errorf("MatchScore = %d, want > 80", result.MatchScore)
	}
	if result.Stars != 5 {
		t.Errorf("Stars = %d, want 5", result.Stars)
	}
	for _, want := range []string{"Age group match", "Breed-specific match", "Supports joint-health"} {
		if !containsString(result.Reasoning.GoodMatches, want) {
			t.Errorf("GoodMatches missing %q, got %v", want, result.Reasoning.GoodMatches)
		}
	}
	if len(result.Reasoning.Conflicts) != 0 {
		t.Errorf("unexpected conflicts: %v", result.Reasoning.Conflicts)
	}
}

func TestScoreSpeciesMismatch(t *testing.T) {
	pet := adultLabrador()
	pet.Type = "cats"
	pet.Breed = ""

	result := Score(jointHealthRecipe(), pet)

	if result.MatchScore != 0 {
		t.Errorf("MatchScore = %d, want 0", result.MatchScore)
	}
	if result.Stars != 1 {
		t.Errorf("Stars = %d, want 1", result.Stars)
	}
	if !containsString(result.Reasoning.Conflicts, "Different species - not suitable") {
		t.Errorf("Conflicts = %v, want species conflict", result.Reasoning.Conflicts)
	}
}

func TestScoreAllergenOverride(t *testing.T) {
	pet := adultLabrador()
	pet.HealthConcerns = []string{"allergies"}
	pet.Allergies = []string{"chicken"}

	result := Score(jointHealthRecipe(), pet)

	if result.MatchScore != 0 {
		t.Errorf("MatchScore = %d, want 0", result.MatchScore)
	}
	if !containsString(result.Reasoning.Conflicts, "Contains potential allergen: chicken") {
		t.Errorf("Conflicts = %v, want allergen conflict", result.Reasoning.Conflicts)
	}
}

func TestScoreAllergyConcernFallsBackToCommonAllergens(t *testing.T) {
	// No explicit allergy list: the allergy concern gates against the
	// common allergen list instead.
	pet := adultLabrador()
	pet.HealthConcerns = []string{"allergies"}
	pet.Allergies = nil

	result := Score(jointHealthRecipe(), pet)

	if result.MatchScore != 0 {
		t.Errorf("MatchScore = %d, want 0 for common allergen chicken", result.MatchScore)
	}
}

func TestScoreExplicitAllergiesTakePrecedence(t *testing.T) {
	// Pet is allergic to beef only; a chicken recipe must not be gated
	// even though the pet has an allergy concern.
	pet := adultLabrador()
	pet.HealthConcerns = []string{"allergies"}
	pet.Allergies = []string{"beef"}

	result := Score(jointHealthRecipe(), pet)

	if result.MatchScore == 0 {
		t.Errorf("MatchScore = 0, want > 0 when declared allergen is absent")
	}
}

func TestScoreMissingAgeGroupNoPenalty(t *testing.T) {
	recipe := jointHealthRecipe()
	recipe.AgeGroups = nil

	withAge := Score(jointHealthRecipe(), adultLabrador())
	withoutAge := Score(recipe, adultLabrador())

	if withoutAge.MatchScore > withAge.MatchScore {
		t.Errorf("recipe without age groups scored higher: %d > %d", withoutAge.MatchScore, withAge.MatchScore)
	}
	if containsString(withoutAge.Reasoning.Conflicts, "age") {
		t.Errorf("missing age groups must not produce a conflict: %v", withoutAge.Reasoning.Conflicts)
	}
}

func TestScoreNoConcernTagsSoftPenalty(t *testing.T) {
	recipe := jointHealthRecipe()
	recipe.HealthConcerns = nil

	pet := adultLabrador()
	pet.HealthConcerns = []string{"joint-health", "digestive", "weight-management"}

	result := Score(recipe, pet)

	if !containsString(result.Reasoning.Conflicts, "Not optimized") {
		t.Errorf("Conflicts = %v, want soft penalty note", result.Reasoning.Conflicts)
	}
	// Soft penalty only: the recipe stays recommendable.
	if result.MatchScore < 30 {
		t.Errorf("MatchScore = %d, want >= 30 despite penalty", result.MatchScore)
	}
}

func TestScoreOverweightLowCalorieBonus(t *testing.T) {
	recipe := jointHealthRecipe()
	recipe.Tags = []string{"low-calorie"}

	pet := adultLabrador()
	pet.WeightStatus = WeightOverweight

	plain := Score(jointHealthRecipe(), adultLabrador())
	boosted := Score(recipe, pet)

	if boosted.MatchScore < plain.MatchScore {
		t.Errorf("low-calorie bonus missing: %d < %d", boosted.MatchScore, plain.MatchScore)
	}
	if !containsString(boosted.Reasoning.GoodMatches, "Low-calorie fit for weight control") {
		t.Errorf("GoodMatches = %v, want weight control note", boosted.Reasoning.GoodMatches)
	}
}

func TestScoreMissingNutritionCapsScore(t *testing.T) {
	recipe := jointHealthRecipe()
	recipe.NutritionalInfo = &NutritionalInfo{
		Protein:  &NutrientRange{Min: 25, Max: 30},
		Calories: &NutrientRange{Min: 400, Max: 450},
	}

	withNutrition := Score(recipe, adultLabrador())
	withoutNutrition := Score(jointHealthRecipe(), adultLabrador())

	if !containsString(withNutrition.Reasoning.GoodMatches, "Nutritional profile") {
		t.Errorf("GoodMatches = %v, want nutrition note", withNutrition.Reasoning.GoodMatches)
	}
	if withoutNutrition.MatchScore > 100 || withNutrition.MatchScore > 100 {
		t.Errorf("scores exceed 100: %d, %d", withoutNutrition.MatchScore, withNutrition.MatchScore)
	}
}

func TestScoreAvoidTokenPenalty(t *testing.T) {
	// gi_issues avoids broccoli; a digestive pet loses points for it.
	recipe := &Recipe{
		ID:             "test-beef-broccoli",
		Category:       "dogs",
		AgeGroups:      []string{"adult"},
		HealthConcerns: []string{"digestive"},
		Ingredients: []Ingredient{
			{Name: "Ground Beef", Amount: "200 g"},
			{Name: "Broccoli", Amount: "50 g"},
		},
	}
	pet := adultLabrador()
	pet.HealthConcerns = []string{"digestive issues"}

	result := Score(recipe, pet)

	if result.ConflictCount == 0 {
		t.Errorf("ConflictCount = 0, want avoid-token conflict")
	}
	if !containsString(result.Reasoning.Conflicts, "Broccoli") {
		t.Errorf("Conflicts = %v, want broccoli penalty", result.Reasoning.Conflicts)
	}
}

func TestScoreHydrationFlag(t *testing.T) {
	recipe := &Recipe{
		ID:             "test-renal",
		Category:       "cats",
		AgeGroups:      []string{"senior"},
		HealthConcerns: []string{"kidney"},
		Ingredients: []Ingredient{
			{Name: "White Fish", Amount: "180 g"},
		},
	}
	pet := &PetProfile{
		Type:           "cat",
		Age:            "senior",
		WeightKg:       4,
		HealthConcerns: []string{"kidney disease"},
	}

	result := Score(recipe, pet)

	if !result.HasHydrationSupport {
		t.Errorf("HasHydrationSupport = false, want true for kidney concern")
	}
}

func TestScoreBounds(t *testing.T) {
	recipes := []*Recipe{
		jointHealthRecipe(),
		{ID: "bare", Category: "dogs"},
		{
			ID:             "loaded",
			Category:       "cats",
			AgeGroups:      []string{"adult"},
			HealthConcerns: []string{"kidney", "urinary-health", "diabetes", "weight-management", "digestive"},
			Tags:           []string{"low-calorie"},
			Ingredients: []Ingredient{
				{Name: "Chicken Breast", Amount: "200 g"},
				{Name: "Cheese", Amount: "20 g"},
			},
			NutritionalInfo: &NutritionalInfo{Calories: &NutrientRange{Min: 300, Max: 350}},
		},
	}
	pets := []*PetProfile{
		adultLabrador(),
		{Type: "cats", Age: "adult", WeightKg: 4,
			HealthConcerns: []string{"kidney", "urinary-health", "diabetes", "weight-management", "digestive"},
			WeightStatus:   WeightOverweight},
		{Type: "dogs", Age: "baby", WeightKg: 2,
			HealthConcerns: []string{"allergies"}, Allergies: []string{"soy"}},
	}

	for _, recipe := range recipes {
		for _, pet := range pets {
			result := Score(recipe, pet)
			if result.MatchScore < 0 || result.MatchScore > 100 {
				t.Errorf("recipe %s: MatchScore = %d out of bounds", recipe.ID, result.MatchScore)
			}
			if result.Stars < 1 || result.Stars > 5 {
				t.Errorf("recipe %s: Stars = %d out of bounds", recipe.ID, result.Stars)
			}
		}
	}
}

func TestMapScoreToStars(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{100, 5},
		{90, 5},
		{89, 4},
		{75, 4},
		{74, 3},
		{55, 3},
		{54, 2},
		{30, 2},
		{29, 1},
		{0, 1},
	}
	prevStars := 0
	for i := len(tests) - 1; i >= 0; i-- {
		got := mapScoreToStars(tests[i].score)
		if got != tests[i].want {
			t.Errorf("mapScoreToStars(%d) = %d, want %d", tests[i].score, got, tests[i].want)
		}
		if got < prevStars {
			t.Errorf("stars not monotonic at score %d", tests[i].score)
		}
		prevStars = got
	}
}
