package nutrition

import (
	"fmt"
	"math"
	"strings"

	"pet-nutrition-api/internal/core/nutrition/data"
)

// Scoring weights and bounds. The score accumulates against a
// "possible" ceiling and is normalized to 0-100 at the end.
const (
	baseScore          = 50
	ageBonus           = 15
	breedBonus         = 10
	concernBonus       = 15
	maxConcernMatches  = 4
	weightControlBonus = 10
	nutritionBonus     = 15
	possibleFull       = 100
	possibleNoNutrient = 80
	concernFloor       = 30
	avoidPenalty       = 5
	missingConcernsCap = 20
)

// commonAllergens is the fallback allergen list scanned when a pet
// has an allergy concern but no explicit allergy list.
var commonAllergens = []string{
	"chicken", "beef", "pork", "fish", "soy",
	"dairy", "egg", "wheat", "peanut", "lamb",
}

// Star rating thresholds over the 0-100 match score.
func mapScoreToStars(score int) int {
	switch {
	case score >= 90:
		return 5
	case score >= 75:
		return 4
	case score >= 55:
		return 3
	case score >= 30:
		return 2
	default:
		return 1
	}
}

// ingredientText joins lowercase ingredient names for substring scans.
func ingredientText(ingredients []Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		parts = append(parts, strings.ToLower(ing.Name))
	}
	return strings.Join(parts, " ")
}

// detectAllergen returns the first allergen substring found in the
// recipe's ingredient text. The pet's explicit allergy list takes
// precedence; a pet with only an allergy-type concern falls back to
// the common allergen list. Pets with neither are never gated.
func detectAllergen(recipe *Recipe, pet *PetProfile) string {
	text := ingredientText(recipe.Ingredients)
	if len(pet.Allergies) > 0 {
		for _, a := range pet.Allergies {
			al := strings.ToLower(strings.TrimSpace(a))
			if al != "" && strings.Contains(text, al) {
				return al
			}
		}
		return ""
	}
	for _, c := range pet.HealthConcerns {
		if isAllergyConcern(c) {
			for _, allergen := range commonAllergens {
				if strings.Contains(text, allergen) {
					return allergen
				}
			}
			return ""
		}
	}
	return ""
}

// Score computes the 0-100 compatibility of a recipe for a pet, with
// a star rating and a human-readable reasoning trail. Deterministic
// and pure: no I/O beyond static table lookups.
func Score(recipe *Recipe, pet *PetProfile) ScoreResult {
	reasoning := ScoreReasoning{GoodMatches: []string{}, Conflicts: []string{}}

	// Species gate: terminal, nothing else is computed.
	if !MatchesSpecies(recipe, pet) {
		reasoning.Conflicts = append(reasoning.Conflicts, "Different species - not suitable")
		return ScoreResult{MatchScore: 0, Stars: 1, Reasoning: reasoning, ConflictCount: 1}
	}

	score := baseScore
	possible := possibleFull
	conflictCount := 0
	hasHydrationSupport := false

	// Age group match. Absence is permissive: no penalty.
	for _, ag := range recipe.AgeGroups {
		if strings.EqualFold(ag, pet.Age) || strings.EqualFold(ag, "all") {
			score += ageBonus
			reasoning.GoodMatches = append(reasoning.GoodMatches, "Age group match")
			break
		}
	}

	// Breed-specific recipes get a bonus for the matching breed.
	if pet.Breed != "" {
		for _, b := range recipe.Breeds {
			if strings.EqualFold(b, pet.Breed) {
				score += breedBonus
				reasoning.GoodMatches = append(reasoning.GoodMatches, "Breed-specific match")
				break
			}
		}
	}

	// Health concern overlap: +15 per supported concern, capped at 4.
	matchedConcerns := make([]string, 0, len(pet.HealthConcerns))
	healthMatches := 0
	for _, concern := range pet.HealthConcerns {
		matched := false
		for _, tag := range recipe.HealthConcerns {
			if concernMatches(concern, tag) {
				matched = true
				break
			}
		}
		if matched {
			matchedConcerns = append(matchedConcerns, concern)
			if healthMatches < maxConcernMatches {
				healthMatches++
				reasoning.GoodMatches = append(reasoning.GoodMatches, fmt.Sprintf("Supports %s", NormalizeConcern(concern)))
			}
		}
	}
	score += healthMatches * concernBonus

	// A recipe with no concern tags at all is "not optimized" for a
	// pet that has concerns: soft penalty, never a rejection.
	if len(pet.HealthConcerns) > 0 && len(recipe.HealthConcerns) == 0 {
		penalty := avoidPenalty * 2 * len(pet.HealthConcerns)
		if penalty > missingConcernsCap {
			penalty = missingConcernsCap
		}
		score -= penalty
		reasoning.Conflicts = append(reasoning.Conflicts,
			"Not optimized for your pet's health concerns, but still safe")
		if score < concernFloor {
			score = concernFloor
		}
	}

	// Weight control fit.
	if pet.WeightStatus == WeightOverweight && hasTag(recipe, "low-calorie") {
		score += weightControlBonus
		reasoning.GoodMatches = append(reasoning.GoodMatches, "Low-calorie fit for weight control")
	}

	// Allergen override: safety-first, supersedes all prior scoring.
	if allergen := detectAllergen(recipe, pet); allergen != "" {
		reasoning.Conflicts = append(reasoning.Conflicts, fmt.Sprintf("Contains potential allergen: %s", allergen))
		return ScoreResult{MatchScore: 0, Stars: 1, Reasoning: reasoning, ConflictCount: conflictCount + 1}
	}

	// Nutrition presence: without any nutrition data a recipe can
	// never reach a perfect score.
	if recipe.NutritionalInfo != nil || recipe.NutritionInfo != nil {
		score += nutritionBonus
		reasoning.GoodMatches = append(reasoning.GoodMatches, "Nutritional profile fits AAFCO ranges")
	} else {
		possible = possibleNoNutrient
	}

	// Modifier rules: boost for supported concerns, -5 per avoid token
	// found in the ingredient list.
	modifiers := data.ModifiersForSpecies(NormalizeSpecies(pet.Type))
	matched := make(map[string]bool, len(matchedConcerns))
	for _, c := range matchedConcerns {
		matched[NormalizeConcern(c)] = true
	}
	for _, concern := range pet.HealthConcerns {
		key, ok := ModifierKeyFor(concern)
		if !ok {
			continue
		}
		rule, ok := modifiers[key]
		if !ok {
			continue
		}
		if matched[NormalizeConcern(concern)] {
			score += rule.ScoreBoost
			reasoning.GoodMatches = append(reasoning.GoodMatches,
				fmt.Sprintf("+%d for %s support", rule.ScoreBoost, NormalizeConcern(concern)))
		}
		for _, token := range scanAvoidConflicts(recipe.Ingredients, rule.Avoid) {
			score -= avoidPenalty
			conflictCount++
			reasoning.Conflicts = append(reasoning.Conflicts,
				fmt.Sprintf("-%d for containing %s (%s)", avoidPenalty, token, NormalizeConcern(concern)))
		}
		if isHydrationConcern(concern) {
			hasHydrationSupport = true
		}
	}

	// Clamp and normalize to 0-100.
	if score > possible {
		score = possible
	}
	if score < 0 {
		score = 0
	}
	matchScore := int(math.Round(float64(score) / float64(possible) * 100))

	return ScoreResult{
		MatchScore:          matchScore,
		Stars:               mapScoreToStars(matchScore),
		Reasoning:           reasoning,
		ConflictCount:       conflictCount,
		HasHydrationSupport: hasHydrationSupport,
	}
}

func hasTag(recipe *Recipe, tag string) bool {
	for _, t := range recipe.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
