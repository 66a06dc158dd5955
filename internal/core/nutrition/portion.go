package nutrition

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pet-nutrition-api/internal/core/nutrition/data"
)

// Caloric model constants. Calories/kg is clamped to a safe band and
// the final portion multiplier to a sane scaling range.
const (
	minCaloriesPerKg = 55
	maxCaloriesPerKg = 140
	minMultiplier    = 0.3
	maxMultiplier    = 3.0

	// Fallback per-serving calorie baseline when a recipe carries no
	// calorie data at all.
	fallbackRecipeCalories = 350
)

// defaultCaloriesPerKg is the base metabolic rate lookup per species.
var defaultCaloriesPerKg = map[string]float64{
	SpeciesDogs: 95,
	SpeciesCats: 75,
}

// ageAdjustments is the additive kcal/kg adjustment per age group.
var ageAdjustments = map[string]float64{
	AgeBaby:   +15,
	AgeYoung:  +5,
	AgeAdult:  0,
	AgeSenior: -10,
}

// unitToGrams converts amount units to grams. Volume units assume
// water density; all values are shopping-quantity approximations, not
// dosing instruments.
var unitToGrams = map[string]float64{
	"g": 1, "gram": 1, "grams": 1,
	"kg": 1000,
	"mg": 0.001,
	"oz": 28.35, "ounce": 28.35, "ounces": 28.35,
	"lb": 453.59, "lbs": 453.59,
	"cup": 240, "cups": 240,
	"tbsp": 15, "tablespoon": 15, "tablespoons": 15,
	"tsp": 5, "teaspoon": 5, "teaspoons": 5,
	"ml": 1,
	"liter": 1000, "liters": 1000, "l": 1000,
}

var numericPattern = regexp.MustCompile(`[\d.]+`)
var nonAlphaPattern = regexp.MustCompile(`[^a-z]`)

// ParseAmountToGrams converts a free-form amount string ("200 g",
// "1.5 cups") to grams. Unparseable input degrades to 0; a bare
// number or unknown unit passes the quantity through unchanged.
func ParseAmountToGrams(amount string) float64 {
	if amount == "" {
		return 0
	}
	match := numericPattern.FindString(amount)
	if match == "" {
		return 0
	}
	quantity, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	unit := strings.ToLower(strings.Replace(amount, match, "", 1))
	unit = nonAlphaPattern.ReplaceAllString(unit, "")
	if unit == "" {
		return quantity
	}
	if conversion, ok := unitToGrams[unit]; ok {
		return quantity * conversion
	}
	return quantity
}

// parseCalories extracts a numeric calorie value from a legacy
// free-text field ("about 450 kcal per serving").
func parseCalories(calorieString string) float64 {
	if calorieString == "" {
		return 0
	}
	match := numericPattern.FindString(calorieString)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// GetCaloriesPerKg derives the pet's caloric need per kg: species
// base, age adjustment, per-concern adjustments, clamped to the safe
// band. An explicit profile override short-circuits everything.
func GetCaloriesPerKg(profile *PetProfile) (float64, []string) {
	if profile.CaloriesPerKgOverride > 0 {
		return profile.CaloriesPerKgOverride, []string{"User override applied"}
	}

	species := NormalizeSpecies(profile.Type)
	base, ok := defaultCaloriesPerKg[species]
	if !ok {
		base = defaultCaloriesPerKg[SpeciesDogs]
	}
	caloriesPerKg := base
	notes := []string{fmt.Sprintf("Base MER %.0f kcal/kg for %s", base, species)}

	if adj, ok := ageAdjustments[strings.ToLower(profile.Age)]; ok && adj != 0 {
		caloriesPerKg += adj
		notes = append(notes, fmt.Sprintf("Age adjustment (%s): %+.0f kcal/kg", profile.Age, adj))
	}

	for _, concern := range profile.HealthConcerns {
		adj, ok := data.CalorieAdjustments[strings.ToLower(strings.TrimSpace(concern))]
		if !ok {
			adj, ok = data.CalorieAdjustments[kebabCase(concern)]
		}
		if ok && adj != 0 {
			caloriesPerKg += adj
			notes = append(notes, fmt.Sprintf("Health adjustment (%s): %+.0f kcal/kg", concern, adj))
		}
	}

	clamped := clamp(caloriesPerKg, minCaloriesPerKg, maxCaloriesPerKg)
	if clamped != caloriesPerKg {
		notes = append(notes, fmt.Sprintf("Calorie target clamped to safe bounds (%d-%d kcal/kg)", minCaloriesPerKg, maxCaloriesPerKg))
	}
	return clamped, notes
}

// recipeCalorieBaseline resolves the recipe's per-serving calories:
// structured range first, then the legacy free-text field, then the
// fixed fallback.
func recipeCalorieBaseline(recipe *Recipe) float64 {
	if ni := recipe.NutritionalInfo; ni != nil && ni.Calories != nil {
		if ni.Calories.Min > 0 {
			return ni.Calories.Min
		}
		if ni.Calories.Max > 0 {
			return ni.Calories.Max
		}
	}
	if li := recipe.NutritionInfo; li != nil {
		if v := parseCalories(li.Calories); v > 0 {
			return v
		}
	}
	return fallbackRecipeCalories
}

// GetPortionPlan converts a pet's daily caloric need into a scaling
// multiplier over the recipe's total ingredient mass, with a
// human-readable derivation trail.
func GetPortionPlan(recipe *Recipe, profile *PetProfile) PortionPlan {
	caloriesPerKg, notes := GetCaloriesPerKg(profile)
	dailyCalories := int(math.Round(profile.WeightKg * caloriesPerKg))

	recipeCalories := recipeCalorieBaseline(recipe)
	notes = append(notes, fmt.Sprintf("Recipe baseline %.0f kcal per serving", recipeCalories))

	totalGrams := 0.0
	for _, ing := range recipe.Ingredients {
		totalGrams += ParseAmountToGrams(ing.Amount)
	}

	multiplier := clamp(float64(dailyCalories)/recipeCalories, minMultiplier, maxMultiplier)
	notes = append(notes, fmt.Sprintf("Portion multiplier %.2fx over %.0f g of ingredients", multiplier, totalGrams))

	dailyPortionGrams := int(math.Round(totalGrams * multiplier))
	return PortionPlan{
		CaloriesPerKg:      caloriesPerKg,
		DailyCalories:      dailyCalories,
		WeeklyCalories:     dailyCalories * 7,
		Multiplier:         multiplier,
		DailyPortionGrams:  dailyPortionGrams,
		WeeklyPortionGrams: dailyPortionGrams * 7,
		Notes:              notes,
	}
}

// ScaleAmount rescales the numeric part of a free-form amount string
// by the portion multiplier, keeping the unit text intact. Amounts
// without a numeric part pass through unchanged.
func ScaleAmount(amount string, multiplier float64) string {
	if amount == "" {
		return amount
	}
	match := numericPattern.FindString(amount)
	if match == "" {
		return amount
	}
	quantity, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return amount
	}
	scaled := strconv.FormatFloat(quantity*multiplier, 'f', 1, 64)
	scaled = strings.TrimSuffix(scaled, ".0")
	return strings.Replace(amount, match, scaled, 1)
}

func clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}
