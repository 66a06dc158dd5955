package nutrition

import "strings"

// NormalizeSpecies maps caller-supplied species strings onto catalog
// categories ("dog" -> "dogs", "Cat" -> "cats"). Unknown species pass
// through lowercased.
func NormalizeSpecies(species string) string {
	s := strings.ToLower(strings.TrimSpace(species))
	switch s {
	case "dog", "dogs", "canine":
		return SpeciesDogs
	case "cat", "cats", "feline":
		return SpeciesCats
	}
	return s
}

// largeBirdBreeds marks breeds that should match bird_large recipes.
var largeBirdBreeds = []string{"parrot", "cockatoo", "african grey", "macaw", "conure", "quaker"}

// MatchesSpecies is the hard species gate: a recipe is only eligible
// for a pet when its category corresponds to the pet's species.
// Exotic species get subtype aliasing (generic bird recipes match all
// birds, bird_large only matches large breeds, and so on).
func MatchesSpecies(recipe *Recipe, pet *PetProfile) bool {
	if recipe == nil || recipe.Category == "" {
		return false
	}
	category := strings.ToLower(recipe.Category)
	petType := strings.ToLower(strings.TrimSpace(pet.Type))

	// Exact match first.
	if category == petType {
		return true
	}
	if NormalizeSpecies(category) == NormalizeSpecies(petType) {
		return true
	}

	switch NormalizeSpecies(petType) {
	case "bird", "birds":
		if category == "bird" || category == "birds" {
			return true
		}
		isLarge := false
		breed := strings.ToLower(pet.Breed)
		for _, lb := range largeBirdBreeds {
			if strings.Contains(breed, lb) {
				isLarge = true
				break
			}
		}
		if category == "bird_large" {
			return isLarge
		}
		if category == "bird_small" {
			return !isLarge
		}
	case "reptile", "reptiles":
		if category == "reptile" || category == "reptiles" {
			return true
		}
		// Diet-specific reptile categories require an explicit breed
		// mapping we do not carry; generic recipes only.
	case "pocket-pet", "pocket-pets":
		if category == "pocket-pet" || category == "pocket-pets" {
			return true
		}
	}
	return false
}
