package nutrition

import (
	"regexp"
	"strings"
)

// concernAliases maps human-readable health concern labels to the
// canonical kebab-case vocabulary used by recipe tags.
var concernAliases = map[string]string{
	"arthritis/joint pain":      "joint-health",
	"joint pain":                "joint-health",
	"arthritis":                 "joint-health",
	"joint issues":              "joint-health",
	"obesity/weight management": "weight-management",
	"obesity":                   "weight-management",
	"weight management":         "weight-management",
	"kidney disease":            "kidney",
	"kidney support":            "kidney",
	"renal disease":             "kidney",
	"urinary problems":          "urinary-health",
	"urinary tract issues":      "urinary-health",
	"dental problems":           "dental-issues",
	"dental disease":            "dental-issues",
	"digestive issues":          "digestive",
	"gi issues":                 "digestive",
	"sensitive stomach":         "digestive",
	"allergies/skin issues":     "allergies",
	"skin issues":               "allergies",
	"food allergies":            "allergies",
	"diabetes mellitus":         "diabetes",
	"heart disease":             "heart-disease",
	"hyperthyroid":              "hyperthyroidism",
}

// concernToModifierKey maps canonical concern ids to the key-space of
// the static modifier tables. Distinct from the alias table above:
// recipe tags say "joint-health", the modifier tables say
// "joint_issues".
var concernToModifierKey = map[string]string{
	"allergies":              "allergies",
	"joint-health":           "joint_issues",
	"weight-management":      "weight_management",
	"digestive":              "gi_issues",
	"gi-issues":              "gi_issues",
	"kidney":                 "kidney_support",
	"kidney-disease":         "kidney_support",
	"kidney/urinary-support": "kidney_support",
	"urinary-health":         "urinary_health",
	"diabetes":               "diabetes",
	"skin-coat":              "allergies", // approximate
}

var nonKebabChars = regexp.MustCompile(`[^a-z0-9]+`)

// kebabCase lowercases the input and collapses every non-alphanumeric
// run into a single dash.
func kebabCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonKebabChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeConcern canonicalizes a free-text health concern label.
// Lookup order: exact alias match, partial containment in either
// direction against the alias table, then generic kebab-casing of the
// raw string. The substring tolerance mirrors how users phrase
// concerns ("Obesity/Weight Management" vs "obesity").
func NormalizeConcern(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if canonical, ok := concernAliases[s]; ok {
		return canonical
	}
	kebab := kebabCase(s)
	if canonical, ok := concernAliases[kebab]; ok {
		return canonical
	}
	for alias, canonical := range concernAliases {
		if strings.Contains(s, alias) || strings.Contains(alias, s) {
			return canonical
		}
	}
	return kebab
}

// ModifierKeyFor resolves a pet health concern to the key of its
// static modifier rule, if one exists. Tries the canonical form first
// and falls back to the raw lowercase label.
func ModifierKeyFor(concern string) (string, bool) {
	if key, ok := concernToModifierKey[NormalizeConcern(concern)]; ok {
		return key, true
	}
	key, ok := concernToModifierKey[strings.ToLower(strings.TrimSpace(concern))]
	return key, ok
}

// concernMatches reports whether a pet concern and a recipe tag refer
// to the same condition, tolerating partial phrasing in either
// direction after normalization.
func concernMatches(petConcern, recipeTag string) bool {
	p := NormalizeConcern(petConcern)
	r := NormalizeConcern(recipeTag)
	if p == "" || r == "" {
		return false
	}
	return p == r || strings.Contains(p, r) || strings.Contains(r, p)
}

// isHydrationConcern reports whether a concern belongs to the
// kidney/urinary family that benefits from hydration support.
func isHydrationConcern(concern string) bool {
	c := strings.ToLower(concern)
	return strings.Contains(c, "kidney") || strings.Contains(c, "urinary")
}

// isAllergyConcern reports whether a concern is allergy-flavored.
func isAllergyConcern(concern string) bool {
	return strings.Contains(strings.ToLower(concern), "allerg")
}
