// Package data holds the static lookup tables consumed by the scoring
// pipeline: per-species modifier rules, calorie adjustments, the
// vetted product map and the embedded recipe catalog. Everything here
// is read-only at runtime.
package data

// SupplementAdd is one "add" entry of a modifier rule: a supplement
// recommended for a health concern, with a generic purchase link.
type SupplementAdd struct {
	Name         string
	Benefit      string
	PurchaseLink string
}

// ModifierRule maps a health concern to supplement additions, avoid
// tokens scanned against ingredient text, and a score boost applied
// when a recipe supports the concern.
type ModifierRule struct {
	Add        []SupplementAdd
	Avoid      []string
	ScoreBoost int
}

// DogModifiers keys dog health concerns (modifier key-space) to rules.
var DogModifiers = map[string]ModifierRule{
	"allergies": {
		Add: []SupplementAdd{
			{
				Name:         "Novel Proteins (Duck, Venison, Lamb)",
				Benefit:      "Lower antigen exposure reduces allergy flare-ups",
				PurchaseLink: "https://www.amazon.com/s?k=duck+dog+food",
			},
			{
				Name:         "Omega-3 Fish Oil",
				Benefit:      "Improves skin barrier function, reduces itching",
				PurchaseLink: "https://www.amazon.com/s?k=omega+3+fish+oil+for+dogs",
			},
		},
		Avoid:      []string{"Chicken", "Dairy", "Wheat", "Soy", "Artificial colors"},
		ScoreBoost: 25,
	},
	"gi_issues": {
		Add: []SupplementAdd{
			{
				Name:         "Pumpkin Puree",
				Benefit:      "Soluble fiber stabilizes digestion",
				PurchaseLink: "https://www.amazon.com/s?k=pumpkin+puree+for+dogs",
			},
			{
				Name:         "Probiotic Supplement",
				Benefit:      "Restores healthy gut microbiome",
				PurchaseLink: "https://www.amazon.com/s?k=probiotic+supplement+for+dogs",
			},
			{
				Name:         "White Rice",
				Benefit:      "Highly digestible carbohydrate source",
				PurchaseLink: "https://www.amazon.com/s?k=white+rice+for+dogs",
			},
		},
		Avoid:      []string{"High-fat meats", "Spicy ingredients", "Broccoli", "Cauliflower"},
		ScoreBoost: 20,
	},
	"joint_issues": {
		Add: []SupplementAdd{
			{
				Name:         "Green Lipped Mussel",
				Benefit:      "Chondroprotective + anti-inflammatory",
				PurchaseLink: "https://www.amazon.com/s?k=green+lipped+mussel+supplement+for+dogs",
			},
			{
				Name:         "Glucosamine & Chondroitin",
				Benefit:      "Slows cartilage breakdown",
				PurchaseLink: "https://www.amazon.com/s?k=glucosamine+chondroitin+for+dogs",
			},
			{
				Name:         "Turmeric (Curcumin)",
				Benefit:      "Supports reduced inflammation",
				PurchaseLink: "https://www.amazon.com/s?k=turmeric+curcumin+for+dogs",
			},
		},
		Avoid:      []string{"Starchy fillers", "Organ meat overload"},
		ScoreBoost: 15,
	},
	"weight_management": {
		Add: []SupplementAdd{
			{
				Name:         "Lean Protein",
				Benefit:      "Preserves muscle while reducing calories",
				PurchaseLink: "https://www.amazon.com/s?k=lean+protein+dog+food",
			},
			{
				Name:         "Low-cal Veggies (Zucchini, Green Beans)",
				Benefit:      "Satiety without calorie load",
				PurchaseLink: "https://www.amazon.com/s?k=zucchini+for+dogs",
			},
		},
		Avoid:      []string{"Added fats", "Cheese", "Peanut butter", "Kibble mixers"},
		ScoreBoost: 10,
	},
	"kidney_support": {
		Add: []SupplementAdd{
			{
				Name:         "Omega-3 Fish Oil (EPA/DHA)",
				Benefit:      "Reduces renal inflammation",
				PurchaseLink: "https://www.amazon.com/s?k=omega+3+fish+oil+for+dogs",
			},
			{
				Name:         "Low-Phosphorus Protein (Egg Whites)",
				Benefit:      "Reduces workload on compromised kidneys",
				PurchaseLink: "https://www.amazon.com/s?k=egg+white+powder",
			},
			{
				Name:         "Bone Broth (Low Sodium)",
				Benefit:      "Boosts hydration and palatability",
				PurchaseLink: "https://www.amazon.com/s?k=bone+broth+for+dogs",
			},
		},
		Avoid:      []string{"Organ meats", "Liver", "High-sodium", "Cured meats"},
		ScoreBoost: 25,
	},
	"urinary_health": {
		Add: []SupplementAdd{
			{
				Name:         "Cranberry Extract (D-Mannose)",
				Benefit:      "Prevents bacterial adhesion and UTIs",
				PurchaseLink: "https://www.amazon.com/s?k=cranberry+supplement+for+dogs",
			},
			{
				Name:         "Bone Broth",
				Benefit:      "Dilutes urine and supports bladder flushing",
				PurchaseLink: "https://www.amazon.com/s?k=bone+broth+for+dogs",
			},
		},
		Avoid:      []string{"Spinach", "High-oxalate vegetables", "Excess minerals"},
		ScoreBoost: 20,
	},
	"diabetes": {
		Add: []SupplementAdd{
			{
				Name:         "High-Fiber Vegetables",
				Benefit:      "Slows glucose absorption",
				PurchaseLink: "https://www.amazon.com/s?k=green+beans+for+dogs",
			},
			{
				Name:         "Lean Protein",
				Benefit:      "Stable energy without glycemic spikes",
				PurchaseLink: "https://www.amazon.com/s?k=lean+protein+dog+food",
			},
		},
		Avoid:      []string{"White rice", "Corn syrup", "Honey", "Simple carbs"},
		ScoreBoost: 20,
	},
}

// CatModifiers keys cat health concerns (modifier key-space) to rules.
var CatModifiers = map[string]ModifierRule{
	"kidney_support": {
		Add: []SupplementAdd{
			{
				Name:         "Omega-3 Fish Oil (EPA/DHA)",
				Benefit:      "Reduces kidney inflammation and slows progression of CKD",
				PurchaseLink: "https://www.amazon.com/s?k=omega+3+fish+oil+for+cats",
			},
			{
				Name:         "Low-Phosphorus Protein Sources (Rabbit, Egg Whites)",
				Benefit:      "Low renal load improves longevity in kidney disease cats",
				PurchaseLink: "https://www.amazon.com/s?k=freeze+dried+rabbit+cat",
			},
			{
				Name:         "Hydration Enhancers (Bone Broth)",
				Benefit:      "Improves urine dilution and reduces toxin buildup",
				PurchaseLink: "https://www.amazon.com/s?k=bone+broth+for+cats",
			},
		},
		Avoid:      []string{"Liver", "Kidney", "High-sodium", "Kibble-only"},
		ScoreBoost: 25,
	},
	"urinary_health": {
		Add: []SupplementAdd{
			{
				Name:         "DL-Methionine",
				Benefit:      "Maintains acidic urine pH to prevent struvite crystals",
				PurchaseLink: "https://www.amazon.com/s?k=dl+methionine+for+cats",
			},
			{
				Name:         "Cranberry Extract (D-Mannose)",
				Benefit:      "Prevents bacterial adhesion and UTIs",
				PurchaseLink: "https://www.amazon.com/s?k=cranberry+supplement+for+cats",
			},
			{
				Name:         "Wet Food / Hydration Boosters",
				Benefit:      "Flushes bladder and prevents stone formation",
				PurchaseLink: "https://www.amazon.com/s?k=hydration+booster+for+cats",
			},
		},
		Avoid:      []string{"Peas", "Legumes", "High-magnesium", "Kibble-only"},
		ScoreBoost: 20,
	},
	"diabetes": {
		Add: []SupplementAdd{
			{
				Name:         "High-Protein Low-Carb Toppers",
				Benefit:      "Keeps blood glucose stable between meals",
				PurchaseLink: "https://www.amazon.com/s?k=high+protein+cat+food+topper",
			},
		},
		Avoid:      []string{"White rice", "Corn", "Potato", "Gravy thickeners"},
		ScoreBoost: 20,
	},
	"allergies": {
		Add: []SupplementAdd{
			{
				Name:         "Novel Proteins (Rabbit, Venison)",
				Benefit:      "Avoids common feline allergens",
				PurchaseLink: "https://www.amazon.com/s?k=novel+protein+cat+food",
			},
			{
				Name:         "Omega-3 Fish Oil",
				Benefit:      "Calms itchy skin and supports coat health",
				PurchaseLink: "https://www.amazon.com/s?k=omega+3+fish+oil+for+cats",
			},
		},
		Avoid:      []string{"Chicken", "Fish", "Dairy", "Beef"},
		ScoreBoost: 25,
	},
	"joint_issues": {
		Add: []SupplementAdd{
			{
				Name:         "Glucosamine & Chondroitin",
				Benefit:      "Supports cartilage in aging joints",
				PurchaseLink: "https://www.amazon.com/s?k=glucosamine+for+cats",
			},
			{
				Name:         "Green Lipped Mussel",
				Benefit:      "Natural anti-inflammatory for mobility",
				PurchaseLink: "https://www.amazon.com/s?k=green+lipped+mussel+for+cats",
			},
		},
		Avoid:      []string{"Starchy fillers"},
		ScoreBoost: 15,
	},
	"gi_issues": {
		Add: []SupplementAdd{
			{
				Name:         "Pumpkin Puree",
				Benefit:      "Gentle fiber for hairballs and digestion",
				PurchaseLink: "https://www.amazon.com/s?k=pumpkin+puree+for+cats",
			},
			{
				Name:         "Probiotic Supplement",
				Benefit:      "Restores gut flora after upsets",
				PurchaseLink: "https://www.amazon.com/s?k=probiotic+for+cats",
			},
		},
		Avoid:      []string{"Dairy", "High-fat meats", "Spices"},
		ScoreBoost: 20,
	},
	"weight_management": {
		Add: []SupplementAdd{
			{
				Name:         "Lean Protein",
				Benefit:      "Preserves muscle during calorie restriction",
				PurchaseLink: "https://www.amazon.com/s?k=lean+protein+cat+food",
			},
		},
		Avoid:      []string{"Added fats", "Treat toppers", "Free-feeding kibble"},
		ScoreBoost: 10,
	},
}

// ModifiersForSpecies returns the species-appropriate modifier table.
// Species other than dogs and cats get an empty table; the pipeline
// then degrades to plain compatibility scoring.
func ModifiersForSpecies(species string) map[string]ModifierRule {
	switch species {
	case "dogs":
		return DogModifiers
	case "cats":
		return CatModifiers
	}
	return map[string]ModifierRule{}
}

// CalorieAdjustments is the per-concern additive adjustment (kcal/kg)
// applied by the portion calculator. Keys cover both canonical and
// common raw phrasings.
var CalorieAdjustments = map[string]float64{
	"weight-management": -20,
	"obesity":           -20,
	"allergies":         0,
	"joint-health":      -5,
	"digestive":         -5,
	"kidney":            -10,
	"urinary-health":    -5,
	"diabetes":          -15,
	"hyperthyroidism":   +10,
	"pancreatitis":      -15,
	"hairball":          0,
}
