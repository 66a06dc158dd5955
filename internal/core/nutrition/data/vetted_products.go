package data

import (
	"sort"
	"strings"
)

// VettedProduct maps a generic ingredient name to a specific
// purchasable product. Multi-vendor links carry different commission
// rates; AllAffiliateLinks sorts them best-first.
type VettedProduct struct {
	ProductName    string
	AmazonLink     string
	ChewyLink      string
	SpecialtyLink  string
	VetNote        string
	Category       string
	CommissionRate float64
}

// AffiliateLink is one vendor option for a vetted product.
type AffiliateLink struct {
	Vendor     string
	URL        string
	Commission float64
}

// Default commission estimates per vendor when the product carries none.
const (
	amazonCommission    = 0.03
	chewyCommission     = 0.08
	specialtyCommission = 0.10
)

// vettedProducts keys lowercase generic ingredient names.
var vettedProducts = map[string]VettedProduct{
	"ground chicken": {
		ProductName:    "Ground Chicken (Freeze Dried)",
		AmazonLink:     "https://www.amazon.com/dp/B0BXZVFN6G?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/fresh-is-best-freeze-dried-chicken/dp/148916",
		VetNote:        "Human-grade chicken breast that keeps its nutritional value through freeze-drying.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"ground turkey": {
		ProductName:    "Ground Turkey (Free Range)",
		AmazonLink:     "https://www.amazon.com/dp/B091CCD4T7?tag=pawplates-20",
		VetNote:        "Free-range turkey with an optimal protein-to-fat ratio.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"ground beef": {
		ProductName:    "Ground Beef (Lean, Grass Fed)",
		AmazonLink:     "https://www.amazon.com/dp/B07VHR2WNZ?tag=pawplates-20",
		VetNote:        "Grass-fed beef with controlled fat content for weight management.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"ground lamb": {
		ProductName:    "Ground Lamb (Raw)",
		AmazonLink:     "https://www.amazon.com/dp/B0082C00P8?tag=pawplates-20",
		VetNote:        "Novel protein source for pets with chicken or beef allergies.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"chicken breast": {
		ProductName:    "Chicken Breast (Air Chilled)",
		AmazonLink:     "https://www.amazon.com/dp/B0787WTY4C?tag=pawplates-20",
		VetNote:        "Air-chilled breast with superior moisture retention and protein quality.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"turkey breast": {
		ProductName:    "Turkey Breast (Freeze Dried)",
		AmazonLink:     "https://www.amazon.com/dp/B0CZRN7HXT?tag=pawplates-20",
		VetNote:        "Lean turkey breast preserved by gentle freeze-drying.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"salmon": {
		ProductName:    "Wild Salmon (Boneless, Freeze Dried)",
		AmazonLink:     "https://www.amazon.com/dp/B08NCDSV82?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/better-treat-freeze-dried-salmon/dp/155916",
		VetNote:        "Wild-caught salmon providing omega-3 fatty acids for skin, coat and joints.",
		Category:       "Meat",
		CommissionRate: chewyCommission,
	},
	"sardines": {
		ProductName:    "Sardines (Canned in Water)",
		AmazonLink:     "https://www.amazon.com/dp/B01FUWYO2M?tag=pawplates-20",
		VetNote:        "Omega-3 rich fish with edible bones providing natural calcium and phosphorus.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"white fish": {
		ProductName:    "Whitefish Fillets (Wild Caught)",
		AmazonLink:     "https://www.amazon.com/dp/B09TQZPB14?tag=pawplates-20",
		VetNote:        "Lean, low-phosphorus protein suited to renal diets.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"beef liver": {
		ProductName:    "Beef Liver (Freeze Dried)",
		AmazonLink:     "https://www.amazon.com/dp/B07G3QFG8N?tag=pawplates-20",
		VetNote:        "Rich source of vitamin A, iron and B vitamins.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"eggs": {
		ProductName:    "Whole Eggs (Freeze Dried)",
		AmazonLink:     "https://www.amazon.com/dp/B001DY6U9M?tag=pawplates-20",
		VetNote:        "Complete protein with all essential amino acids.",
		Category:       "Meat",
		CommissionRate: amazonCommission,
	},
	"white rice": {
		ProductName:    "White Rice (Organic Jasmine)",
		AmazonLink:     "https://www.amazon.com/dp/B004NRLAVY?tag=pawplates-20",
		VetNote:        "Highly digestible carbohydrate for sensitive stomachs.",
		Category:       "Carb",
		CommissionRate: amazonCommission,
	},
	"brown rice": {
		ProductName:    "Brown Rice (Organic)",
		AmazonLink:     "https://www.amazon.com/dp/B00LQQGGC2?tag=pawplates-20",
		VetNote:        "Whole-grain carbohydrate with extra fiber and B vitamins.",
		Category:       "Carb",
		CommissionRate: amazonCommission,
	},
	"sweet potato": {
		ProductName:    "Sweet Potato (Organic)",
		AmazonLink:     "https://www.amazon.com/dp/B092RF7KQ5?tag=pawplates-20",
		VetNote:        "Complex carbohydrate with beta-carotene; gentle on digestion.",
		Category:       "Vegetable",
		CommissionRate: amazonCommission,
	},
	"pumpkin puree": {
		ProductName:    "Pumpkin Puree (100% Pure)",
		AmazonLink:     "https://www.amazon.com/dp/B001PLEYBY?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/weruva-pumpkin-patch-up-supplement/dp/167555",
		VetNote:        "Soluble fiber that stabilizes digestion in dogs and cats.",
		Category:       "Vegetable",
		CommissionRate: chewyCommission,
	},
	"green beans": {
		ProductName:    "Green Beans (Frozen, No Salt)",
		AmazonLink:     "https://www.amazon.com/dp/B07QJ1V6TH?tag=pawplates-20",
		VetNote:        "Low-calorie filler that adds satiety for weight control.",
		Category:       "Vegetable",
		CommissionRate: amazonCommission,
	},
	"carrots": {
		ProductName:    "Carrots (Organic Baby)",
		AmazonLink:     "https://www.amazon.com/dp/B079ZNY9RF?tag=pawplates-20",
		VetNote:        "Crunchy beta-carotene source; good low-calorie treat base.",
		Category:       "Vegetable",
		CommissionRate: amazonCommission,
	},
	"fish oil": {
		ProductName:    "Omega-3 Fish Oil (Wild Alaskan)",
		AmazonLink:     "https://www.amazon.com/dp/B00CM3MDPC?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/zesty-paws-wild-alaskan-salmon-oil/dp/143227",
		VetNote:        "EPA/DHA support for skin, coat, joints and kidneys.",
		Category:       "Oil",
		CommissionRate: chewyCommission,
	},
	"omega-3 fish oil": {
		ProductName:    "Omega-3 Fish Oil (Wild Alaskan)",
		AmazonLink:     "https://www.amazon.com/dp/B00CM3MDPC?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/zesty-paws-wild-alaskan-salmon-oil/dp/143227",
		VetNote:        "EPA/DHA support for skin, coat, joints and kidneys.",
		Category:       "Oil",
		CommissionRate: chewyCommission,
	},
	"glucosamine & chondroitin": {
		ProductName:    "Glucosamine & Chondroitin Chews",
		AmazonLink:     "https://www.amazon.com/dp/B00J0GJF0A?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/nutramax-cosequin-ds-plus-msm/dp/33921",
		VetNote:        "Clinically studied joint support combination.",
		Category:       "Supplement",
		CommissionRate: chewyCommission,
	},
	"probiotic supplement": {
		ProductName:    "Probiotic Powder (Multi-Strain)",
		AmazonLink:     "https://www.amazon.com/dp/B07C7RQK4W?tag=pawplates-20",
		VetNote:        "Restores gut flora after digestive upsets or antibiotics.",
		Category:       "Supplement",
		CommissionRate: amazonCommission,
	},
	"bone broth": {
		ProductName:    "Bone Broth (Low Sodium, Pet Safe)",
		AmazonLink:     "https://www.amazon.com/dp/B07DYZVFMM?tag=pawplates-20",
		SpecialtyLink:  "https://shop.openfarmpet.com/products/harvest-chicken-bone-broth",
		VetNote:        "Hydration and palatability booster; no onion or garlic.",
		Category:       "Supplement",
		CommissionRate: specialtyCommission,
	},
	"eggshell powder": {
		ProductName:    "Eggshell Powder (Fine Ground)",
		AmazonLink:     "https://www.amazon.com/dp/B01MRZKBFP?tag=pawplates-20",
		VetNote:        "Natural calcium carbonate to balance the Ca:P ratio in home-cooked meals.",
		Category:       "Supplement",
		CommissionRate: amazonCommission,
	},
	"cranberry extract": {
		ProductName:    "Cranberry Extract (D-Mannose)",
		AmazonLink:     "https://www.amazon.com/dp/B01LXGQRF3?tag=pawplates-20",
		VetNote:        "Supports urinary tract health by preventing bacterial adhesion.",
		Category:       "Supplement",
		CommissionRate: amazonCommission,
	},
	"turmeric": {
		ProductName:    "Turmeric Curcumin (With Black Pepper)",
		AmazonLink:     "https://www.amazon.com/dp/B08GKN8XDR?tag=pawplates-20",
		VetNote:        "Natural anti-inflammatory support for joints.",
		Category:       "Supplement",
		CommissionRate: amazonCommission,
	},
	"green lipped mussel": {
		ProductName:    "Green Lipped Mussel Powder",
		AmazonLink:     "https://www.amazon.com/dp/B089KRXRPD?tag=pawplates-20",
		ChewyLink:      "https://www.chewy.com/super-snouts-joint-power-green/dp/144899",
		VetNote:        "Chondroprotective marine source of omega-3s and glycosaminoglycans.",
		Category:       "Supplement",
		CommissionRate: chewyCommission,
	},
}

// genericAliases folds common phrasing variants onto the generic
// ingredient names used as vettedProducts keys.
var genericAliases = map[string]string{
	"chicken (ground)":            "ground chicken",
	"minced chicken":              "ground chicken",
	"turkey (ground)":             "ground turkey",
	"minced turkey":               "ground turkey",
	"lean ground beef":            "ground beef",
	"ground beef (lean)":          "ground beef",
	"beef (ground)":               "ground beef",
	"lamb (ground)":               "ground lamb",
	"salmon (boneless)":           "salmon",
	"wild salmon":                 "salmon",
	"salmon fillet":               "salmon",
	"sardines (canned in water)":  "sardines",
	"whitefish":                   "white fish",
	"cod":                         "white fish",
	"egg":                         "eggs",
	"whole eggs":                  "eggs",
	"rice (white)":                "white rice",
	"cooked white rice":           "white rice",
	"rice (brown)":                "brown rice",
	"sweet potatoes":              "sweet potato",
	"pumpkin":                     "pumpkin puree",
	"canned pumpkin":              "pumpkin puree",
	"green bean":                  "green beans",
	"carrot":                      "carrots",
	"omega-3 fish oil (epa/dha)":  "omega-3 fish oil",
	"salmon oil":                  "fish oil",
	"glucosamine and chondroitin": "glucosamine & chondroitin",
	"probiotic":                   "probiotic supplement",
	"probiotics":                  "probiotic supplement",
	"bone broth (low sodium)":     "bone broth",
	"hydration enhancers (bone broth)": "bone broth",
	"egg shell powder":                 "eggshell powder",
	"cranberry extract (d-mannose)":    "cranberry extract",
	"turmeric (curcumin)":              "turmeric",
}

// GenericIngredientName normalizes a raw ingredient name to the
// generic key used by the vetted product map. Unrecognized names pass
// through lowercased and trimmed.
func GenericIngredientName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := genericAliases[n]; ok {
		return alias
	}
	return n
}

// GetVettedProduct looks up a vetted product by generic ingredient
// name. Tries the exact lowercase name first, then the alias-folded
// form. A miss is the common case, not an error.
func GetVettedProduct(name string) (VettedProduct, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if p, ok := vettedProducts[n]; ok {
		return p, true
	}
	p, ok := vettedProducts[GenericIngredientName(name)]
	return p, ok
}

// AllAffiliateLinks returns every vendor link for an ingredient,
// sorted by commission rate descending. Empty when no vetted product
// exists.
func AllAffiliateLinks(name string) []AffiliateLink {
	p, ok := GetVettedProduct(name)
	if !ok {
		return nil
	}
	var links []AffiliateLink
	if p.AmazonLink != "" {
		links = append(links, AffiliateLink{Vendor: "Amazon", URL: p.AmazonLink, Commission: commissionOr(p, amazonCommission)})
	}
	if p.ChewyLink != "" {
		links = append(links, AffiliateLink{Vendor: "Chewy", URL: p.ChewyLink, Commission: commissionOr(p, chewyCommission)})
	}
	if p.SpecialtyLink != "" {
		links = append(links, AffiliateLink{Vendor: "Specialty", URL: p.SpecialtyLink, Commission: commissionOr(p, specialtyCommission)})
	}
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Commission > links[j].Commission
	})
	return links
}

// BestAffiliateLink returns the highest-commission link for an
// ingredient, or empty when no vetted product exists.
func BestAffiliateLink(name string) string {
	links := AllAffiliateLinks(name)
	if len(links) == 0 {
		return ""
	}
	return links[0].URL
}

func commissionOr(p VettedProduct, fallback float64) float64 {
	if p.CommissionRate > 0 {
		return p.CommissionRate
	}
	return fallback
}
