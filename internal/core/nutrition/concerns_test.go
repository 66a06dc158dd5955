package nutrition

import "testing"

func TestNormalizeConcern(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Arthritis", "joint-health"},
		{"arthritis/joint pain", "joint-health"},
		{"Obesity/Weight Management", "weight-management"},
		{"Kidney Disease", "kidney"},
		{"urinary problems", "urinary-health"},
		{"Sensitive Stomach", "digestive"},
		{"GI Issues", "digestive"},
		{"Food Allergies", "allergies"},
		{"joint-health", "joint-health"},
		{"Something Unmapped", "something-unmapped"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeConcern(tt.raw); got != tt.want {
			t.Errorf("NormalizeConcern(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestModifierKeyFor(t *testing.T) {
	tests := []struct {
		concern string
		want    string
		ok      bool
	}{
		{"joint-health", "joint_issues", true},
		{"arthritis", "joint_issues", true},
		{"weight management", "weight_management", true},
		{"digestive issues", "gi_issues", true},
		{"kidney disease", "kidney_support", true},
		{"urinary problems", "urinary_health", true},
		{"diabetes", "diabetes", true},
		{"allergies", "allergies", true},
		{"dental problems", "", false},
	}
	for _, tt := range tests {
		got, ok := ModifierKeyFor(tt.concern)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ModifierKeyFor(%q) = (%q, %v), want (%q, %v)", tt.concern, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConcernMatches(t *testing.T) {
	tests := []struct {
		pet    string
		recipe string
		want   bool
	}{
		{"joint-health", "joint-health", true},
		{"arthritis", "joint-health", true},
		{"Obesity/Weight Management", "weight-management", true},
		{"kidney disease", "kidney", true},
		{"diabetes", "joint-health", false},
		{"", "joint-health", false},
	}
	for _, tt := range tests {
		if got := concernMatches(tt.pet, tt.recipe); got != tt.want {
			t.Errorf("concernMatches(%q, %q) = %v, want %v", tt.pet, tt.recipe, got, tt.want)
		}
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Joint Health", "joint-health"},
		{"Obesity/Weight Management", "obesity-weight-management"},
		{"  spaced  out  ", "spaced-out"},
		{"already-kebab", "already-kebab"},
	}
	for _, tt := range tests {
		if got := kebabCase(tt.in); got != tt.want {
			t.Errorf("kebabCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsHydrationConcern(t *testing.T) {
	if !isHydrationConcern("kidney disease") {
		t.Error("kidney disease should be a hydration concern")
	}
	if !isHydrationConcern("Urinary Problems") {
		t.Error("urinary problems should be a hydration concern")
	}
	if isHydrationConcern("joint-health") {
		t.Error("joint-health should not be a hydration concern")
	}
}
