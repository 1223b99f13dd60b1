package optimizer

import (
	"testing"

	"pantrychef/internal/models"
)

func TestIngredientAvailable(t *testing.T) {
	available := []string{"All-Purpose Flour", "milk", "Eggs"}

	tests := []struct {
		name string
		want bool
	}{
		{"flour", true},      // ingredient is substring of pantry entry
		{"whole milk", true}, // pantry entry is substring of ingredient
		{"MILK", true},       // case-folded
		{"eggs", true},
		{"butter", false},
		{"", true}, // empty name is substring of everything
	}

	for _, tt := range tests {
		if got := ingredientAvailable(tt.name, available); got != tt.want {
			t.Errorf("ingredientAvailable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIngredientAvailableEmptyList(t *testing.T) {
	if ingredientAvailable("flour", nil) {
		t.Error("ingredientAvailable with no pantry entries = true, want false")
	}
	if ingredientAvailable("flour", []string{}) {
		t.Error("ingredientAvailable with empty pantry = true, want false")
	}
}

func TestFindMissingIngredients(t *testing.T) {
	ingredients := []models.Ingredient{
		{Name: "flour", Amount: 2, Unit: models.UnitCups},
		{Name: "milk", Amount: 1, Unit: models.UnitCups},
		{Name: "vanilla", Amount: 1, Unit: models.UnitTsp, IsOptional: true},
	}

	missing := FindMissingIngredients(ingredients, []string{"flour"})

	if len(missing) != 1 {
		t.Fatalf("FindMissingIngredients returned %d ingredients, want 1", len(missing))
	}
	if missing[0].Name != "milk" {
		t.Errorf("missing ingredient = %q, want %q", missing[0].Name, "milk")
	}
}

func TestFindMissingIngredientsEmptyAvailable(t *testing.T) {
	ingredients := []models.Ingredient{
		{Name: "flour"},
		{Name: "milk"},
		{Name: "vanilla", IsOptional: true},
	}

	// With nothing available every required ingredient is missing, but
	// optional ingredients still never are.
	missing := FindMissingIngredients(ingredients, nil)

	if len(missing) != 2 {
		t.Fatalf("FindMissingIngredients returned %d ingredients, want 2", len(missing))
	}
	if missing[0].Name != "flour" || missing[1].Name != "milk" {
		t.Errorf("missing = [%q, %q], want input order [flour, milk]", missing[0].Name, missing[1].Name)
	}
}

func TestFindMissingIngredientsOptionalNeverMissing(t *testing.T) {
	ingredients := []models.Ingredient{
		{Name: "saffron", IsOptional: true},
	}

	for _, available := range [][]string{nil, {}, {"unrelated"}} {
		if missing := FindMissingIngredients(ingredients, available); len(missing) != 0 {
			t.Errorf("optional ingredient reported missing with available=%v", available)
		}
	}
}

func TestMatchPercentage(t *testing.T) {
	tests := []struct {
		total   int
		missing int
		want    int
	}{
		{3, 1, 67}, // (3-1)/3*100 rounded
		{4, 2, 50},
		{4, 0, 100},
		{4, 4, 0},
		{0, 0, 0}, // no ingredients matches at 0, not a division by zero
	}

	for _, tt := range tests {
		if got := matchPercentage(tt.total, tt.missing); got != tt.want {
			t.Errorf("matchPercentage(%d, %d) = %d, want %d", tt.total, tt.missing, got, tt.want)
		}
	}
}
