package optimizer

import (
	"math"
	"strings"

	"pantrychef/internal/models"
)

// ingredientAvailable reports whether a required ingredient can be covered by
// the user's pantry list. Matching is a bidirectional case-folded substring
// test: "flour" covers "all-purpose flour" and vice versa. It is deliberately
// not semantic.
func ingredientAvailable(name string, available []string) bool {
	needle := strings.ToLower(name)
	for _, have := range available {
		hay := strings.ToLower(have)
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			return true
		}
	}
	return false
}

// FindMissingIngredients returns the recipe ingredients that are required and
// not covered by the available list, in recipe order. Optional ingredients
// are never missing, whatever the pantry holds. An empty available list makes
// every required ingredient missing.
func FindMissingIngredients(ingredients []models.Ingredient, available []string) []models.Ingredient {
	missing := make([]models.Ingredient, 0)
	for _, ingredient := range ingredients {
		if ingredient.IsOptional {
			continue
		}
		if !ingredientAvailable(ingredient.Name, available) {
			missing = append(missing, ingredient)
		}
	}
	return missing
}

// matchPercentage converts a missing-ingredient count into the 0-100 match
// percentage attached to results. A recipe with no ingredients matches at 0.
func matchPercentage(total, missing int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(total-missing) / float64(total) * 100))
}
