package optimizer

import (
	"math"

	"pantrychef/internal/models"
)

// Sub-score weights. They sum to 100, so a recipe that maxes every sub-score
// lands exactly at 100.
const (
	weightIngredientMatch = 40
	weightDietary         = 25
	weightNutrition       = 20
	weightCost            = 15
)

// CalculateRecipeScore combines the four weighted sub-scores into the 0-100
// optimization score. Pure function: identical inputs always produce
// identical scores.
func CalculateRecipeScore(recipe *models.Recipe, criteria *models.OptimizationCriteria) int {
	score := 0.0

	score += ingredientMatchScore(recipe.Ingredients, criteria.AvailableIngredients) * weightIngredientMatch
	score += dietaryComplianceScore(recipe.DietaryTags, criteria.DietaryRestrictions) * weightDietary
	score += nutritionalAlignmentScore(recipe.Nutrition, criteria.NutritionalGoals) * weightNutrition
	score += costEfficiencyScore(recipe.EstimatedCost, criteria.BudgetConstraints) * weightCost

	return int(math.Round(score))
}

// ingredientMatchScore returns the fraction of recipe ingredients satisfiable
// from the available list. Optional ingredients count as matched but stay in
// the denominator. An empty available list scores a flat 0 regardless of
// optional ingredients; this intentionally differs from
// FindMissingIngredients, which reports every required ingredient missing in
// that case. Both policies are long-standing contracts, kept independent.
func ingredientMatchScore(ingredients []models.Ingredient, available []string) float64 {
	if len(available) == 0 {
		return 0
	}
	if len(ingredients) == 0 {
		return 0
	}

	matched := 0
	for _, ingredient := range ingredients {
		if ingredient.IsOptional || ingredientAvailable(ingredient.Name, available) {
			matched++
		}
	}
	return float64(matched) / float64(len(ingredients))
}

// dietaryComplianceScore is all-or-nothing: 1 when the recipe carries every
// restriction tag the user declared (or the user declared none), else 0.
// Unlike the other sub-scores it is never partial.
func dietaryComplianceScore(recipeTags []string, restrictions []string) float64 {
	if len(restrictions) == 0 {
		return 1
	}
	for _, restriction := range restrictions {
		if !containsString(recipeTags, restriction) {
			return 0
		}
	}
	return 1
}

// nutritionalAlignmentScore measures how close the recipe sits to the user's
// calorie and protein targets. A zero or absent target is unset. Carbs and
// fat targets exist in the data model but are not scored. With no goals at
// all the score is a neutral 0.5.
func nutritionalAlignmentScore(nutrition *models.Nutrition, goals *models.NutritionalGoals) float64 {
	if goals == nil {
		return 0.5
	}

	var facts models.Nutrition
	if nutrition != nil {
		facts = *nutrition
	}

	score := 0.0
	factors := 0

	if goals.TargetCalories != 0 {
		score += targetCloseness(facts.Calories, goals.TargetCalories)
		factors++
	}
	if goals.TargetProtein != 0 {
		score += targetCloseness(facts.Protein, goals.TargetProtein)
		factors++
	}

	if factors == 0 {
		return 0.5
	}
	return score / float64(factors)
}

// targetCloseness maps the relative distance from a target into [0,1],
// flooring at 0 once the value is more than a whole target away.
func targetCloseness(value, target float64) float64 {
	return math.Max(0, 1-math.Abs(value-target)/target)
}

// costEfficiencyScore rewards recipes under the cost ceiling: 1 at free,
// 0 exactly at the limit, and a hard 0 above it with no partial credit.
// A nil budget or a zero max cost means no constraint and scores a neutral
// 0.5.
func costEfficiencyScore(cost float64, budget *models.BudgetConstraints) float64 {
	if budget == nil || budget.MaxCostPerServing == 0 {
		return 0.5
	}
	if cost <= budget.MaxCostPerServing {
		return 1 - cost/budget.MaxCostPerServing
	}
	return 0
}

// containsString reports whether list holds the exact value
func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
