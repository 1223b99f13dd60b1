package optimizer

import (
	"context"
	"sort"

	"pantrychef/internal/models"
)

// DefaultMaxResults caps ranked results when the request does not say
// otherwise.
const DefaultMaxResults = 10

// Store is the slice of the catalog the optimizer reads. The concrete store
// is injected; the optimizer never opens or holds a connection of its own.
type Store interface {
	FindAllRecipes(ctx context.Context) ([]models.Recipe, error)
	FindRecipeByID(ctx context.Context, id uint) (*models.Recipe, error)
	FindSubstitutionByName(ctx context.Context, name string) (*models.SubstitutionEntry, error)
}

// Optimizer ranks the recipe catalog against a user's pantry, restrictions,
// nutrition targets and budget. All scoring is synchronous and stateless;
// the only I/O is the injected store.
type Optimizer struct {
	store Store
}

// New creates an optimizer over a catalog store
func New(store Store) *Optimizer {
	return &Optimizer{store: store}
}

// ScoredRecipe is a recipe enriched with its ranking data
type ScoredRecipe struct {
	models.Recipe
	OptimizationScore         int                 `json:"optimizationScore"`
	MissingIngredients        []models.Ingredient `json:"missingIngredients"`
	IngredientMatchPercentage int                 `json:"ingredientMatchPercentage"`
}

// MatchedRecipe is a recipe enriched with its ingredient match data
type MatchedRecipe struct {
	models.Recipe
	IngredientMatchPercentage int                 `json:"ingredientMatchPercentage"`
	MissingIngredients        []models.Ingredient `json:"missingIngredients"`
}

// ScoreAll scores every recipe in the catalog against the criteria and
// returns the top results, highest score first. Ties keep catalog order
// (stable sort). MaxResults defaults to DefaultMaxResults when unset.
func (o *Optimizer) ScoreAll(ctx context.Context, criteria *models.OptimizationCriteria) ([]ScoredRecipe, error) {
	recipes, err := o.store.FindAllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	maxResults := criteria.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	scored := make([]ScoredRecipe, 0, len(recipes))
	for i := range recipes {
		recipe := recipes[i]
		missing := FindMissingIngredients(recipe.Ingredients, criteria.AvailableIngredients)
		scored = append(scored, ScoredRecipe{
			Recipe:                    recipe,
			OptimizationScore:         CalculateRecipeScore(&recipe, criteria),
			MissingIngredients:        missing,
			IngredientMatchPercentage: matchPercentage(len(recipe.Ingredients), len(missing)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OptimizationScore > scored[j].OptimizationScore
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored, nil
}

// MatchByIngredients ranks the catalog purely by ingredient match
// percentage, dropping recipes under the minimum. Highest percentage first,
// ties keep catalog order.
func (o *Optimizer) MatchByIngredients(ctx context.Context, availableIngredients []string, minMatchPercentage int) ([]MatchedRecipe, error) {
	recipes, err := o.store.FindAllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]MatchedRecipe, 0, len(recipes))
	for i := range recipes {
		recipe := recipes[i]
		missing := FindMissingIngredients(recipe.Ingredients, availableIngredients)
		percentage := matchPercentage(len(recipe.Ingredients), len(missing))
		if percentage < minMatchPercentage {
			continue
		}
		matched = append(matched, MatchedRecipe{
			Recipe:                    recipe,
			IngredientMatchPercentage: percentage,
			MissingIngredients:        missing,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].IngredientMatchPercentage > matched[j].IngredientMatchPercentage
	})
	return matched, nil
}

// LookupSubstitutions resolves substitutes for a named ingredient and scales
// them to the requested quantity. Without an amount the adjusted amount is
// the bare ratio; without a unit the generic placeholder unit is used.
func (o *Optimizer) LookupSubstitutions(ctx context.Context, ingredientName string, amount float64, unit models.Unit, dietaryRestrictions []string) []SubstituteResult {
	substitutes := o.FindSubstitutions(ctx, ingredientName, dietaryRestrictions)

	for i := range substitutes {
		if amount != 0 {
			substitutes[i].AdjustedAmount = amount * substitutes[i].Ratio
		}
		if unit != "" {
			substitutes[i].AdjustedUnit = unit
		} else {
			substitutes[i].AdjustedUnit = models.UnitGeneric
		}
		substitutes[i].OriginalAmount = amount
		substitutes[i].OriginalUnit = unit
	}
	return substitutes
}

// RecipeWithSubstitutions fetches one recipe and computes substitution
// suggestions for its missing ingredients. A missing recipe id surfaces the
// store's not-found error untouched.
func (o *Optimizer) RecipeWithSubstitutions(ctx context.Context, recipeID uint, availableIngredients, dietaryRestrictions []string) (*models.Recipe, []SubstitutionSuggestion, error) {
	recipe, err := o.store.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, nil, err
	}
	suggestions := o.SuggestSubstitutions(ctx, recipe, availableIngredients, dietaryRestrictions)
	return recipe, suggestions, nil
}
