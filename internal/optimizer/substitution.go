package optimizer

import (
	"context"
	"log"

	"pantrychef/internal/models"
)

// SubstituteResult is a substitute enriched with the quantity adjustment
// computed for the caller's context. AdjustedAmount is the bare ratio until
// an orchestrating operation scales it by a requested amount.
type SubstituteResult struct {
	models.Substitute
	AdjustedAmount float64     `json:"adjustedAmount"`
	AdjustedUnit   models.Unit `json:"adjustedUnit,omitempty"`
	OriginalAmount float64     `json:"originalAmount,omitempty"`
	OriginalUnit   models.Unit `json:"originalUnit,omitempty"`
}

// SubstitutionSuggestion pairs one missing recipe ingredient with the
// substitutes that clear the user's dietary restrictions
type SubstitutionSuggestion struct {
	OriginalIngredient models.Ingredient  `json:"originalIngredient"`
	Substitutes        []SubstituteResult `json:"substitutes"`
}

// FindSubstitutions returns the registered substitutes for an ingredient,
// filtered by dietary benefit. Lookup is by exact lower-cased name, never by
// substring. The result is best effort: no registered entry, and any storage
// failure, both come back as an empty slice; a failed lookup is logged but
// never aborts the caller's scoring pass.
func (o *Optimizer) FindSubstitutions(ctx context.Context, ingredientName string, dietaryRestrictions []string) []SubstituteResult {
	entry, err := o.store.FindSubstitutionByName(ctx, ingredientName)
	if err != nil {
		log.Printf("Error finding substitutions for %q: %v", ingredientName, err)
		return []SubstituteResult{}
	}
	if entry == nil {
		return []SubstituteResult{}
	}

	results := make([]SubstituteResult, 0, len(entry.Substitutes))
	for _, sub := range entry.Substitutes {
		if !benefitsMatch(sub.DietaryBenefits, dietaryRestrictions) {
			continue
		}
		results = append(results, SubstituteResult{
			Substitute:     sub,
			AdjustedAmount: sub.Ratio,
		})
	}
	return results
}

// SuggestSubstitutions combines the matcher with the substitution lookup:
// every missing ingredient with at least one qualifying substitute yields a
// suggestion whose amounts are scaled by the substitute ratio and expressed
// in the missing ingredient's own unit. Unit systems are not reconciled.
// Missing ingredients without substitutes are skipped silently.
func (o *Optimizer) SuggestSubstitutions(ctx context.Context, recipe *models.Recipe, availableIngredients, dietaryRestrictions []string) []SubstitutionSuggestion {
	missing := FindMissingIngredients(recipe.Ingredients, availableIngredients)
	suggestions := make([]SubstitutionSuggestion, 0)

	for _, ingredient := range missing {
		substitutes := o.FindSubstitutions(ctx, ingredient.Name, dietaryRestrictions)
		if len(substitutes) == 0 {
			continue
		}

		for i := range substitutes {
			substitutes[i].AdjustedAmount = ingredient.Amount * substitutes[i].Ratio
			substitutes[i].AdjustedUnit = ingredient.Unit
		}

		suggestions = append(suggestions, SubstitutionSuggestion{
			OriginalIngredient: ingredient,
			Substitutes:        substitutes,
		})
	}
	return suggestions
}

// benefitsMatch reports whether a substitute qualifies under the user's
// restrictions: all substitutes qualify when there are no restrictions,
// otherwise at least one benefit tag must intersect them.
func benefitsMatch(benefits []string, restrictions []string) bool {
	if len(restrictions) == 0 {
		return true
	}
	for _, restriction := range restrictions {
		if containsString(benefits, restriction) {
			return true
		}
	}
	return false
}
