package store

import (
	"fmt"

	"pantrychef/internal/models"
)

// seedSubstitutions ensures the built-in substitution catalog exists. Entries
// are only written when the table is empty so operator-added entries are
// never clobbered.
func (s *Store) seedSubstitutions() error {
	var count int
	if err := s.db.Model(&models.SubstitutionEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, entry := range builtinSubstitutions() {
		entry.Normalize()
		if err := entry.SetSubstitutes(entry.Substitutes); err != nil {
			return err
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to seed substitution %q: %w", entry.OriginalIngredient, err)
		}
	}
	return nil
}

// builtinSubstitutions returns the default substitution catalog
func builtinSubstitutions() []models.SubstitutionEntry {
	return []models.SubstitutionEntry{
		{
			OriginalIngredient: "milk",
			Substitutes: []models.Substitute{
				{
					Ingredient:        "almond milk",
					Ratio:             1,
					DietaryBenefits:   models.StringSlice{"vegan", "dairy-free"},
					CostFactor:        1.3,
					NutritionalImpact: models.NutritionalImpact{Calories: -60, Protein: -7},
				},
				{
					Ingredient:        "oat milk",
					Ratio:             1,
					DietaryBenefits:   models.StringSlice{"vegan", "dairy-free"},
					CostFactor:        1.4,
					NutritionalImpact: models.NutritionalImpact{Calories: -30, Protein: -5, Carbs: 4},
				},
				{
					Ingredient:      "coconut milk",
					Ratio:           1,
					DietaryBenefits: models.StringSlice{"vegan", "dairy-free", "paleo"},
					CostFactor:      1.6,
					Notes:           "adds a mild coconut flavor",
				},
			},
		},
		{
			OriginalIngredient: "butter",
			Substitutes: []models.Substitute{
				{
					Ingredient:        "coconut oil",
					Ratio:             1,
					DietaryBenefits:   models.StringSlice{"vegan", "dairy-free", "paleo"},
					CostFactor:        1.5,
					NutritionalImpact: models.NutritionalImpact{Calories: 15},
				},
				{
					Ingredient:        "olive oil",
					Ratio:             0.75,
					DietaryBenefits:   models.StringSlice{"vegan", "dairy-free"},
					CostFactor:        1.2,
					NutritionalImpact: models.NutritionalImpact{Calories: -20},
					Notes:             "best in savory dishes",
				},
				{
					Ingredient:      "applesauce",
					Ratio:           0.5,
					DietaryBenefits: models.StringSlice{"vegan", "dairy-free", "low-carb"},
					CostFactor:      0.8,
					Notes:           "baking only; halve the quantity",
				},
			},
		},
		{
			OriginalIngredient: "eggs",
			Substitutes: []models.Substitute{
				{
					Ingredient:      "flax eggs",
					Ratio:           1,
					DietaryBenefits: models.StringSlice{"vegan"},
					CostFactor:      0.9,
					Notes:           "1 tbsp ground flax + 3 tbsp water per egg",
				},
				{
					Ingredient:        "mashed banana",
					Ratio:             0.5,
					DietaryBenefits:   models.StringSlice{"vegan"},
					CostFactor:        0.6,
					NutritionalImpact: models.NutritionalImpact{Calories: 30, Carbs: 13},
					Notes:             "baking only; adds sweetness",
				},
			},
		},
		{
			OriginalIngredient: "flour",
			Substitutes: []models.Substitute{
				{
					Ingredient:        "almond flour",
					Ratio:             1,
					DietaryBenefits:   models.StringSlice{"gluten-free", "keto", "paleo", "low-carb"},
					CostFactor:        2.5,
					NutritionalImpact: models.NutritionalImpact{Calories: 40, Protein: 8, Carbs: -18, Fat: 11},
				},
				{
					Ingredient:      "oat flour",
					Ratio:           1.3,
					DietaryBenefits: models.StringSlice{"gluten-free"},
					CostFactor:      1.5,
					Notes:           "verify certified gluten-free oats",
				},
			},
		},
		{
			OriginalIngredient: "sugar",
			Substitutes: []models.Substitute{
				{
					Ingredient:        "honey",
					Ratio:             0.75,
					DietaryBenefits:   models.StringSlice{"paleo"},
					CostFactor:        1.8,
					NutritionalImpact: models.NutritionalImpact{Calories: 10, Carbs: 3},
				},
				{
					Ingredient:      "stevia",
					Ratio:           0.04,
					DietaryBenefits: models.StringSlice{"keto", "low-carb", "vegan"},
					CostFactor:      2.0,
					Notes:           "highly concentrated; measure carefully",
				},
			},
		},
		{
			OriginalIngredient: "sour cream",
			Substitutes: []models.Substitute{
				{
					Ingredient:        "greek yogurt",
					Ratio:             1,
					DietaryBenefits:   models.StringSlice{"high-protein", "vegetarian"},
					CostFactor:        1.1,
					NutritionalImpact: models.NutritionalImpact{Calories: -25, Protein: 6, Fat: -4},
				},
				{
					Ingredient:      "cashew cream",
					Ratio:           1,
					DietaryBenefits: models.StringSlice{"vegan", "dairy-free"},
					CostFactor:      1.7,
				},
			},
		},
	}
}
