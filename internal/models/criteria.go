package models

// OptimizationCriteria represents one user's per-request preferences for
// ranking the catalog. All fields are optional; absent constraints fall back
// to each sub-score's neutral branch.
type OptimizationCriteria struct {
	DietaryRestrictions  []string           `json:"dietaryRestrictions"`
	NutritionalGoals     *NutritionalGoals  `json:"nutritionalGoals,omitempty"`
	BudgetConstraints    *BudgetConstraints `json:"budgetConstraints,omitempty"`
	AvailableIngredients []string           `json:"availableIngredients"`
	MaxResults           int                `json:"maxResults"`
}

// NutritionalGoals represents per-serving nutrition targets. A zero target is
// treated as unset, matching the catalog's long-standing truthiness contract.
// Carbs and fat targets are recorded but not scored.
type NutritionalGoals struct {
	TargetCalories float64 `json:"targetCalories"`
	TargetProtein  float64 `json:"targetProtein"`
	TargetCarbs    float64 `json:"targetCarbs"`
	TargetFat      float64 `json:"targetFat"`
}

// BudgetConstraints represents a user's cost ceiling. A zero max cost is
// treated as unset.
type BudgetConstraints struct {
	MaxCostPerServing   float64 `json:"maxCostPerServing"`
	PreferBudgetOptions bool    `json:"preferBudgetOptions"`
}
