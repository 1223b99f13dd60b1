package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jinzhu/gorm"
)

// SubstitutionEntry represents the registered set of alternatives for one
// ingredient. The key is the lower-cased, trimmed ingredient name and is
// unique across the catalog.
type SubstitutionEntry struct {
	gorm.Model
	OriginalIngredient string `gorm:"unique_index" json:"originalIngredient"`
	SubstitutesJSON    string `gorm:"type:text" json:"-"`
	// Transient fields (ignored by GORM)
	Substitutes []Substitute `gorm:"-" json:"substitutes"`
}

// TableName sets the table name for SubstitutionEntry
func (SubstitutionEntry) TableName() string {
	return "substitutions"
}

// GetSubstitutes returns the deserialized substitutes
func (e *SubstitutionEntry) GetSubstitutes() ([]Substitute, error) {
	if len(e.Substitutes) > 0 {
		return e.Substitutes, nil
	}
	var substitutes []Substitute
	if e.SubstitutesJSON == "" {
		return substitutes, nil
	}
	if err := json.Unmarshal([]byte(e.SubstitutesJSON), &substitutes); err != nil {
		return nil, err
	}
	e.Substitutes = substitutes
	return substitutes, nil
}

// SetSubstitutes serializes the substitutes for storage
func (e *SubstitutionEntry) SetSubstitutes(substitutes []Substitute) error {
	data, err := json.Marshal(substitutes)
	if err != nil {
		return err
	}
	e.SubstitutesJSON = string(data)
	e.Substitutes = substitutes
	return nil
}

// Normalize lower-cases and trims the key and applies the default ratio and
// cost factor to substitutes that left them unset.
func (e *SubstitutionEntry) Normalize() {
	e.OriginalIngredient = strings.ToLower(strings.TrimSpace(e.OriginalIngredient))
	for i := range e.Substitutes {
		if e.Substitutes[i].Ratio == 0 {
			e.Substitutes[i].Ratio = 1
		}
		if e.Substitutes[i].CostFactor == 0 {
			e.Substitutes[i].CostFactor = 1
		}
	}
}

// Validate checks an entry before storage
func (e *SubstitutionEntry) Validate() error {
	if e.OriginalIngredient == "" {
		return errors.New("original ingredient is required")
	}
	if len(e.Substitutes) == 0 {
		return errors.New("at least one substitute is required")
	}
	for _, sub := range e.Substitutes {
		if sub.Ingredient == "" {
			return errors.New("substitute ingredient name is required")
		}
		if sub.Ratio < 0 {
			return errors.New("substitute ratio must not be negative")
		}
	}
	return nil
}

// Substitute represents one alternative for an ingredient
type Substitute struct {
	Ingredient        string            `json:"ingredient"`
	Ratio             float64           `json:"ratio"`
	DietaryBenefits   StringSlice       `json:"dietaryBenefits"`
	CostFactor        float64           `json:"costFactor"`
	NutritionalImpact NutritionalImpact `json:"nutritionalImpact"`
	Notes             string            `json:"notes,omitempty"`
}

// NutritionalImpact represents the per-serving nutrition deltas of swapping
// an ingredient for a substitute
type NutritionalImpact struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
