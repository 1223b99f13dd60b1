package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Recipe represents a catalog recipe with its ingredients, instructions and
// the optional nutrition and cost data the optimizer scores against.
// Ingredients and nutrition live in JSON columns and are exposed through
// transient fields hydrated by the store.
type Recipe struct {
	gorm.Model
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Servings        int         `json:"servings"`
	PrepTime        int         `json:"prepTime"` // minutes
	CookTime        int         `json:"cookTime"` // minutes
	Difficulty      Difficulty  `json:"difficulty"`
	Cuisine         Cuisine     `json:"cuisine"`
	DietaryTags     StringSlice `gorm:"type:text" json:"dietaryTags"`
	Instructions    StringSlice `gorm:"type:text" json:"instructions"`
	IngredientsJSON string      `gorm:"type:text" json:"-"`
	NutritionJSON   string      `gorm:"type:text" json:"-"`
	EstimatedCost   float64     `json:"estimatedCost"` // cost per serving
	// Transient fields (ignored by GORM)
	Ingredients []Ingredient `gorm:"-" json:"ingredients"`
	Nutrition   *Nutrition   `gorm:"-" json:"nutrition,omitempty"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// GetIngredients returns the deserialized ingredients
func (r *Recipe) GetIngredients() ([]Ingredient, error) {
	if len(r.Ingredients) > 0 {
		return r.Ingredients, nil
	}
	var ingredients []Ingredient
	if r.IngredientsJSON == "" {
		return ingredients, nil
	}
	if err := json.Unmarshal([]byte(r.IngredientsJSON), &ingredients); err != nil {
		return nil, err
	}
	r.Ingredients = ingredients
	return ingredients, nil
}

// SetIngredients serializes the ingredients for storage
func (r *Recipe) SetIngredients(ingredients []Ingredient) error {
	data, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}
	r.IngredientsJSON = string(data)
	r.Ingredients = ingredients
	return nil
}

// GetNutrition returns the deserialized nutrition facts, nil when none recorded
func (r *Recipe) GetNutrition() (*Nutrition, error) {
	if r.Nutrition != nil {
		return r.Nutrition, nil
	}
	if r.NutritionJSON == "" {
		return nil, nil
	}
	var nutrition Nutrition
	if err := json.Unmarshal([]byte(r.NutritionJSON), &nutrition); err != nil {
		return nil, err
	}
	r.Nutrition = &nutrition
	return r.Nutrition, nil
}

// SetNutrition serializes the nutrition facts for storage
func (r *Recipe) SetNutrition(nutrition *Nutrition) error {
	if nutrition == nil {
		r.NutritionJSON = ""
		r.Nutrition = nil
		return nil
	}
	data, err := json.Marshal(nutrition)
	if err != nil {
		return err
	}
	r.NutritionJSON = string(data)
	r.Nutrition = nutrition
	return nil
}

// Validate checks recipe fields against the catalog constraints before
// storage. The optimizer itself never validates; anything that reached the
// catalog is scored as-is.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return errors.New("recipe title is required")
	}
	if r.Servings < 1 || r.Servings > 20 {
		return fmt.Errorf("servings must be between 1 and 20, got %d", r.Servings)
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return errors.New("prep and cook times must not be negative")
	}
	if len(r.Instructions) == 0 {
		return errors.New("at least one instruction is required")
	}
	if r.EstimatedCost < 0 {
		return errors.New("estimated cost must not be negative")
	}
	for i, ing := range r.Ingredients {
		if ing.Name == "" {
			return fmt.Errorf("ingredient %d: name is required", i)
		}
		if ing.Amount < 0 {
			return fmt.Errorf("ingredient %q: amount must not be negative", ing.Name)
		}
		if !ValidUnit(ing.Unit) {
			return fmt.Errorf("ingredient %q: unknown unit %q", ing.Name, ing.Unit)
		}
	}
	return nil
}

// Ingredient represents a single required ingredient of a recipe
type Ingredient struct {
	Name       string             `json:"name"`
	Amount     float64            `json:"amount"`
	Unit       Unit               `json:"unit"`
	Category   IngredientCategory `json:"category"`
	IsOptional bool               `json:"isOptional"`
}

// Nutrition represents per-serving nutrition facts for a recipe
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Unit represents the unit of measurement for an ingredient amount
type Unit string

const (
	// Volume units
	UnitCups   Unit = "cups"
	UnitTbsp   Unit = "tbsp"
	UnitTsp    Unit = "tsp"
	UnitMl     Unit = "ml"
	UnitLiters Unit = "liters"

	// Weight units
	UnitOz    Unit = "oz"
	UnitLbs   Unit = "lbs"
	UnitGrams Unit = "grams"
	UnitKg    Unit = "kg"

	// Count units
	UnitPieces Unit = "pieces"
	UnitCloves Unit = "cloves"

	// UnitGeneric is the placeholder used when a substitution request
	// carries no unit of its own.
	UnitGeneric Unit = "unit"
)

// ValidUnit reports whether u is part of the fixed unit enumeration
func ValidUnit(u Unit) bool {
	switch u {
	case UnitCups, UnitTbsp, UnitTsp, UnitMl, UnitLiters,
		UnitOz, UnitLbs, UnitGrams, UnitKg, UnitPieces, UnitCloves:
		return true
	}
	return false
}

// IngredientCategory represents the category of an ingredient
type IngredientCategory string

const (
	// Ingredient categories
	CategoryProtein   IngredientCategory = "protein"
	CategoryVegetable IngredientCategory = "vegetable"
	CategoryFruit     IngredientCategory = "fruit"
	CategoryGrain     IngredientCategory = "grain"
	CategoryDairy     IngredientCategory = "dairy"
	CategorySpice     IngredientCategory = "spice"
	CategoryOil       IngredientCategory = "oil"
	CategoryOther     IngredientCategory = "other"
)

// Difficulty represents how demanding a recipe is to prepare
type Difficulty string

const (
	// Difficulty levels
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Cuisine represents the cuisine a recipe belongs to
type Cuisine string

const (
	// Cuisines
	CuisineItalian  Cuisine = "italian"
	CuisineChinese  Cuisine = "chinese"
	CuisineIndian   Cuisine = "indian"
	CuisineMexican  Cuisine = "mexican"
	CuisineAmerican Cuisine = "american"
	CuisineFrench   Cuisine = "french"
	CuisineThai     Cuisine = "thai"
	CuisineOther    Cuisine = "other"
)

// DietaryTag represents one value of the fixed dietary vocabulary shared by
// recipe tags, user restrictions and substitute benefits. The optimizer never
// rejects values outside the vocabulary; unknown tags simply never match.
type DietaryTag string

const (
	// Dietary tags
	TagVegetarian  DietaryTag = "vegetarian"
	TagVegan       DietaryTag = "vegan"
	TagGlutenFree  DietaryTag = "gluten-free"
	TagDairyFree   DietaryTag = "dairy-free"
	TagKeto        DietaryTag = "keto"
	TagPaleo       DietaryTag = "paleo"
	TagLowCarb     DietaryTag = "low-carb"
	TagHighProtein DietaryTag = "high-protein"
)
