package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pantrychef/internal/models"

	"github.com/jinzhu/gorm"
)

// ErrNotFound is returned when a requested recipe does not exist
var ErrNotFound = errors.New("not found")

// Store provides catalog access on top of an explicitly injected database
// handle. It owns all reads and writes; the optimizer only ever sees the
// narrow read interface it declares itself.
type Store struct {
	db *gorm.DB
}

// New creates a store around an open database handle
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates and updates the catalog tables, then ensures the built-in
// substitution catalog exists.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(
		&models.Recipe{},
		&models.SubstitutionEntry{},
	).Error; err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return s.seedSubstitutions()
}

// Recipe operations

// FindAllRecipes returns every recipe in the catalog, newest first, with
// transient fields hydrated.
func (s *Store) FindAllRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	for i := range recipes {
		if err := hydrateRecipe(&recipes[i]); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// FindRecipeByID returns one recipe, or ErrNotFound
func (s *Store) FindRecipeByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := hydrateRecipe(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe validates and persists a new recipe
func (s *Store) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}
	if err := serializeRecipe(recipe); err != nil {
		return err
	}
	return s.db.Create(recipe).Error
}

// UpdateRecipe validates and replaces an existing recipe, or returns
// ErrNotFound
func (s *Store) UpdateRecipe(ctx context.Context, id uint, recipe *models.Recipe) error {
	existing, err := s.FindRecipeByID(ctx, id)
	if err != nil {
		return err
	}
	if err := recipe.Validate(); err != nil {
		return err
	}
	if err := serializeRecipe(recipe); err != nil {
		return err
	}
	recipe.ID = existing.ID
	recipe.CreatedAt = existing.CreatedAt
	return s.db.Save(recipe).Error
}

// DeleteRecipe removes a recipe, or returns ErrNotFound
func (s *Store) DeleteRecipe(ctx context.Context, id uint) error {
	if _, err := s.FindRecipeByID(ctx, id); err != nil {
		return err
	}
	return s.db.Delete(&models.Recipe{}, "id = ?", id).Error
}

// Substitution operations

// FindSubstitutionByName looks up the substitution entry for a normalized
// (lower-cased) ingredient name. Absence is not an error: a nil entry with a
// nil error means no entry is registered.
func (s *Store) FindSubstitutionByName(ctx context.Context, name string) (*models.SubstitutionEntry, error) {
	var entry models.SubstitutionEntry
	err := s.db.Where("original_ingredient = ?", strings.ToLower(name)).First(&entry).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	if _, err := entry.GetSubstitutes(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateSubstitution normalizes, validates and persists a substitution entry
func (s *Store) CreateSubstitution(ctx context.Context, entry *models.SubstitutionEntry) error {
	entry.Normalize()
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := entry.SetSubstitutes(entry.Substitutes); err != nil {
		return err
	}
	return s.db.Create(entry).Error
}

// CountRecipes returns the catalog size
func (s *Store) CountRecipes(ctx context.Context) (int, error) {
	var count int
	if err := s.db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Private helpers

// hydrateRecipe fills the transient ingredient and nutrition fields from the
// JSON columns
func hydrateRecipe(r *models.Recipe) error {
	if _, err := r.GetIngredients(); err != nil {
		return fmt.Errorf("recipe %d: bad ingredients column: %w", r.ID, err)
	}
	if _, err := r.GetNutrition(); err != nil {
		return fmt.Errorf("recipe %d: bad nutrition column: %w", r.ID, err)
	}
	return nil
}

// serializeRecipe writes the transient fields back into the JSON columns
func serializeRecipe(r *models.Recipe) error {
	if err := r.SetIngredients(r.Ingredients); err != nil {
		return err
	}
	return r.SetNutrition(r.Nutrition)
}
