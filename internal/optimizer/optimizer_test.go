package optimizer

import (
	"context"
	"errors"
	"testing"

	"pantrychef/internal/models"
)

func catalogFixture() []models.Recipe {
	return []models.Recipe{
		{
			Title:       "Pancakes",
			DietaryTags: models.StringSlice{"vegetarian"},
			Ingredients: []models.Ingredient{
				{Name: "flour", Amount: 2, Unit: models.UnitCups},
				{Name: "milk", Amount: 1, Unit: models.UnitCups},
			},
		},
		{
			Title: "Steak",
			Ingredients: []models.Ingredient{
				{Name: "steak", Amount: 1, Unit: models.UnitLbs},
				{Name: "butter", Amount: 2, Unit: models.UnitTbsp},
			},
		},
		{
			Title:       "Toast",
			DietaryTags: models.StringSlice{"vegetarian"},
			Ingredients: []models.Ingredient{
				{Name: "bread", Amount: 2, Unit: models.UnitPieces},
				{Name: "butter", Amount: 1, Unit: models.UnitTbsp},
			},
		},
	}
}

func TestScoreAllOrdering(t *testing.T) {
	o := New(&fakeStore{recipes: catalogFixture()})
	criteria := &models.OptimizationCriteria{
		AvailableIngredients: []string{"flour", "milk"},
	}

	scored, err := o.ScoreAll(context.Background(), criteria)
	if err != nil {
		t.Fatalf("ScoreAll: %v", err)
	}
	if len(scored) != 3 {
		t.Fatalf("ScoreAll returned %d recipes, want 3", len(scored))
	}

	if scored[0].Title != "Pancakes" {
		t.Errorf("top recipe = %q, want Pancakes", scored[0].Title)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].OptimizationScore > scored[i-1].OptimizationScore {
			t.Errorf("results not sorted: score[%d]=%d > score[%d]=%d",
				i, scored[i].OptimizationScore, i-1, scored[i-1].OptimizationScore)
		}
	}

	if scored[0].IngredientMatchPercentage != 100 {
		t.Errorf("Pancakes match percentage = %d, want 100", scored[0].IngredientMatchPercentage)
	}
	if len(scored[0].MissingIngredients) != 0 {
		t.Errorf("Pancakes missing = %v, want none", scored[0].MissingIngredients)
	}
}

func TestScoreAllStableTies(t *testing.T) {
	// Steak and Toast score identically with an empty pantry and no other
	// criteria; catalog order decides.
	recipes := catalogFixture()[1:]
	o := New(&fakeStore{recipes: recipes})

	scored, err := o.ScoreAll(context.Background(), &models.OptimizationCriteria{})
	if err != nil {
		t.Fatalf("ScoreAll: %v", err)
	}
	if scored[0].OptimizationScore != scored[1].OptimizationScore {
		t.Fatalf("expected tied scores, got %d and %d", scored[0].OptimizationScore, scored[1].OptimizationScore)
	}
	if scored[0].Title != "Steak" || scored[1].Title != "Toast" {
		t.Errorf("tie broke catalog order: got [%q, %q]", scored[0].Title, scored[1].Title)
	}
}

func TestScoreAllMaxResults(t *testing.T) {
	o := New(&fakeStore{recipes: catalogFixture()})

	scored, err := o.ScoreAll(context.Background(), &models.OptimizationCriteria{MaxResults: 2})
	if err != nil {
		t.Fatalf("ScoreAll: %v", err)
	}
	if len(scored) != 2 {
		t.Errorf("ScoreAll with MaxResults=2 returned %d recipes", len(scored))
	}
}

func TestScoreAllDefaultMaxResults(t *testing.T) {
	recipes := make([]models.Recipe, 15)
	for i := range recipes {
		recipes[i] = models.Recipe{Title: "Recipe", Ingredients: []models.Ingredient{{Name: "salt"}}}
	}
	o := New(&fakeStore{recipes: recipes})

	scored, err := o.ScoreAll(context.Background(), &models.OptimizationCriteria{})
	if err != nil {
		t.Fatalf("ScoreAll: %v", err)
	}
	if len(scored) != DefaultMaxResults {
		t.Errorf("ScoreAll without MaxResults returned %d recipes, want %d", len(scored), DefaultMaxResults)
	}
}

func TestScoreAllStoreError(t *testing.T) {
	wantErr := errors.New("catalog unavailable")
	o := New(&fakeStore{recipesErr: wantErr})

	if _, err := o.ScoreAll(context.Background(), &models.OptimizationCriteria{}); !errors.Is(err, wantErr) {
		t.Errorf("ScoreAll error = %v, want %v", err, wantErr)
	}
}

func TestMatchByIngredients(t *testing.T) {
	o := New(&fakeStore{recipes: catalogFixture()})

	matched, err := o.MatchByIngredients(context.Background(), []string{"flour", "milk", "butter"}, 50)
	if err != nil {
		t.Fatalf("MatchByIngredients: %v", err)
	}

	// Pancakes 100%, Steak 50%, Toast 50%; all clear the floor.
	if len(matched) != 3 {
		t.Fatalf("MatchByIngredients returned %d recipes, want 3", len(matched))
	}
	if matched[0].Title != "Pancakes" || matched[0].IngredientMatchPercentage != 100 {
		t.Errorf("top match = %q at %d%%, want Pancakes at 100%%", matched[0].Title, matched[0].IngredientMatchPercentage)
	}
	if matched[1].Title != "Steak" || matched[2].Title != "Toast" {
		t.Errorf("tied matches out of catalog order: [%q, %q]", matched[1].Title, matched[2].Title)
	}
}

func TestMatchByIngredientsFloor(t *testing.T) {
	o := New(&fakeStore{recipes: catalogFixture()})

	matched, err := o.MatchByIngredients(context.Background(), []string{"flour", "milk"}, 75)
	if err != nil {
		t.Fatalf("MatchByIngredients: %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "Pancakes" {
		t.Errorf("MatchByIngredients with 75%% floor = %d recipes, want Pancakes only", len(matched))
	}

	// A zero floor keeps everything, including 0% matches.
	matched, err = o.MatchByIngredients(context.Background(), []string{"nothing useful"}, 0)
	if err != nil {
		t.Fatalf("MatchByIngredients: %v", err)
	}
	if len(matched) != 3 {
		t.Errorf("MatchByIngredients with zero floor = %d recipes, want 3", len(matched))
	}
}

func TestRecipeWithSubstitutions(t *testing.T) {
	recipes := catalogFixture()
	recipes[0].ID = 7
	o := New(&fakeStore{recipes: recipes, subs: milkSubstitutions()})

	recipe, suggestions, err := o.RecipeWithSubstitutions(context.Background(), 7, []string{"flour"}, nil)
	if err != nil {
		t.Fatalf("RecipeWithSubstitutions: %v", err)
	}
	if recipe.Title != "Pancakes" {
		t.Errorf("recipe = %q, want Pancakes", recipe.Title)
	}
	if len(suggestions) != 1 || suggestions[0].OriginalIngredient.Name != "milk" {
		t.Fatalf("suggestions = %+v, want one for milk", suggestions)
	}
}

func TestRecipeWithSubstitutionsNotFound(t *testing.T) {
	o := New(&fakeStore{recipes: catalogFixture()})

	_, _, err := o.RecipeWithSubstitutions(context.Background(), 999, nil, nil)
	if !errors.Is(err, errFakeNotFound) {
		t.Errorf("RecipeWithSubstitutions error = %v, want store error passed through", err)
	}
}
