package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culinarycode/backend/internal/generation"
	"github.com/culinarycode/backend/internal/mocks"
	"github.com/culinarycode/backend/internal/service"
	"github.com/culinarycode/backend/internal/testhelpers"
	"github.com/culinarycode/backend/internal/types"
)

const pastaJSON = `{
	"recipeName": "Pasta Primavera",
	"description": "A light pasta with spring vegetables.",
	"diet": "Vegetarian",
	"recipeType": "Dinner",
	"cookingTime": 30,
	"difficulty": "Easy",
	"amount_of_people": 4,
	"ingredients": [
		{"name": "Spaghetti", "amount": 500, "measurementType": "Gram"},
		{"name": "Olive Oil", "amount": 2, "measurementType": "Tablespoon"}
	],
	"recipeSteps": [
		{"stepNumber": 1, "instruction": "Boil the pasta."},
		{"stepNumber": 2, "instruction": "Toss with vegetables."}
	]
}`

// TestGenerationPipeline runs the full pipeline against real PostgreSQL with
// only the model mocked out.
func TestGenerationPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelpers.SetupTestDatabase(t)
	logger := zap.NewNop()

	catalog := service.NewCatalogService(db, logger)
	recipes := service.NewRecipeService(db, logger)
	converter := generation.NewConverter(catalog, catalog, logger)

	client := new(mocks.MockLLMClient)
	client.On("GenerateRecipe", mock.Anything, mock.Anything).Return(pastaJSON, nil)

	generator := generation.NewGenerator(client, nil, converter, recipes, 3, 4, logger)

	ctx := context.Background()

	saved, err := generator.CreateRecipe(ctx, types.RecipeFilterRequest{RecipeName: "Pasta"}, nil)
	require.NoError(t, err)

	t.Run("should persist the converted recipe", func(t *testing.T) {
		loaded, err := recipes.GetRecipe(ctx, saved.ID)
		require.NoError(t, err)

		assert.Equal(t, "Pasta Primavera", loaded.Name)
		assert.Equal(t, types.RecipeTypeDinner, loaded.RecipeType)
		assert.Equal(t, types.DifficultyEasy, loaded.Difficulty)
		assert.Equal(t, loaded.CreatedAt, loaded.LastUsedAt)
		assert.Zero(t, loaded.AmountOfRatings)

		require.Len(t, loaded.Instructions, 2)
		assert.Equal(t, "Boil the pasta.", loaded.Instructions[0].Instruction)

		require.Len(t, loaded.Ingredients, 2)
		names := []string{loaded.Ingredients[0].Ingredient.Name, loaded.Ingredients[1].Ingredient.Name}
		assert.ElementsMatch(t, []string{"spaghetti", "olive oil"}, names)

		require.Len(t, loaded.Preferences, 1)
		assert.Equal(t, "Vegetarian", loaded.Preferences[0].Name)
		assert.False(t, loaded.Preferences[0].StandardPreference)
	})

	t.Run("should share catalog rows across generations", func(t *testing.T) {
		second, err := generator.CreateRecipe(ctx, types.RecipeFilterRequest{RecipeName: "Pasta"}, nil)
		require.NoError(t, err)

		first, err := recipes.GetRecipe(ctx, saved.ID)
		require.NoError(t, err)
		reloaded, err := recipes.GetRecipe(ctx, second.ID)
		require.NoError(t, err)

		firstIDs := map[string]bool{}
		for _, q := range first.Ingredients {
			firstIDs[q.IngredientID.String()] = true
		}
		for _, q := range reloaded.Ingredients {
			assert.True(t, firstIDs[q.IngredientID.String()], "ingredient rows must be shared")
		}

		var count int64
		require.NoError(t, db.Table("preferences").Where("name = ?", "Vegetarian").Count(&count).Error)
		assert.EqualValues(t, 1, count, "diet tag must be coined once")
	})

	t.Run("should find the recipe through search", func(t *testing.T) {
		found, err := recipes.SearchRecipes(ctx, "primavera")
		require.NoError(t, err)
		require.NotEmpty(t, found)
		assert.Equal(t, "Pasta Primavera", found[0].Name)
	})
}

// TestCatalogConcurrency hammers the upsert with concurrent writers for the
// same identity pair; the unique index must leave exactly one row behind.
func TestCatalogConcurrency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelpers.SetupTestDatabase(t)
	catalog := service.NewCatalogService(db, zap.NewNop())
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := catalog.GetOrCreateIngredient(ctx, "garlic", types.MeasurementClove)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Table("ingredients").
		Where("name = ? AND measurement = ?", "garlic", types.MeasurementClove).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, fmt.Sprintf("%d writers must collapse to one row", writers))
}
