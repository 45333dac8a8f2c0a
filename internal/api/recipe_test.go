package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culinarycode/backend/internal/mocks"
	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/service"
	"github.com/culinarycode/backend/internal/testhelpers"
	"github.com/culinarycode/backend/internal/types"
)

func newRecipeRouter(t *testing.T) (*gin.Engine, *service.RecipeService, *mocks.MockDraftCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.NewSQLiteDB(t)
	recipes := service.NewRecipeService(db, zap.NewNop())
	drafts := new(mocks.MockDraftCache)
	handler := NewRecipeHandler(recipes, drafts, zap.NewNop())

	router := gin.New()
	router.GET("/recipes", handler.ListRecipes)
	router.GET("/recipes/:id", handler.GetRecipe)
	router.POST("/recipes/:id/used", handler.TouchRecipe)
	router.DELETE("/recipes/:id", handler.DeleteRecipe)
	return router, recipes, drafts
}

func seedRecipe(t *testing.T, recipes *service.RecipeService, name string) *models.Recipe {
	t.Helper()
	now := time.Now().UTC()
	saved, err := recipes.CreateRecipe(context.Background(), &models.Recipe{
		Name:        name,
		Description: "A recipe for " + name,
		RecipeType:  types.RecipeTypeDinner,
		CookingTime: 30,
		Difficulty:  types.DifficultyEasy,
		CreatedAt:   now,
		LastUsedAt:  now,
	})
	require.NoError(t, err)
	return saved
}

func TestRecipeHandler(t *testing.T) {
	t.Run("should list recipes", func(t *testing.T) {
		router, recipes, _ := newRecipeRouter(t)
		seedRecipe(t, recipes, "Pasta")
		seedRecipe(t, recipes, "Soup")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Pasta")
		assert.Contains(t, w.Body.String(), "Soup")
	})

	t.Run("should search recipes via the q parameter", func(t *testing.T) {
		router, recipes, _ := newRecipeRouter(t)
		seedRecipe(t, recipes, "Pasta")
		seedRecipe(t, recipes, "Tomato Soup")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes?q=tomato", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Tomato Soup")
		assert.NotContains(t, w.Body.String(), "Pasta\"")
	})

	t.Run("should get one recipe by id", func(t *testing.T) {
		router, recipes, _ := newRecipeRouter(t)
		saved := seedRecipe(t, recipes, "Curry")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/"+saved.ID.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Curry")
	})

	t.Run("should return 404 for a missing recipe", func(t *testing.T) {
		router, _, _ := newRecipeRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		router, _, _ := newRecipeRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should touch a recipe", func(t *testing.T) {
		router, recipes, _ := newRecipeRouter(t)
		past := time.Now().UTC().Add(-24 * time.Hour)
		saved := seedRecipe(t, recipes, "Stew")
		require.NoError(t, recipes.TouchLastUsed(context.Background(), saved.ID))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes/"+saved.ID.String()+"/used", nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		loaded, err := recipes.GetRecipe(context.Background(), saved.ID)
		require.NoError(t, err)
		assert.True(t, loaded.LastUsedAt.After(past))
	})

	t.Run("should delete a recipe and invalidate its draft", func(t *testing.T) {
		router, recipes, drafts := newRecipeRouter(t)
		saved := seedRecipe(t, recipes, "Salad")
		drafts.On("DeleteDraft", mock.Anything, saved.ID).Return(nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/recipes/"+saved.ID.String(), nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		_, err := recipes.GetRecipe(context.Background(), saved.ID)
		assert.True(t, service.IsNotFound(err))
		drafts.AssertExpectations(t)
	})

	t.Run("should still delete when draft invalidation fails", func(t *testing.T) {
		router, recipes, drafts := newRecipeRouter(t)
		saved := seedRecipe(t, recipes, "Soup")
		drafts.On("DeleteDraft", mock.Anything, saved.ID).Return(errors.New("redis down"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/recipes/"+saved.ID.String(), nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		_, err := recipes.GetRecipe(context.Background(), saved.ID)
		assert.True(t, service.IsNotFound(err))
	})

	t.Run("should return 404 deleting a missing recipe", func(t *testing.T) {
		router, _, _ := newRecipeRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/recipes/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
