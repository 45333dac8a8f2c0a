// Package mocks holds testify mocks for the pipeline's collaborator
// interfaces so tests can script model output and persistence behavior.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/types"
)

// MockLLMClient is a mock implementation of llm.Client.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) GenerateRecipe(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockImageGenerator is a mock implementation of llm.ImageGenerator.
type MockImageGenerator struct {
	mock.Mock
}

func (m *MockImageGenerator) GenerateRecipeImage(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRecipeStore is a mock implementation of generation.RecipeStore.
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	args := m.Called(ctx, recipe)
	if rf, ok := args.Get(0).(func(context.Context, *models.Recipe) *models.Recipe); ok {
		return rf(ctx, recipe), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) UpdateRecipeImage(ctx context.Context, id uuid.UUID, imagePath string) error {
	args := m.Called(ctx, id, imagePath)
	return args.Error(0)
}

// MockIngredientCatalog is a mock implementation of generation.IngredientCatalog.
type MockIngredientCatalog struct {
	mock.Mock
}

func (m *MockIngredientCatalog) GetOrCreateIngredient(ctx context.Context, name string, measurement types.MeasurementType) (*models.Ingredient, bool, error) {
	args := m.Called(ctx, name, measurement)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Ingredient), args.Bool(1), args.Error(2)
}

// MockPreferenceCatalog is a mock implementation of generation.PreferenceCatalog.
type MockPreferenceCatalog struct {
	mock.Mock
}

func (m *MockPreferenceCatalog) FindPreferenceByName(ctx context.Context, name string) (*models.Preference, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preference), args.Error(1)
}

func (m *MockPreferenceCatalog) CreatePreference(ctx context.Context, name string) (*models.Preference, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preference), args.Error(1)
}

// MockDraftCache is a mock implementation of api.DraftCache.
type MockDraftCache struct {
	mock.Mock
}

func (m *MockDraftCache) SaveDraft(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockDraftCache) GetDraft(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockDraftCache) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenValidator is a mock implementation of middleware.TokenValidator.
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
