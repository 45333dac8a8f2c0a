package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culinarycode/backend/internal/models"
)

// RecipeService handles recipe persistence and search.
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		db:     db,
		logger: logger.Named("recipes"),
	}
}

// CreateRecipe persists a new recipe with its owned steps and quantities.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if len(recipe.Embedding.Slice()) == 0 {
		recipe.Embedding = GenerateEmbedding(recipe.Name + " " + recipe.Description)
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID with its steps, ingredients and tags.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Instructions", func(db *gorm.DB) *gorm.DB { return db.Order("step_number") }).
		Preload("Ingredients.Ingredient").
		Preload("Preferences").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipeImage sets the image path on a persisted recipe.
func (s *RecipeService) UpdateRecipeImage(ctx context.Context, id uuid.UUID, imagePath string) error {
	return s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("image_path", imagePath).Error
}

// TouchLastUsed marks a recipe as used now. Called when a recipe lands on a
// meal planner or grocery list so the retention cleanup leaves it alone.
func (s *RecipeService) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now().UTC()).Error
}

// DeleteRecipe deletes a recipe by ID.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// ListRecipes lists recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, limit int) ([]*models.Recipe, error) {
	if limit <= 0 {
		limit = 50
	}
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Preferences").
		Order("created_at DESC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// SearchRecipes searches recipes. On Postgres the query combines semantic
// ordering over the embedding column with keyword matching; other dialects
// fall back to plain keyword search.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]*models.Recipe, error) {
	var recipes []models.Recipe

	dbQuery := s.db.WithContext(ctx)
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			subQuery := s.db.Model(&models.Recipe{}).
				Select("id, embedding <-> ? as similarity", vec).
				Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
			dbQuery = dbQuery.
				Joins("JOIN (?) as search ON recipes.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
	}

	if err := dbQuery.Preload("Preferences").Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// IsNotFound reports whether err marks a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
