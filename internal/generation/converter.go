package generation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/types"
)

// IngredientCatalog resolves shared ingredient rows. Lookups happen before
// creation so repeated generations share one catalog entry per
// (name, measurement) pair.
type IngredientCatalog interface {
	GetOrCreateIngredient(ctx context.Context, name string, measurement types.MeasurementType) (*models.Ingredient, bool, error)
}

// PreferenceCatalog resolves dietary tags by case-insensitive name.
type PreferenceCatalog interface {
	FindPreferenceByName(ctx context.Context, name string) (*models.Preference, error)
	CreatePreference(ctx context.Context, name string) (*models.Preference, error)
}

// Converter maps a validated payload into the persistent recipe shape,
// reconciling ingredients and diet tags against the shared catalog.
type Converter struct {
	ingredients IngredientCatalog
	preferences PreferenceCatalog
	logger      *zap.Logger
}

// NewConverter creates a Converter.
func NewConverter(ingredients IngredientCatalog, preferences PreferenceCatalog, logger *zap.Logger) *Converter {
	return &Converter{
		ingredients: ingredients,
		preferences: preferences,
		logger:      logger.Named("converter"),
	}
}

// Convert builds a new Recipe from the payload. The recipe gets UTC
// creation timestamps (CreatedAt == LastUsedAt) and zeroed rating fields;
// ratings are maintained by the review subsystem, never here.
func (c *Converter) Convert(ctx context.Context, payload *GeneratedRecipePayload) (*models.Recipe, error) {
	recipeType, err := types.ParseRecipeType(payload.RecipeType)
	if err != nil {
		return nil, fmt.Errorf("convert recipe type: %w", err)
	}
	difficulty, err := types.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("convert difficulty: %w", err)
	}

	preferences, err := c.resolveDiet(ctx, payload.Diet)
	if err != nil {
		return nil, err
	}

	quantities := make([]models.IngredientQuantity, 0, len(payload.Ingredients))
	for _, entry := range payload.Ingredients {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		measurement, err := types.ParseMeasurementType(entry.MeasurementType)
		if err != nil {
			return nil, fmt.Errorf("convert ingredient %q: %w", entry.Name, err)
		}

		ingredient, created, err := c.ingredients.GetOrCreateIngredient(ctx, name, measurement)
		if err != nil {
			return nil, fmt.Errorf("resolve ingredient %q: %w", name, err)
		}
		if created {
			c.logger.Info("new catalog ingredient",
				zap.String("name", name),
				zap.String("measurement", measurement.String()))
		}

		quantities = append(quantities, models.IngredientQuantity{
			IngredientID: ingredient.ID,
			Ingredient:   *ingredient,
			Quantity:     float64(entry.Amount),
		})
	}

	steps := make([]models.InstructionStep, 0, len(payload.RecipeSteps))
	for _, s := range payload.RecipeSteps {
		steps = append(steps, models.InstructionStep{
			StepNumber:  s.StepNumber,
			Instruction: s.Instruction,
		})
	}
	// Step numbers are sorted for stable presentation but gaps and
	// duplicates pass through untouched.
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].StepNumber < steps[j].StepNumber })

	now := time.Now().UTC()
	return &models.Recipe{
		Name:            payload.RecipeName,
		Description:     payload.Description,
		RecipeType:      recipeType,
		CookingTime:     payload.CookingTime,
		Difficulty:      difficulty,
		AmountOfPeople:  payload.AmountOfPeople,
		ImagePath:       payload.ImagePath,
		CreatedAt:       now,
		LastUsedAt:      now,
		AmountOfRatings: 0,
		AverageRating:   0,
		Instructions:    steps,
		Ingredients:     quantities,
		Preferences:     preferences,
	}, nil
}

// resolveDiet matches the diet tag against existing preferences, coining a
// new non-standard tag when nothing matches. An absent diet attaches nothing.
func (c *Converter) resolveDiet(ctx context.Context, diet string) ([]models.Preference, error) {
	if strings.TrimSpace(diet) == "" {
		return nil, nil
	}

	pref, err := c.preferences.FindPreferenceByName(ctx, diet)
	if err != nil {
		return nil, fmt.Errorf("resolve diet %q: %w", diet, err)
	}
	if pref == nil {
		pref, err = c.preferences.CreatePreference(ctx, diet)
		if err != nil {
			return nil, fmt.Errorf("create diet tag %q: %w", diet, err)
		}
		c.logger.Info("new diet tag", zap.String("name", diet))
	}

	return []models.Preference{*pref}, nil
}
