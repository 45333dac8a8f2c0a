package generation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culinarycode/backend/internal/llm"
	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/types"
)

// RecipeStore is the persistence collaborator the pipeline writes through.
type RecipeStore interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	UpdateRecipeImage(ctx context.Context, id uuid.UUID, imagePath string) error
}

// Generator drives one recipe generation: prompt, model call, validation,
// conversion, persistence and optional image generation, with a bounded
// retry loop around transient validation failures.
type Generator struct {
	client      llm.Client
	images      llm.ImageGenerator
	converter   *Converter
	store       RecipeStore
	maxAttempts int
	concurrency int
	logger      *zap.Logger
}

// NewGenerator creates a Generator. images may be nil when no image backend
// is configured. concurrency bounds the batch fan-out.
func NewGenerator(client llm.Client, images llm.ImageGenerator, converter *Converter, store RecipeStore, maxAttempts, concurrency int, logger *zap.Logger) *Generator {
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	if concurrency < 1 {
		concurrency = 4
	}
	return &Generator{
		client:      client,
		images:      images,
		converter:   converter,
		store:       store,
		maxAttempts: maxAttempts,
		concurrency: concurrency,
		logger:      logger.Named("generator"),
	}
}

// CreateRecipe generates, converts and persists one recipe.
//
// The same prompt is resent verbatim on retry: the model is nondeterministic
// between calls, so sampling variance is what eventually produces valid
// output. A refusal is returned immediately as *RefusalError; running out of
// attempts returns ErrGenerationExhausted.
func (g *Generator) CreateRecipe(ctx context.Context, filter types.RecipeFilterRequest, preferences []models.Preference) (*models.Recipe, error) {
	prompt := BuildPrompt(filter, preferences)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		raw, err := g.client.GenerateRecipe(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("llm call failed: %w", err)
		}

		outcome := Validate(raw)
		switch outcome.Kind {
		case OutcomeRefused:
			g.logger.Info("model refused recipe request",
				zap.String("reason", outcome.Reason))
			return nil, &RefusalError{Reason: outcome.Reason}

		case OutcomeInvalid:
			g.logger.Warn("model output failed validation",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", g.maxAttempts),
				zap.Strings("violations", outcome.Violations))
			continue

		case OutcomeValid:
			recipe, err := g.converter.Convert(ctx, outcome.Payload)
			if err != nil {
				return nil, err
			}

			saved, err := g.store.CreateRecipe(ctx, recipe)
			if err != nil {
				return nil, fmt.Errorf("persist recipe: %w", err)
			}

			g.attachImage(ctx, saved)

			g.logger.Info("recipe generated",
				zap.String("recipe_id", saved.ID.String()),
				zap.String("name", saved.Name),
				zap.Int("attempts", attempt))
			return saved, nil
		}
	}

	g.logger.Error("recipe generation exhausted retries",
		zap.Int("attempts", g.maxAttempts))
	return nil, ErrGenerationExhausted
}

// attachImage fills in the image path when generation left it empty. Image
// failures are logged and swallowed: a recipe without a picture is still a
// recipe.
func (g *Generator) attachImage(ctx context.Context, recipe *models.Recipe) {
	if recipe.ImagePath != "" || g.images == nil {
		return
	}

	uri, err := g.images.GenerateRecipeImage(ctx, recipe.Name)
	if err != nil {
		g.logger.Warn("image generation failed",
			zap.String("recipe_id", recipe.ID.String()),
			zap.Error(err))
		return
	}
	if uri == "" {
		return
	}

	if err := g.store.UpdateRecipeImage(ctx, recipe.ID, uri); err != nil {
		g.logger.Warn("failed to store image path",
			zap.String("recipe_id", recipe.ID.String()),
			zap.Error(err))
		return
	}
	recipe.ImagePath = uri
}

// CreateRecipes generates one recipe per name with bounded fan-out. A single
// name's failure never aborts its siblings; failed names are logged and
// skipped in the result.
func (g *Generator) CreateRecipes(ctx context.Context, names []string) []*models.Recipe {
	sem := make(chan struct{}, g.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	recipes := make([]*models.Recipe, 0, len(names))

	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			recipe, err := g.CreateRecipe(ctx, types.RecipeFilterRequest{RecipeName: name}, nil)
			if err != nil {
				g.logger.Error("batch generation failed",
					zap.String("name", name),
					zap.Error(err))
				return
			}

			mu.Lock()
			recipes = append(recipes, recipe)
			mu.Unlock()
		}(name)
	}

	wg.Wait()
	return recipes
}
