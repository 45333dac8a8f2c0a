package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culinarycode/backend/internal/generation"
	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/types"
)

// DraftCache caches generation results for cheap re-fetching.
// *service.DraftService is the production implementation.
type DraftCache interface {
	SaveDraft(ctx context.Context, recipe *models.Recipe) error
	GetDraft(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

// GenerationHandler exposes the recipe-generation pipeline over HTTP.
type GenerationHandler struct {
	generator *generation.Generator
	drafts    DraftCache
	logger    *zap.Logger
}

// NewGenerationHandler creates a new GenerationHandler instance.
func NewGenerationHandler(generator *generation.Generator, drafts DraftCache, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
		drafts:    drafts,
		logger:    logger.Named("generation-handler"),
	}
}

type generateRequest struct {
	RecipeName  string   `json:"recipe_name"`
	Ingredients []string `json:"ingredients"`
	Difficulty  int      `json:"difficulty"`
	MealType    int      `json:"meal_type"`
	CookTime    int      `json:"cook_time"`
	Preferences []string `json:"preferences"`
}

// Generate runs one recipe generation. A model refusal maps to 422 with the
// model's reason; an exhausted retry loop maps to 503 with a generic signal.
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := types.RecipeFilterRequest{
		RecipeName:  req.RecipeName,
		Ingredients: req.Ingredients,
		Difficulty:  types.Difficulty(req.Difficulty),
		MealType:    types.RecipeType(req.MealType),
		CookTime:    req.CookTime,
	}
	preferences := make([]models.Preference, 0, len(req.Preferences))
	for _, name := range req.Preferences {
		preferences = append(preferences, models.Preference{Name: name})
	}

	recipe, err := h.generator.CreateRecipe(c.Request.Context(), filter, preferences)
	if err != nil {
		var refusal *generation.RefusalError
		switch {
		case errors.As(err, &refusal):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "recipe request refused",
				"reason": refusal.Reason,
			})
		case errors.Is(err, generation.ErrGenerationExhausted):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "could not generate recipe, please try again later",
			})
		default:
			h.logger.Error("generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipe"})
		}
		return
	}

	if err := h.drafts.SaveDraft(c.Request.Context(), recipe); err != nil {
		// The recipe is already persisted; a cold draft cache is harmless.
		h.logger.Warn("failed to cache draft", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

type batchGenerateRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

// GenerateBatch generates one recipe per name. Names that fail are skipped;
// the response carries whatever succeeded.
func (h *GenerationHandler) GenerateBatch(c *gin.Context) {
	var req batchGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes := h.generator.CreateRecipes(c.Request.Context(), req.Names)
	c.JSON(http.StatusOK, gin.H{
		"requested": len(req.Names),
		"generated": len(recipes),
		"recipes":   recipes,
	})
}

// GetDraft returns a cached generation result.
func (h *GenerationHandler) GetDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	draft, err := h.drafts.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("draft lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": draft})
}
