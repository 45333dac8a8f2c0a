// Package api contains the gin HTTP handlers.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culinarycode/backend/internal/service"
)

// RecipeHandler handles recipe read/write requests.
type RecipeHandler struct {
	recipes *service.RecipeService
	drafts  DraftCache
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipes *service.RecipeService, drafts DraftCache, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		drafts:  drafts,
		logger:  logger.Named("recipe-handler"),
	}
}

// ListRecipes returns recipes, optionally filtered by the q search term.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		recipes, err := h.recipes.SearchRecipes(c.Request.Context(), query)
		if err != nil {
			h.logger.Error("search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search recipes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recipes": recipes})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns one recipe by ID.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("get failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// TouchRecipe marks a recipe as used, fencing it from retention cleanup.
func (h *RecipeHandler) TouchRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipes.TouchLastUsed(c.Request.Context(), id); err != nil {
		h.logger.Error("touch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRecipe deletes a recipe by ID.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}

	// The cached draft would otherwise keep serving the deleted recipe
	// until its TTL runs out.
	if err := h.drafts.DeleteDraft(c.Request.Context(), id); err != nil {
		h.logger.Warn("failed to invalidate draft", zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}
