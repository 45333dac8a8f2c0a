package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/culinarycode/backend/internal/api"
	"github.com/culinarycode/backend/internal/database"
	"github.com/culinarycode/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	db *gorm.DB,
	recipeHandler *api.RecipeHandler,
	generationHandler *api.GenerationHandler,
	tokenValidator middleware.TokenValidator,
	generationLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(middleware.Auth(tokenValidator))
	{
		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.POST("/:id/used", recipeHandler.TouchRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)

			recipes.POST("/generate", generationLimiter.Middleware(), generationHandler.Generate)
			recipes.POST("/generate/batch", generationLimiter.Middleware(), generationHandler.GenerateBatch)
			recipes.GET("/drafts/:id", generationHandler.GetDraft)
		}
	}

	return router
}
