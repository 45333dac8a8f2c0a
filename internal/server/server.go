// Package server assembles the application and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/culinarycode/backend/config"
	"github.com/culinarycode/backend/internal/api"
	"github.com/culinarycode/backend/internal/database"
	"github.com/culinarycode/backend/internal/generation"
	"github.com/culinarycode/backend/internal/llm"
	"github.com/culinarycode/backend/internal/middleware"
	"github.com/culinarycode/backend/internal/router"
	"github.com/culinarycode/backend/internal/service"
)

// Server represents the HTTP server and its wired dependencies.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New builds the full application: database, redis, LLM client, generation
// pipeline, handlers and routes.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// Development runs migrations at startup; deployed environments apply
	// them explicitly through cmd/migrate.
	if config.IsDevelopment() {
		if err := database.RunMigrations(db, "migrations", logger); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "ollama":
		llmClient = llm.NewOllamaClient(cfg, logger)
	default:
		llmClient, err = llm.NewDeepSeekClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("llm client: %w", err)
		}
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		return nil, fmt.Errorf("s3: %w", err)
	}
	dalle := llm.NewDalleClient(cfg, logger)
	images := service.NewImageService(dalle, s3Config, logger)

	catalog := service.NewCatalogService(db, logger)
	recipes := service.NewRecipeService(db, logger)
	drafts := service.NewDraftService(redisClient)

	converter := generation.NewConverter(catalog, catalog, logger)
	generator := generation.NewGenerator(
		llmClient, images, converter, recipes,
		cfg.MaxGenerationAttempts, cfg.BatchConcurrency, logger,
	)

	tokens := service.NewTokenService(cfg.JWTSigningKey)
	limiter := middleware.NewGenerationRateLimiter(redisClient)

	recipeHandler := api.NewRecipeHandler(recipes, drafts, logger)
	generationHandler := api.NewGenerationHandler(generator, drafts, logger)

	engine := router.SetupRouter(db, recipeHandler, generationHandler, tokens, limiter)

	return &Server{
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
		logger: logger,
	}, nil
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
