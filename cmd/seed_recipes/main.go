// Command seed_recipes fills the database with generated recipes, driving
// the batch generation path. Intended for development and demo environments.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/culinarycode/backend/config"
	"github.com/culinarycode/backend/internal/database"
	"github.com/culinarycode/backend/internal/generation"
	"github.com/culinarycode/backend/internal/llm"
	"github.com/culinarycode/backend/internal/logger"
	"github.com/culinarycode/backend/internal/service"
)

var seedRecipeNames = []string{
	"Spaghetti Carbonara",
	"Chicken Tikka Masala",
	"Beef Bourguignon",
	"Vegetable Pad Thai",
	"Mushroom Risotto",
	"Greek Salad",
	"Shakshuka",
	"Ratatouille",
	"Pulled Pork Tacos",
	"Miso Ramen",
	"Falafel Wrap",
	"Banana Pancakes",
	"Tomato Basil Soup",
	"Lemon Herb Salmon",
	"Apple Crumble",
	"Chocolate Lava Cake",
	"Caprese Sandwich",
	"Butternut Squash Curry",
	"Chicken Caesar Wrap",
	"Berry Smoothie Bowl",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("database", zap.Error(err))
	}

	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "ollama":
		llmClient = llm.NewOllamaClient(cfg, zapLogger)
	default:
		llmClient, err = llm.NewDeepSeekClient(cfg, zapLogger)
		if err != nil {
			zapLogger.Fatal("llm client", zap.Error(err))
		}
	}

	catalog := service.NewCatalogService(db, zapLogger)
	recipes := service.NewRecipeService(db, zapLogger)
	converter := generation.NewConverter(catalog, catalog, zapLogger)

	// No image backend during seeding; recipes get pictures lazily later.
	generator := generation.NewGenerator(
		llmClient, nil, converter, recipes,
		cfg.MaxGenerationAttempts, cfg.BatchConcurrency, zapLogger,
	)

	generated := generator.CreateRecipes(context.Background(), seedRecipeNames)
	zapLogger.Info("seeding complete",
		zap.Int("requested", len(seedRecipeNames)),
		zap.Int("generated", len(generated)))
}
