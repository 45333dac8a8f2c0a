package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/culinarycode/backend/internal/models"
)

// draftTTL keeps generation results around long enough for the frontend to
// re-fetch them without another database round trip.
const draftTTL = 24 * time.Hour

// DraftService caches freshly generated recipes in Redis.
type DraftService struct {
	redis *redis.Client
}

// NewDraftService creates a new DraftService instance.
func NewDraftService(redisClient *redis.Client) *DraftService {
	return &DraftService{redis: redisClient}
}

func draftKey(id uuid.UUID) string {
	return fmt.Sprintf("recipe:draft:%s", id)
}

// SaveDraft caches the recipe under its ID.
func (s *DraftService) SaveDraft(ctx context.Context, recipe *models.Recipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.redis.Set(ctx, draftKey(recipe.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// GetDraft retrieves a cached recipe. A cache miss returns (nil, nil).
func (s *DraftService) GetDraft(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var recipe models.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &recipe, nil
}

// DeleteDraft removes a cached recipe.
func (s *DraftService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	if err := s.redis.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
