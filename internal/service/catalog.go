package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/types"
)

// CatalogService owns the shared ingredient and preference catalogs.
type CatalogService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(db *gorm.DB, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		db:     db,
		logger: logger.Named("catalog"),
	}
}

// GetOrCreateIngredient resolves an ingredient by its identity pair
// (lower-cased name, measurement), creating the row when absent. Concurrent
// generations can coin the same pair at once; the unique index turns the
// losing insert into a no-op and the re-fetch returns the winner's row.
// The boolean reports whether this call created the row.
func (s *CatalogService) GetOrCreateIngredient(ctx context.Context, name string, measurement types.MeasurementType) (*models.Ingredient, bool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, false, fmt.Errorf("ingredient name must not be empty")
	}

	var existing models.Ingredient
	err := s.db.WithContext(ctx).
		Where("name = ? AND measurement = ?", name, measurement).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("lookup ingredient: %w", err)
	}

	ingredient := models.Ingredient{Name: name, Measurement: measurement}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ingredient)
	if res.Error != nil {
		return nil, false, fmt.Errorf("create ingredient: %w", res.Error)
	}
	created := res.RowsAffected > 0

	var out models.Ingredient
	if err := s.db.WithContext(ctx).
		Where("name = ? AND measurement = ?", name, measurement).
		First(&out).Error; err != nil {
		return nil, false, fmt.Errorf("re-fetch ingredient after insert: %w", err)
	}

	return &out, created, nil
}

// FindPreferenceByName matches a diet tag by case-insensitive name.
// A miss returns (nil, nil); it is not an error.
func (s *CatalogService) FindPreferenceByName(ctx context.Context, name string) (*models.Preference, error) {
	var pref models.Preference
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup preference: %w", err)
	}
	return &pref, nil
}

// CreatePreference persists a new non-standard tag with the exact name given.
// Standard preferences are platform-curated and seeded through migrations,
// never coined here.
func (s *CatalogService) CreatePreference(ctx context.Context, name string) (*models.Preference, error) {
	pref := models.Preference{
		Name:               name,
		StandardPreference: false,
	}
	if err := s.db.WithContext(ctx).Create(&pref).Error; err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}
	return &pref, nil
}

// ListStandardPreferences returns the platform-curated tags.
func (s *CatalogService) ListStandardPreferences(ctx context.Context) ([]models.Preference, error) {
	var prefs []models.Preference
	if err := s.db.WithContext(ctx).
		Where("standard_preference = ?", true).
		Order("name").
		Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("list standard preferences: %w", err)
	}
	return prefs, nil
}
