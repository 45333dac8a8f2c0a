package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/culinarycode/backend/internal/types"
)

// Ingredient is a deduplicated catalog entry shared by many recipes.
// Identity is the pair (lower-cased name, measurement type); the unique
// index backs the insert-or-fetch upsert in the catalog service.
type Ingredient struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string                `gorm:"size:255;not null;uniqueIndex:uq_ingredients_name_measurement" json:"name"`
	Measurement types.MeasurementType `gorm:"not null;uniqueIndex:uq_ingredients_name_measurement" json:"measurement"`
	CreatedAt   time.Time             `json:"created_at"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
