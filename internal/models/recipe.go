package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/culinarycode/backend/internal/types"
)

// Recipe is the persistent recipe shape. Instruction steps and ingredient
// quantities are owned by the recipe; preferences are shared tags.
type Recipe struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string               `gorm:"size:255;not null" json:"name"`
	Description     string               `gorm:"type:text" json:"description"`
	RecipeType      types.RecipeType     `gorm:"not null;default:0" json:"recipe_type"`
	CookingTime     int                  `json:"cooking_time"`
	Difficulty      types.Difficulty     `gorm:"not null;default:0" json:"difficulty"`
	AmountOfPeople  int                  `json:"amount_of_people"`
	ImagePath       string               `gorm:"size:512" json:"image_path"`
	CreatedAt       time.Time            `json:"created_at"`
	LastUsedAt      time.Time            `json:"last_used_at"`
	AmountOfRatings int                  `gorm:"not null;default:0" json:"amount_of_ratings"`
	AverageRating   float64              `gorm:"not null;default:0" json:"average_rating"`
	Instructions    []InstructionStep    `gorm:"constraint:OnDelete:CASCADE" json:"instructions"`
	Ingredients     []IngredientQuantity `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Preferences     []Preference         `gorm:"many2many:recipe_preferences" json:"preferences"`
	Embedding       pgvector.Vector      `gorm:"type:vector(3)" json:"-"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
}

// InstructionStep is one numbered instruction, owned by exactly one recipe.
type InstructionStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	StepNumber  int       `gorm:"not null" json:"step_number"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
}

// IngredientQuantity ties a shared catalog Ingredient to one recipe with an
// amount. The quantity is owned by the recipe; the ingredient is not.
type IngredientQuantity struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecipeID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	IngredientID uuid.UUID  `gorm:"type:uuid;not null" json:"-"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
}
