package models

import (
	"time"

	"github.com/google/uuid"
)

// Preference is a dietary or allergy tag. Standard preferences are curated
// by the platform; non-standard ones are coined from user input or model
// output. Preferences are immutable once created and referenced, never
// owned, by recipes.
type Preference struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string    `gorm:"size:100;not null;index" json:"name"`
	StandardPreference bool      `gorm:"not null;default:false" json:"standard_preference"`
	CreatedAt          time.Time `json:"created_at"`
}

func (Preference) TableName() string {
	return "preferences"
}
