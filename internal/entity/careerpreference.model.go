package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCareerPathPreferences caps how many paths a user may rank.
const MaxCareerPathPreferences = 3

type CareerPathPreference struct {
	gorm.Model
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_preference_user_path"`
	PathID uuid.UUID `json:"path_id" gorm:"type:uuid;not null;uniqueIndex:idx_preference_user_path"`
	Rank   int       `json:"rank" gorm:"not null"`
}

func (p *CareerPathPreference) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
