package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume rows with a nil UserID form the unassigned candidate library.
type Resume struct {
	gorm.Model
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID        *uuid.UUID `json:"user_id" gorm:"type:uuid"`
	CandidateName string     `json:"candidate_name" gorm:"type:varchar(255);not null"`
	Role          string     `json:"role" gorm:"type:varchar(255)"`
	Notes         string     `json:"notes" gorm:"type:text"`
	FilePath      string     `json:"file_path" gorm:"type:text"`
}

func (r *Resume) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
