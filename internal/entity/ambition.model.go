package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ambition struct {
	gorm.Model
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text"`
	LeaderID    *uuid.UUID `json:"leader_id" gorm:"type:uuid"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid"`
	Projects    []Project  `json:"projects" gorm:"foreignKey:AmbitionID"`
}

func (a *Ambition) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
