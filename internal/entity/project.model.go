package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProjectStatusNotStarted = "not started"
	ProjectStatusInProgress = "in progress"
	ProjectStatusComplete   = "complete"
)

type Project struct {
	gorm.Model
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Description  string     `json:"description" gorm:"type:text"`
	AmbitionID   uuid.UUID  `json:"ambition_id" gorm:"type:uuid;not null"`
	ManagerID    *uuid.UUID `json:"manager_id" gorm:"type:uuid"`
	Deadline     *time.Time `json:"deadline"`
	HoursPerWeek int        `json:"hours_per_week" gorm:"default:40"`
	Status       string     `json:"status" gorm:"type:varchar(50);default:'not started'"`
	Skills       []Skill    `json:"skills" gorm:"many2many:project_skills"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
