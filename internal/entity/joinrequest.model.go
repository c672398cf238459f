package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JoinRequest struct {
	gorm.Model
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	ProjectID        uuid.UUID  `json:"project_id" gorm:"type:uuid;not null"`
	UserID           uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`
	RoleID           *uuid.UUID `json:"role_id" gorm:"type:uuid"`
	ApplicantComment string     `json:"applicant_comment" gorm:"type:text"`
	Status           string     `json:"status" gorm:"type:varchar(50);default:'pending'"`
}

func (j *JoinRequest) BeforeCreate(*gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
