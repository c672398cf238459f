package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvitationStatusInvited  = "invited"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

type ProjectInvitation struct {
	gorm.Model
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null"`
	Status      string     `json:"status" gorm:"type:varchar(50);default:'invited'"`
	RespondedAt *time.Time `json:"responded_at"`
}

func (i *ProjectInvitation) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
