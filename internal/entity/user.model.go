package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleLeader      = "leader"
	RoleManager     = "manager"
	RoleContributor = "contributor"
	RoleIntern      = "intern"
	RoleUser        = "user"
)

type User struct {
	gorm.Model
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email          string    `json:"email" gorm:"type:varchar(100);unique_index"`
	Name           string    `json:"name" gorm:"type:varchar(100)"`
	ProfilePicture string    `json:"profile_picture" gorm:"type:varchar(255)"`
	Role           string    `json:"role" gorm:"type:varchar(100)"`
	Status         string    `json:"status" gorm:"type:varchar(50)"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
