package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	IsPublic    bool       `gorm:"not null;default:false" json:"is_public"`
	IsDone      bool       `gorm:"not null;default:false" json:"is_done"`
	ExpiredAt   *time.Time `json:"expired_at"`
	// CreatedUserID is set once at creation and never updated.
	CreatedUserID uint64         `gorm:"not null;index;<-:create" json:"created_user_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedUser   User               `gorm:"foreignKey:CreatedUserID" json:"created_user,omitempty"`
	AssignedUsers []TaskAssignedUser `gorm:"foreignKey:TaskID" json:"assigned_users,omitempty"`
	Actions       []TaskAction       `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"actions,omitempty"`
}
