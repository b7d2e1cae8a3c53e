package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Email           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"type:varchar(255);not null" json:"-"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedTasks []Task             `gorm:"foreignKey:CreatedUserID" json:"-"`
	Assignments  []TaskAssignedUser `gorm:"foreignKey:UserID" json:"-"`
}
