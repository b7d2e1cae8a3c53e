package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskAction is a named sub-item of a task with its own done flag.
type TaskAction struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	TaskID    uint64         `gorm:"not null;index;<-:create" json:"task_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	IsDone    bool           `gorm:"not null;default:false" json:"is_done"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
}
