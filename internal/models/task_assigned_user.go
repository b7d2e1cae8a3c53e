package models

import "time"

// TaskAssignedUser links a task to an assignee. Removal is a hard delete,
// so there is no DeletedAt column. The (task_id, user_id) pair carries no
// uniqueness constraint; listing queries work on de-duplicated id sets.
type TaskAssignedUser struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TaskID    uint64    `gorm:"not null;index" json:"task_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
