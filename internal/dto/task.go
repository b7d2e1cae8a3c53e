package dto

import (
	"time"

	"github.com/tkhs0604/task-api/internal/models"
)

// AssignedUserDTO wraps the user behind a task assignment link.
type AssignedUserDTO struct {
	User UserDTO `json:"user"`
}

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID            uint64            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	IsPublic      bool              `json:"is_public"`
	IsDone        bool              `json:"is_done"`
	ExpiredAt     *time.Time        `json:"expired_at"`
	CreatedUserID uint64            `json:"created_user_id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	CreatedUser   *UserDTO          `json:"created_user,omitempty"`
	AssignedUsers []AssignedUserDTO `json:"assigned_users"`
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	d := TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		IsPublic:      task.IsPublic,
		IsDone:        task.IsDone,
		ExpiredAt:     task.ExpiredAt,
		CreatedUserID: task.CreatedUserID,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
		AssignedUsers: make([]AssignedUserDTO, 0, len(task.AssignedUsers)),
	}

	// Include creator if loaded
	if task.CreatedUser.ID != 0 {
		creator := ToUserDTO(task.CreatedUser)
		d.CreatedUser = &creator
	}

	for _, assigned := range task.AssignedUsers {
		d.AssignedUsers = append(d.AssignedUsers, AssignedUserDTO{
			User: ToUserDTO(assigned.User),
		})
	}

	return d
}

// ToTaskDTOs converts a slice of tasks, always yielding a non-nil slice.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
