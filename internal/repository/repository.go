package repository

import (
	"time"

	"github.com/tkhs0604/task-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Register inserts a user after checking that the email is free.
	// Both steps run inside a single write transaction; returns
	// ErrDuplicateEmail when the email is already registered.
	Register(user *models.User) error

	// FindByID finds a non-deleted user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a non-deleted user by email (exact match)
	FindByEmail(email string) (*models.User, error)

	// FindByIDs batch-loads non-deleted users by ID
	FindByIDs(ids []uint64) ([]models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a non-deleted task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindIDsByCreator returns ids of non-deleted tasks created by the user
	FindIDsByCreator(userID uint64) ([]uint64, error)

	// List retrieves tasks matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task and hard deletes its assignment links
	Delete(id uint64) error
}

// TaskAssignedUserRepository defines the interface for assignment links
type TaskAssignedUserRepository interface {
	// Create creates an assignment link
	Create(link *models.TaskAssignedUser) error

	// FindTaskIDsByUser returns distinct task ids assigned to the user
	FindTaskIDsByUser(userID uint64) ([]uint64, error)

	// FindTaskIDsByUsers returns distinct task ids assigned to any of the users
	FindTaskIDsByUsers(userIDs []uint64) ([]uint64, error)

	// FindByTaskIDs batch-loads assignment links for the given tasks
	FindByTaskIDs(taskIDs []uint64) ([]models.TaskAssignedUser, error)

	// Delete hard deletes the links binding a task to a user
	Delete(taskID, userID uint64) error
}

// TaskFilter holds the predicates and sort for listing tasks. TaskIDs is
// the visibility scope and is always applied; every other predicate is
// optional and AND-combined when set. IDRestrictions carries additional
// id-set predicates derived from assignment lookups.
type TaskFilter struct {
	TaskIDs        []uint64
	IsPublic       *bool
	IsDone         *bool
	ExpiredBefore  *time.Time
	ExpiredAfter   *time.Time
	CreatedUserID  *uint64
	CreatedUserIDs []uint64
	IDRestrictions [][]uint64
	SortBy         string
	SortOrder      string
}
