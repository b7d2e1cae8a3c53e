package repository

import (
	"github.com/tkhs0604/task-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskAssignedUserRepository is a GORM implementation of TaskAssignedUserRepository
type GormTaskAssignedUserRepository struct {
	db *gorm.DB
}

// NewTaskAssignedUserRepository creates a new TaskAssignedUserRepository
func NewTaskAssignedUserRepository(db *gorm.DB) TaskAssignedUserRepository {
	return &GormTaskAssignedUserRepository{db: db}
}

// Create creates an assignment link
func (r *GormTaskAssignedUserRepository) Create(link *models.TaskAssignedUser) error {
	return r.db.Create(link).Error
}

// FindTaskIDsByUser returns distinct task ids assigned to the user.
// Duplicate assignment rows collapse here, so a doubly-assigned task is
// still listed once.
func (r *GormTaskAssignedUserRepository) FindTaskIDsByUser(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&models.TaskAssignedUser{}).
		Distinct().
		Where("user_id = ?", userID).
		Pluck("task_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FindTaskIDsByUsers returns distinct task ids assigned to any of the users
func (r *GormTaskAssignedUserRepository) FindTaskIDsByUsers(userIDs []uint64) ([]uint64, error) {
	if len(userIDs) == 0 {
		return []uint64{}, nil
	}
	var ids []uint64
	err := r.db.Model(&models.TaskAssignedUser{}).
		Distinct().
		Where("user_id IN ?", userIDs).
		Pluck("task_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FindByTaskIDs batch-loads assignment links for the given tasks
func (r *GormTaskAssignedUserRepository) FindByTaskIDs(taskIDs []uint64) ([]models.TaskAssignedUser, error) {
	if len(taskIDs) == 0 {
		return []models.TaskAssignedUser{}, nil
	}
	var links []models.TaskAssignedUser
	if err := r.db.Where("task_id IN ?", taskIDs).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Delete hard deletes the links binding a task to a user
func (r *GormTaskAssignedUserRepository) Delete(taskID, userID uint64) error {
	return r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAssignedUser{}).Error
}
