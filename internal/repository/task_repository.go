package repository

import (
	"github.com/tkhs0604/task-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindIDsByCreator returns ids of non-deleted tasks created by the user
func (r *GormTaskRepository) FindIDsByCreator(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&models.Task{}).
		Where("created_user_id = ?", userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// List retrieves tasks matching the filter, folding each optional
// predicate into a single AND-combined query. Soft-deleted tasks are
// excluded by GORM's DeletedAt handling.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	if len(filter.TaskIDs) == 0 {
		return []models.Task{}, nil
	}

	query := r.db.Model(&models.Task{}).Where("tasks.id IN ?", filter.TaskIDs)

	if filter.IsPublic != nil {
		query = query.Where("tasks.is_public = ?", *filter.IsPublic)
	}
	if filter.IsDone != nil {
		query = query.Where("tasks.is_done = ?", *filter.IsDone)
	}
	if filter.ExpiredBefore != nil {
		query = query.Where("tasks.expired_at <= ?", *filter.ExpiredBefore)
	}
	if filter.ExpiredAfter != nil {
		query = query.Where("tasks.expired_at >= ?", *filter.ExpiredAfter)
	}
	if filter.CreatedUserID != nil {
		query = query.Where("tasks.created_user_id = ?", *filter.CreatedUserID)
	}
	if len(filter.CreatedUserIDs) > 0 {
		query = query.Where("tasks.created_user_id IN ?", filter.CreatedUserIDs)
	}
	for _, ids := range filter.IDRestrictions {
		if len(ids) > 0 {
			query = query.Where("tasks.id IN ?", ids)
		}
	}

	query = query.Order(orderClause(filter.SortBy, filter.SortOrder))

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// sortColumns whitelists the sortable columns; anything else falls back
// to created_at.
var sortColumns = map[string]string{
	"title":      "title",
	"expired_at": "expired_at",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func orderClause(sortBy, sortOrder string) clause.OrderByColumn {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	return clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   sortOrder == "desc",
	}
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete soft deletes a task and removes its assignment links
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignedUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}
