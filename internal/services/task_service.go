package services

import (
	"fmt"
	"time"

	"github.com/tkhs0604/task-api/internal/models"
	"github.com/tkhs0604/task-api/internal/repository"
)

// TaskService resolves which tasks a user may see and answers filtered,
// sorted listing queries over that set.
type TaskService struct {
	taskRepo     repository.TaskRepository
	assignedRepo repository.TaskAssignedUserRepository
	userRepo     repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	assignedRepo repository.TaskAssignedUserRepository,
	userRepo repository.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		assignedRepo: assignedRepo,
		userRepo:     userRepo,
	}
}

// ListTasksInput represents filters for listing a user's tasks. Nil
// pointers and empty slices impose no constraint.
type ListTasksInput struct {
	UserID          uint64
	IsPublic        *bool
	IsDone          *bool
	ExpiredBefore   *time.Time
	ExpiredAfter    *time.Time
	CreatedUserID   *uint64
	AssignedUserID  *uint64
	CreatedUserIDs  []uint64
	AssignedUserIDs []uint64
	SortBy          string
	SortOrder       string
}

// ListUserTasks returns exactly the tasks the user created or was
// assigned, narrowed by the supplied filters and sorted as requested.
// Caller-supplied filters can only restrict the authorized set, never
// widen it.
func (s *TaskService) ListUserTasks(input ListTasksInput) ([]models.Task, error) {
	createdIDs, err := s.taskRepo.FindIDsByCreator(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve created tasks: %w", err)
	}

	assignedIDs, err := s.assignedRepo.FindTaskIDsByUser(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assigned tasks: %w", err)
	}

	authorizedIDs := unionIDs(createdIDs, assignedIDs)
	if len(authorizedIDs) == 0 {
		return []models.Task{}, nil
	}

	filter := repository.TaskFilter{
		TaskIDs:       authorizedIDs,
		IsPublic:      input.IsPublic,
		IsDone:        input.IsDone,
		ExpiredBefore: input.ExpiredBefore,
		ExpiredAfter:  input.ExpiredAfter,
		CreatedUserID: input.CreatedUserID,
		SortBy:        input.SortBy,
		SortOrder:     input.SortOrder,
	}
	if len(input.CreatedUserIDs) > 0 {
		filter.CreatedUserIDs = input.CreatedUserIDs
	}

	// The assignment filters re-derive their id sets with independent
	// lookups instead of reusing the authorization-step set.
	if input.AssignedUserID != nil {
		ids, err := s.assignedRepo.FindTaskIDsByUser(*input.AssignedUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assigned filter: %w", err)
		}
		if len(ids) == 0 {
			return []models.Task{}, nil
		}
		filter.IDRestrictions = append(filter.IDRestrictions, ids)
	}
	if len(input.AssignedUserIDs) > 0 {
		ids, err := s.assignedRepo.FindTaskIDsByUsers(input.AssignedUserIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assigned filter: %w", err)
		}
		if len(ids) == 0 {
			return []models.Task{}, nil
		}
		filter.IDRestrictions = append(filter.IDRestrictions, ids)
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if err := s.loadRelations(tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// loadRelations eagerly materializes each task's creator and assignment
// links (with the link users) in three batched queries, so serialization
// never triggers further lookups.
func (s *TaskService) loadRelations(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	taskIDs := make([]uint64, 0, len(tasks))
	userIDSet := make(map[uint64]struct{})
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
		userIDSet[task.CreatedUserID] = struct{}{}
	}

	links, err := s.assignedRepo.FindByTaskIDs(taskIDs)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}
	for _, link := range links {
		userIDSet[link.UserID] = struct{}{}
	}

	userIDs := make([]uint64, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	usersByID := make(map[uint64]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	linksByTask := make(map[uint64][]models.TaskAssignedUser, len(tasks))
	for _, link := range links {
		link.User = usersByID[link.UserID]
		linksByTask[link.TaskID] = append(linksByTask[link.TaskID], link)
	}

	for i := range tasks {
		tasks[i].CreatedUser = usersByID[tasks[i].CreatedUserID]
		tasks[i].AssignedUsers = linksByTask[tasks[i].ID]
	}

	return nil
}

// unionIDs merges two id slices into one de-duplicated set.
func unionIDs(a, b []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(a)+len(b))
	result := make([]uint64, 0, len(a)+len(b))

	for _, ids := range [][]uint64{a, b} {
		for _, id := range ids {
			if _, exists := seen[id]; exists {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}

	return result
}
