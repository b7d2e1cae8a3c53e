package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tkhs0604/task-api/internal/dto"
	apierrors "github.com/tkhs0604/task-api/internal/errors"
	"github.com/tkhs0604/task-api/internal/middleware"
	"github.com/tkhs0604/task-api/internal/services"
)

// UserHandler serves the authenticated-user endpoints.
type UserHandler struct {
	taskService *services.TaskService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(taskService *services.TaskService) *UserHandler {
	return &UserHandler{
		taskService: taskService,
	}
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// MyTasks lists the tasks the authenticated user created or was assigned,
// narrowed by the optional query filters.
func (h *UserHandler) MyTasks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	input, err := bindListTasksInput(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input.UserID = user.ID

	tasks, err := h.taskService.ListUserTasks(input)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

func bindListTasksInput(c *gin.Context) (services.ListTasksInput, error) {
	input := services.ListTasksInput{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.DefaultQuery("sort_order", "asc"),
	}

	var err error
	if input.IsPublic, err = boolQuery(c, "is_public"); err != nil {
		return input, err
	}
	if input.IsDone, err = boolQuery(c, "is_done"); err != nil {
		return input, err
	}
	if input.ExpiredBefore, err = timeQuery(c, "expired_before"); err != nil {
		return input, err
	}
	if input.ExpiredAfter, err = timeQuery(c, "expired_after"); err != nil {
		return input, err
	}
	if input.CreatedUserID, err = uintQuery(c, "created_user_id"); err != nil {
		return input, err
	}
	if input.AssignedUserID, err = uintQuery(c, "assigned_user_id"); err != nil {
		return input, err
	}
	if input.CreatedUserIDs, err = uintListQuery(c, "created_user_ids"); err != nil {
		return input, err
	}
	if input.AssignedUserIDs, err = uintListQuery(c, "assigned_user_ids"); err != nil {
		return input, err
	}

	return input, nil
}

func boolQuery(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &value, nil
}

func uintQuery(c *gin.Context, name string) (*uint64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &value, nil
}

// timeQuery accepts RFC3339 as well as a local datetime without zone.
func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if value, err := time.Parse(layout, raw); err == nil {
			return &value, nil
		}
	}
	return nil, fmt.Errorf("invalid %s parameter", name)
}

// uintListQuery accepts both repeated parameters and comma-separated
// values; an absent or empty parameter yields no filter.
func uintListQuery(c *gin.Context, name string) ([]uint64, error) {
	var ids []uint64
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			value, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s parameter", name)
			}
			ids = append(ids, value)
		}
	}
	return ids, nil
}
