package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/errors"
	"github.com/johnquangdev/meeting-manager/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-manager/internal/usecase/task"
	"github.com/johnquangdev/meeting-manager/pkg/pagination"
)

// Task handles task HTTP requests
type Task struct {
	taskService *task.Service
	logger      *zap.Logger
}

// NewTask creates a new task handler
func NewTask(taskService *task.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// List returns the user's tasks, paginated
// GET /v1/tasks
func (h *Task) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	query := pagination.Query{
		Page:  c.QueryParam("page"),
		Limit: c.QueryParam("limit"),
	}

	result, err := h.taskService.List(ctx, userID, query)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(result))
}
