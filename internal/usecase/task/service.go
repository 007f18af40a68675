package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/pkg/pagination"
)

// Service handles task business logic
type Service struct {
	taskRepo repositories.TaskRepository
	now      func() time.Time
}

// NewService creates a new task service
func NewService(taskRepo repositories.TaskRepository) *Service {
	return &Service{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// ListResult is the paginated task list envelope
type ListResult struct {
	Tasks []*entities.Task
	Total int64
	Page  int
	Limit int
}

// List retrieves a user's tasks, newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID, query pagination.Query) (*ListResult, error) {
	p := pagination.Validate(query, pagination.DefaultOptions())

	tasks, err := s.taskRepo.FindByUser(ctx, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	total, err := s.taskRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &ListResult{
		Tasks: tasks,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// CreateFromActionItems bulk-creates one pending task per action item, due
// seven days from now, and returns the created task IDs in item order.
func (s *Service) CreateFromActionItems(ctx context.Context, meetingID, userID uuid.UUID, actionItems []string) ([]uuid.UUID, error) {
	now := s.now()

	tasks := make([]*entities.Task, 0, len(actionItems))
	for _, item := range actionItems {
		tasks = append(tasks, entities.NewTaskFromActionItem(meetingID, userID, item, now))
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to create tasks from action items: %w", err)
	}

	ids := make([]uuid.UUID, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids, nil
}
