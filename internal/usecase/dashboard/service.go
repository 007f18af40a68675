package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
)

const (
	cacheKeyPrefix   = "dashboard-"
	upcomingLimit    = 5
	overdueTaskLimit = 5
)

// Service assembles the per-user dashboard snapshot
type Service struct {
	meetingRepo repositories.MeetingRepository
	taskRepo    repositories.TaskRepository
	store       cache.Store
	cacheTTL    time.Duration
	now         func() time.Time
}

// NewService creates a new dashboard service
func NewService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	store cache.Store,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		taskRepo:    taskRepo,
		store:       store,
		cacheTTL:    cacheTTL,
		now:         time.Now,
	}
}

// TaskSummary is the fixed-shape task status breakdown. Every field is
// present even when the user has no tasks in that status.
type TaskSummary struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

// Data is the dashboard snapshot
type Data struct {
	TotalMeetings    int64                             `json:"totalMeetings"`
	TaskSummary      TaskSummary                       `json:"taskSummary"`
	UpcomingMeetings []repositories.UpcomingMeetingRow `json:"upcomingMeetings"`
	OverdueTasks     []repositories.OverdueTaskRow     `json:"overdueTasks"`
}

// Dashboard returns the user's dashboard snapshot, served from cache when a
// live entry exists.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*Data, error) {
	key := cacheKeyPrefix + userID.String()
	return cache.GetOrSet(ctx, s.store, key, s.cacheTTL, func(ctx context.Context) (*Data, error) {
		return s.compute(ctx, userID)
	})
}

// compute fans out the three dashboard aggregations concurrently. Any
// failure cancels the rest and propagates; no partial snapshot is returned.
func (s *Service) compute(ctx context.Context, userID uuid.UUID) (*Data, error) {
	ref := s.now()

	var (
		upcoming      []repositories.UpcomingMeetingRow
		statusCounts  []repositories.TaskStatusCount
		totalMeetings int64
		overdue       []repositories.OverdueTaskRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.meetingRepo.FindUpcoming(gctx, userID, ref, upcomingLimit)
		if err != nil {
			return fmt.Errorf("upcoming meetings query failed: %w", err)
		}
		upcoming = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.taskRepo.CountByStatus(gctx, userID)
		if err != nil {
			return fmt.Errorf("task status query failed: %w", err)
		}
		total, err := s.meetingRepo.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("meeting count query failed: %w", err)
		}
		statusCounts = rows
		totalMeetings = total
		return nil
	})

	g.Go(func() error {
		rows, err := s.taskRepo.FindOverdue(gctx, userID, ref, overdueTaskLimit)
		if err != nil {
			return fmt.Errorf("overdue tasks query failed: %w", err)
		}
		overdue = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if upcoming == nil {
		upcoming = []repositories.UpcomingMeetingRow{}
	}
	if overdue == nil {
		overdue = []repositories.OverdueTaskRow{}
	}

	return &Data{
		TotalMeetings:    totalMeetings,
		TaskSummary:      buildTaskSummary(statusCounts),
		UpcomingMeetings: upcoming,
		OverdueTasks:     overdue,
	}, nil
}

// buildTaskSummary reduces the status group-by to the fixed shape. Statuses
// outside the known enum are ignored.
func buildTaskSummary(rows []repositories.TaskStatusCount) TaskSummary {
	var summary TaskSummary
	for _, row := range rows {
		switch row.Status {
		case entities.TaskStatusPending:
			summary.Pending = row.Count
		case entities.TaskStatusInProgress:
			summary.InProgress = row.Count
		case entities.TaskStatusCompleted:
			summary.Completed = row.Count
		}
	}
	return summary
}
