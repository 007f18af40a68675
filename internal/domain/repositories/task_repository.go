package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// TaskStatusCount is one row of the tasks-by-status group-by
type TaskStatusCount struct {
	Status entities.TaskStatus `json:"status"`
	Count  int64               `json:"count"`
}

// OverdueTaskRow is the projection used by the dashboard overdue-tasks query.
// MeetingTitle comes from an inner join, so tasks whose meeting is gone are
// dropped.
type OverdueTaskRow struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	DueDate      time.Time `json:"dueDate"`
	MeetingID    uuid.UUID `json:"meetingId"`
	MeetingTitle string    `json:"meetingTitle"`
}

// TaskRepository defines task persistence and aggregation operations
type TaskRepository interface {
	CreateBatch(ctx context.Context, tasks []*entities.Task) error

	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Task, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Task, error)

	// CountByStatus groups the user's tasks by status
	CountByStatus(ctx context.Context, userID uuid.UUID) ([]TaskStatusCount, error)

	// FindOverdue returns incomplete tasks due before ref, most overdue first,
	// joined to their parent meeting for its title
	FindOverdue(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]OverdueTaskRow, error)
}
