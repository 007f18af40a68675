package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// CreateBatch inserts tasks in a single statement
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []*entities.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(tasks).Error
}

// FindByUser retrieves a user's tasks, newest first, with pagination
func (r *taskRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, error) {
	var tasks []*entities.Task
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&tasks).Error
	return tasks, err
}

// CountByUser counts a user's tasks
func (r *taskRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// FindByMeeting retrieves the tasks created from a meeting, scoped to its owner
func (r *taskRepository) FindByMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Task, error) {
	var tasks []*entities.Task
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// FindByIDs retrieves tasks by primary key
func (r *taskRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tasks []*entities.Task
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tasks).Error
	return tasks, err
}

// CountByStatus groups the user's tasks by status
func (r *taskRepository) CountByStatus(ctx context.Context, userID uuid.UUID) ([]repositories.TaskStatusCount, error) {
	var rows []repositories.TaskStatusCount
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// FindOverdue returns incomplete tasks due before ref, most overdue first,
// inner-joined to their parent meeting for its title
func (r *taskRepository) FindOverdue(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]repositories.OverdueTaskRow, error) {
	var rows []repositories.OverdueTaskRow
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.id, tasks.title, tasks.due_date, tasks.meeting_id, meetings.title AS meeting_title").
		Joins("JOIN meetings ON meetings.id = tasks.meeting_id").
		Where("tasks.user_id = ? AND tasks.due_date < ? AND tasks.status <> ?", userID, ref, entities.TaskStatusCompleted).
		Order("tasks.due_date ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
