package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ActionItemDueDays is how far in the future generated tasks are due
const ActionItemDueDays = 7

// Task represents a follow-up task, usually generated from a meeting action item
type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_tasks_user_status;index:idx_tasks_user_due"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index:idx_tasks_user_status"`
	DueDate     time.Time  `json:"due_date" gorm:"not null;index:idx_tasks_user_due"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// NewTaskFromActionItem builds a pending task for one extracted action item,
// due ActionItemDueDays from now.
func NewTaskFromActionItem(meetingID, userID uuid.UUID, item string, now time.Time) *Task {
	return &Task{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		UserID:      userID,
		Title:       item,
		Description: fmt.Sprintf("Task created from meeting action item: %s", item),
		Status:      TaskStatusPending,
		DueDate:     now.AddDate(0, 0, ActionItemDueDays),
	}
}

// IsOverdue reports whether the task is past due and not completed
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}
