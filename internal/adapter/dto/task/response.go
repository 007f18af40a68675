package task

import "time"

// TaskResponse represents a task in responses
type TaskResponse struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
