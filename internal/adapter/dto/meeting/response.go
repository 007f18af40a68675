package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-manager/internal/adapter/dto/task"
)

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Date         time.Time  `json:"date"`
	Duration     int        `json:"duration"`
	Participants []string   `json:"participants"`
	Transcript   *string    `json:"transcript,omitempty"`
	Summary      *string    `json:"summary,omitempty"`
	ActionItems  []string   `json:"action_items"`
	IsSummarized bool       `json:"is_summarized"`
	SummarizedAt *time.Time `json:"summarized_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MeetingDetailResponse is a meeting together with its tasks
type MeetingDetailResponse struct {
	Meeting *MeetingResponse     `json:"meeting"`
	Tasks   []*task.TaskResponse `json:"tasks"`
}

// SummarizeResponse is returned by the summarize endpoint
type SummarizeResponse struct {
	Meeting *MeetingResponse     `json:"meeting"`
	Tasks   []*task.TaskResponse `json:"tasks"`
}

// SentimentResponse is the emotion breakdown of a meeting
type SentimentResponse struct {
	Joy     float64 `json:"joy"`
	Anger   float64 `json:"anger"`
	Sadness float64 `json:"sadness"`
}
