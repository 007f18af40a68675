package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a scheduled meeting owned by a single user
type Meeting struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID                   `json:"user_id" gorm:"type:uuid;not null;index:idx_meetings_user_date"`
	Title        string                      `json:"title" gorm:"type:varchar(255);not null"`
	Date         time.Time                   `json:"date" gorm:"not null;index:idx_meetings_user_date"`
	Duration     int                         `json:"duration" gorm:"not null;check:duration >= 1 AND duration <= 480"` // minutes
	Participants datatypes.JSONSlice[string] `json:"participants" gorm:"type:jsonb;default:'[]'"`
	Transcript   *string                     `json:"transcript,omitempty" gorm:"type:text"`
	Summary      *string                     `json:"summary,omitempty" gorm:"type:text"`
	ActionItems  datatypes.JSONSlice[string] `json:"action_items" gorm:"type:jsonb;default:'[]'"`
	IsSummarized bool                        `json:"is_summarized" gorm:"default:false;not null"`
	SummarizedAt *time.Time                  `json:"summarized_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// HasTranscript reports whether a non-empty transcript is attached
func (m *Meeting) HasTranscript() bool {
	return m.Transcript != nil && *m.Transcript != ""
}

// CanSummarize reports whether the meeting is in the Transcribed state
func (m *Meeting) CanSummarize() bool {
	return !m.IsSummarized && m.HasTranscript()
}

// MarkSummarized transitions the meeting to its terminal Summarized state.
// Invariant: summary, action items and summarized_at are set together.
func (m *Meeting) MarkSummarized(summary string, actionItems []string, at time.Time) {
	m.Summary = &summary
	m.ActionItems = datatypes.NewJSONSlice(actionItems)
	m.IsSummarized = true
	m.SummarizedAt = &at
}

// ParticipantCount returns the size of the participant list
func (m *Meeting) ParticipantCount() int {
	return len(m.Participants)
}
