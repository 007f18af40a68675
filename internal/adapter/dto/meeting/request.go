package meeting

import "time"

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=100"`
	Date         time.Time `json:"date" validate:"required"`
	Duration     int       `json:"duration" validate:"required,min=1,max=480"`
	Participants []string  `json:"participants" validate:"required,min=1,dive,required,max=255"`
}

// UpdateTranscriptRequest represents the request to attach a transcript
type UpdateTranscriptRequest struct {
	Transcript  string   `json:"transcript" validate:"required,min=10,max=50000"`
	Summary     *string  `json:"summary,omitempty" validate:"omitempty,min=1"`
	ActionItems []string `json:"actionItems,omitempty" validate:"omitempty,min=1,max=20,dive,min=3,max=200"`
}
