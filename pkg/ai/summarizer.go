package ai

import "context"

// SummaryResult is the summarization service output
type SummaryResult struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
}

// EmotionResult is the sentiment breakdown for a meeting.
// Components sum to 1.
type EmotionResult struct {
	Joy     float64 `json:"joy"`
	Anger   float64 `json:"anger"`
	Sadness float64 `json:"sadness"`
}

// Summarizer abstracts the external summarization service
type Summarizer interface {
	// Summarize turns a transcript into a summary and ordered action items.
	// Single call, no retries; failures propagate to the caller.
	Summarize(ctx context.Context, transcript string) (*SummaryResult, error)

	// AnalyzeEmotion estimates the emotional tone of a meeting
	AnalyzeEmotion(ctx context.Context) (*EmotionResult, error)
}
