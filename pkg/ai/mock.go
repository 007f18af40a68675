package ai

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// MockSummarizer returns canned results without calling any external service.
// Used in development and tests when no Groq API key is configured.
type MockSummarizer struct {
	// Delay simulates AI processing latency. Zero means no delay.
	Delay time.Duration
}

// NewMockSummarizer creates a mock summarizer with no artificial delay
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize returns a fixed summary and action item list
func (m *MockSummarizer) Summarize(ctx context.Context, transcript string) (*SummaryResult, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	return &SummaryResult{
		Summary: "Team discussed project progress and outlined next steps. Key points included " +
			"technical updates, timeline review, and resource allocation planning.",
		ActionItems: []string{
			"Review project timeline by next week",
			"Schedule follow-up meeting with stakeholders",
			"Update technical documentation",
			"Prepare resource allocation report",
		},
	}, nil
}

// AnalyzeEmotion returns a random emotion split summing to 1
func (m *MockSummarizer) AnalyzeEmotion(ctx context.Context) (*EmotionResult, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return randomEmotion(), nil
}

func (m *MockSummarizer) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// randomEmotion distributes joy, anger and sadness so the components sum to 1
func randomEmotion() *EmotionResult {
	joy := rand.Float64()
	anger := rand.Float64() * (1 - joy)
	sadness := 1 - joy - anger

	return &EmotionResult{
		Joy:     round2(joy),
		Anger:   round2(anger),
		Sadness: round2(sadness),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
