package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

// GroqClient is a minimal client for Groq API calls used for transcript summarization
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	model := "llama-3.1-70b-versatile"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	return &GroqClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const summaryPrompt = `Summarize the following meeting transcript. Respond with a JSON object of the shape
{"summary": "<concise summary>", "action_items": ["<follow-up 1>", "<follow-up 2>"]}
and nothing else.

Transcript:
%s`

// Summarize sends the transcript to Groq and parses the assistant content
func (g *GroqClient) Summarize(ctx context.Context, transcript string) (*SummaryResult, error) {
	reqBody := ChatRequest{
		Model:       g.model,
		Messages:    []map[string]string{{"role": "user", "content": fmt.Sprintf(summaryPrompt, transcript)}},
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, err
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("empty response from groq")
	}

	return ParseSummaryResponse(cr.Choices[0].Message.Content)
}

// AnalyzeEmotion estimates the emotional tone of a meeting.
// Emotion analysis has no Groq-backed implementation yet, so the mock
// estimator is used regardless of configuration.
func (g *GroqClient) AnalyzeEmotion(ctx context.Context) (*EmotionResult, error) {
	return randomEmotion(), nil
}
