package ai

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

func TestGroqSummarize_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}

		content := `{"summary": "Release planned.", "action_items": ["Tag it"]}`
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	result, err := client.Summarize(context.Background(), "We talked about the release.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != "Release planned." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if len(result.ActionItems) != 1 || result.ActionItems[0] != "Tag it" {
		t.Fatalf("unexpected action items %v", result.ActionItems)
	}
}

func TestGroqSummarize_TranscriptInPrompt(t *testing.T) {
	var gotContent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []map[string]string `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(req.Messages) > 0 {
			gotContent = req.Messages[0]["content"]
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"summary": "S.", "action_items": ["A"]}`}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := client.Summarize(context.Background(), "the unique transcript body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotContent, "the unique transcript body") {
		t.Fatalf("expected transcript in prompt, got %q", gotContent)
	}
}

func TestGroqSummarize_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := client.Summarize(context.Background(), "transcript"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestGroqSummarize_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := client.Summarize(context.Background(), "transcript"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestMockSummarizer(t *testing.T) {
	mock := NewMockSummarizer()

	result, err := mock.Summarize(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary == "" {
		t.Fatal("expected non-empty summary")
	}
	if len(result.ActionItems) != 4 {
		t.Fatalf("expected 4 action items, got %d", len(result.ActionItems))
	}
}

func TestAnalyzeEmotion_SumsToOne(t *testing.T) {
	mock := NewMockSummarizer()

	for i := 0; i < 20; i++ {
		emotion, err := mock.AnalyzeEmotion(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sum := emotion.Joy + emotion.Anger + emotion.Sadness
		// Per-component rounding allows a small drift
		if math.Abs(sum-1) > 0.02 {
			t.Fatalf("expected components to sum to ~1, got %v (%+v)", sum, emotion)
		}
		if emotion.Joy < 0 || emotion.Anger < 0 || emotion.Sadness < 0 {
			t.Fatalf("expected non-negative components, got %+v", emotion)
		}
	}
}
