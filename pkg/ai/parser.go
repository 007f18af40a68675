package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSummaryResponse parses the JSON content returned by the LLM into a
// SummaryResult, tolerating markdown code fences around the payload.
func ParseSummaryResponse(content string) (*SummaryResult, error) {
	content = extractJSON(content)

	var result SummaryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if result.Summary == "" {
		return nil, fmt.Errorf("missing summary in response")
	}
	if len(result.ActionItems) == 0 {
		return nil, fmt.Errorf("missing action_items in response")
	}

	return &result, nil
}

// extractJSON strips markdown code fences the model might wrap around the JSON
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		return strings.TrimSpace(s)
	}

	// Fall back to the outermost braces
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}

	return s
}
