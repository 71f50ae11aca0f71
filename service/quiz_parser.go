package service

import (
	"encoding/json"
	"strings"
)

// ParseQuizResponse turns raw model output into the stored quiz value.
// Markdown code fences are stripped first, then the text is parsed as
// strict JSON. Malformed output is data, not an error: it comes back
// wrapped as {"raw_text": <cleaned text>}.
func ParseQuizResponse(raw string) any {
	cleaned := stripCodeFences(strings.TrimSpace(raw))

	var quiz any
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return map[string]any{"raw_text": cleaned}
	}
	return quiz
}

// stripCodeFences removes a leading/trailing ```json fence, or failing
// that a bare ``` fence. Text without a leading fence passes through
// untouched.
func stripCodeFences(text string) string {
	switch {
	case strings.HasPrefix(text, "```json"):
		text = strings.TrimPrefix(text, "```json")
	case strings.HasPrefix(text, "```"):
		text = strings.TrimPrefix(text, "```")
	default:
		return text
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
