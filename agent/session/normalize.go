package session

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern  = regexp.MustCompile(`\*(.*?)\*`)
	codePattern    = regexp.MustCompile("`(.*?)`")
	linkPattern    = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	headingPattern = regexp.MustCompile(`#+ `)
)

// Normalize reduces raw agent output to plain prose for storage. If the
// content is a fenced or bare JSON object carrying a "text" field, that
// field's value is extracted; otherwise the content is used as-is. Common
// lightweight markup (bold, italic, code, links, headings) is stripped.
// The round trip is intentionally one-way: stored text cannot reconstruct
// the original structured payload.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	if extracted, ok := extractTextField(text); ok {
		text = extracted
	}

	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// extractTextField tries to decode a structured value and pull out its
// "text" field. Single-quoted pseudo-JSON (a textual literal of a map) gets
// one repair attempt with quotes swapped.
func extractTextField(text string) (string, bool) {
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		return "", false
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		repaired := strings.ReplaceAll(text, "'", `"`)
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return "", false
		}
	}

	return flattenValue(parsed), true
}

func flattenValue(v any) string {
	switch val := v.(type) {
	case map[string]any:
		if text, ok := val["text"].(string); ok {
			return text
		}
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, flattenValue(item))
		}
		return strings.Join(parts, " ")
	case string:
		return val
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
