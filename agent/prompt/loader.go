package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/assistant.txt
	assistantRaw string

	//go:embed template/nlu.txt
	nluRaw string
)

// Assistant returns the trimmed system prompt for the conversational runner.
// The embed is compile-time, so this is safe to call concurrently.
func Assistant() string {
	return strings.TrimSpace(assistantRaw)
}

// NLU returns the trimmed system prompt for the intent classifier.
func NLU() string {
	return strings.TrimSpace(nluRaw)
}
