package nlu

import (
	"errors"
	"testing"
)

func TestParseAnalysis(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis(`{"intent": "place_order", "sentiment": "positive", "emotion": "excited", "urgency": "high"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "place_order" || got.Sentiment != "positive" || got.Urgency != "high" {
		t.Fatalf("unexpected analysis: %+v", got)
	}
}

func TestParseAnalysisStripsFences(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis("```json\n{\"intent\": \"pricing\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "pricing" {
		t.Fatalf("unexpected intent: %q", got.Intent)
	}
}

func TestParseAnalysisDefaults(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis(`{"emotion": "calm"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != "unknown" {
		t.Fatalf("empty intent must default to unknown, got %q", got.Intent)
	}
	if got.Sentiment != "neutral" || got.Urgency != "low" {
		t.Fatalf("missing labels must default: %+v", got)
	}
}

func TestParseAnalysisRejectsNonJSON(t *testing.T) {
	t.Parallel()

	_, err := parseAnalysis("I think the intent is pricing")
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}
