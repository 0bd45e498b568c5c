// Package nlu classifies user messages into intent, sentiment, emotion, and
// urgency. The classification only labels the conversation; tool selection
// belongs to the agent runtime.
package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	promptx "github.com/tanpawarit/Chative-Sales-Assistant/agent/prompt"
)

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
)

type Analysis struct {
	Intent    string `json:"intent"`
	Sentiment string `json:"sentiment"`
	Emotion   string `json:"emotion"`
	Urgency   string `json:"urgency"`
}

type Classifier struct {
	client *openaisdk.Client
	model  string
}

func NewClassifier(client *openaisdk.Client, model string) (*Classifier, error) {
	if client == nil {
		return nil, errors.New("openai client is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("model name is required")
	}
	return &Classifier{client: client, model: model}, nil
}

func (c *Classifier) Classify(ctx context.Context, message string) (Analysis, error) {
	if strings.TrimSpace(message) == "" {
		return Analysis{}, fmt.Errorf("%w: message is empty", ErrSchemaViolation)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(promptx.NLU()),
			openaisdk.UserMessage(message),
		},
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return Analysis{}, fmt.Errorf("%w: empty completion", ErrModelInvoke)
	}

	return parseAnalysis(resp.Choices[0].Message.Content)
}

func parseAnalysis(raw string) (Analysis, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var out Analysis
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	out.Intent = strings.TrimSpace(out.Intent)
	if out.Intent == "" {
		out.Intent = "unknown"
	}
	if out.Sentiment == "" {
		out.Sentiment = "neutral"
	}
	if out.Urgency == "" {
		out.Urgency = "low"
	}
	return out, nil
}
