// Package runner drives one conversational turn: it replays session history
// to the model, executes the tool calls the model issues, and records the
// exchange back into the session log.
package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
	nlux "github.com/tanpawarit/Chative-Sales-Assistant/agent/nlu"
	promptx "github.com/tanpawarit/Chative-Sales-Assistant/agent/prompt"
	sessionx "github.com/tanpawarit/Chative-Sales-Assistant/agent/session"
	toolx "github.com/tanpawarit/Chative-Sales-Assistant/agent/tool"
)

const (
	defaultMaxToolRounds = 4
	defaultHistoryLimit  = 20
)

// History is the slice of the session store the runner needs.
type History interface {
	AppendTurns(ctx context.Context, sessionID string, turns []sessionx.Turn)
	LoadTurns(ctx context.Context, sessionID string, limit int) []sessionx.Turn
}

// Classifier labels the user message with an intent for the session log.
type Classifier interface {
	Classify(ctx context.Context, message string) (nlux.Analysis, error)
}

type Runner struct {
	client        *openaisdk.Client
	model         string
	infos         []contractx.ToolInfo
	exec          toolx.Executor
	history       History
	classifier    Classifier
	maxToolRounds int
	historyLimit  int
}

func New(client *openaisdk.Client, model string, toolset toolx.Toolset, history History, classifier Classifier) (*Runner, error) {
	if client == nil {
		return nil, errors.New("openai client is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("model name is required")
	}
	if history == nil {
		return nil, errors.New("history store is required")
	}
	return &Runner{
		client:        client,
		model:         model,
		infos:         toolx.Infos(),
		exec:          toolset.NewExecutor(),
		history:       history,
		classifier:    classifier,
		maxToolRounds: defaultMaxToolRounds,
		historyLimit:  defaultHistoryLimit,
	}, nil
}

// Respond runs one turn for the session and returns the assistant reply.
// The turn is appended to the session log before returning; logging failures
// never fail the turn.
func (r *Runner) Respond(ctx context.Context, sessionID, userMessage string) (string, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return "", errors.New("message is empty")
	}

	messages := []openaisdk.ChatCompletionMessageParamUnion{
		openaisdk.SystemMessage(promptx.Assistant()),
	}
	for _, turn := range r.history.LoadTurns(ctx, sessionID, r.historyLimit) {
		switch turn.Role {
		case sessionx.RoleAssistant:
			messages = append(messages, openaisdk.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openaisdk.UserMessage(userMessage))

	tools := toolParams(r.infos)

	var reply string
	for round := 0; ; round++ {
		resp, err := r.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
			Model:    openaisdk.ChatModel(r.model),
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", nlux.ErrModelInvoke, err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("%w: empty completion", nlux.ErrModelInvoke)
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 || round >= r.maxToolRounds {
			reply = strings.TrimSpace(msg.Content)
			break
		}

		messages = append(messages, msg.ToParam())
		for _, call := range msg.ToolCalls {
			messages = append(messages, openaisdk.ToolMessage(r.runTool(ctx, call.Function.Name, call.Function.Arguments), call.ID))
		}
	}

	if reply == "" {
		reply = "I'm sorry, I couldn't come up with an answer. Could you rephrase?"
	}

	r.record(ctx, sessionID, userMessage, reply)
	return reply, nil
}

// toolParams renders the tool catalog in the function-declaration shape the
// chat completions API expects.
func toolParams(infos []contractx.ToolInfo) []openaisdk.ChatCompletionToolParam {
	tools := make([]openaisdk.ChatCompletionToolParam, 0, len(infos))
	for _, info := range infos {
		tools = append(tools, openaisdk.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        info.Name,
				Description: openaisdk.String(info.Desc),
				Parameters:  shared.FunctionParameters(info.JSONSchema()),
			},
		})
	}
	return tools
}

// runTool executes one model-issued call and renders the outcome as the JSON
// payload fed back to the model. Argument and execution failures become
// payloads too, so the model can recover instead of the turn aborting.
func (r *Runner) runTool(ctx context.Context, name, rawArgs string) string {
	args := map[string]any{}
	if trimmed := strings.TrimSpace(rawArgs); trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
			return r.renderResult(contractx.ToolResult{Tool: name, Error: fmt.Sprintf("invalid arguments: %v", err)})
		}
	}

	result, err := r.exec(ctx, name, args)
	if err != nil {
		log.Error().Err(err).Str("tool", name).Msg("tool execution failed")
		return r.renderResult(contractx.ToolResult{Tool: name, Error: contractx.CodeSystemError})
	}
	return r.renderResult(result)
}

func (r *Runner) renderResult(result contractx.ToolResult) string {
	payload, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Str("tool", result.Tool).Msg("marshal tool result failed")
		return fmt.Sprintf(`{"tool":%q,"error":%q}`, result.Tool, contractx.CodeSystemError)
	}
	return string(payload)
}

func (r *Runner) record(ctx context.Context, sessionID, userMessage, reply string) {
	intent := "unknown"
	if r.classifier != nil {
		analysis, err := r.classifier.Classify(ctx, userMessage)
		if err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("intent classification failed")
		} else {
			intent = analysis.Intent
		}
	}
	r.history.AppendTurns(ctx, sessionID, []sessionx.Turn{
		{Role: sessionx.RoleUser, Content: userMessage, Intent: intent},
		{Role: sessionx.RoleAssistant, Content: reply, Intent: intent},
	})
}
