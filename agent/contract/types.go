package contract

import "sort"

// ToolRequest is a single tool invocation requested by the agent runtime.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult carries a tool's outcome back to the agent runtime.
// Business failures travel in Error as a fixed code (see Code); a non-empty
// Error never aborts the conversation turn.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ParameterType string

const (
	String  ParameterType = "string"
	Integer ParameterType = "integer"
	Number  ParameterType = "number"
	Boolean ParameterType = "boolean"
)

type ParameterInfo struct {
	Type     ParameterType
	Desc     string
	Required bool
}

// ToolInfo describes one callable tool to the agent runtime.
type ToolInfo struct {
	Name   string
	Desc   string
	Params map[string]*ParameterInfo
}

// JSONSchema renders the parameter set as a JSON-schema object, the shape
// function-calling model APIs expect.
func (t ToolInfo) JSONSchema() map[string]any {
	properties := make(map[string]any, len(t.Params))
	required := make([]string, 0, len(t.Params))
	for name, p := range t.Params {
		if p == nil {
			continue
		}
		properties[name] = map[string]any{
			"type":        string(p.Type),
			"description": p.Desc,
		}
		if p.Required {
			required = append(required, name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sort.Strings(required)
		schema["required"] = required
	}
	return schema
}
