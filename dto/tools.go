// Package dto defines the OpenRouter wire payloads and error types.
package dto

import "encoding/json"

// Tool describes a function the model may call.
type Tool struct {
	Type     string              `json:"type"`
	Function FunctionDescription `json:"function"`
}

// FunctionDescription is the function signature exposed to the model.
// Parameters is an opaque JSON-schema document passed through unchanged.
type FunctionDescription struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Strict      bool            `json:"strict,omitempty"`
}

// NewFunctionTool creates a function tool definition.
func NewFunctionTool(name, description string, parameters json.RawMessage) Tool {
	return Tool{
		Type: "function",
		Function: FunctionDescription{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// ToolCall is a model-issued invocation of a tool.
type ToolCall struct {
	ID       string       `json:"id,omitempty"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the invoked function name and its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// Tool choice modes.
const (
	ToolChoiceAuto     = "auto"
	ToolChoiceNone     = "none"
	ToolChoiceRequired = "required"
)

// ToolChoiceFunction builds a tool_choice value forcing a specific function.
func ToolChoiceFunction(name string) interface{} {
	return map[string]interface{}{
		"type": "function",
		"function": map[string]interface{}{
			"name": name,
		},
	}
}
