// Package dto defines the OpenRouter wire payloads and error types.
package dto

// Message roles accepted by the chat completions endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single message in a chat conversation.
// Content is either a plain string or an ordered []ContentPart.
type Message struct {
	Role       string      `json:"role" validate:"required,oneof=system user assistant tool"`
	Content    interface{} `json:"content,omitempty" validate:"required_without=ToolCalls"`
	Name       string      `json:"name,omitempty"`
	ToolCalls  []ToolCall  `json:"tool_calls,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
}

// ChatRequest represents a chat completion request following the OpenRouter schema.
// Sampling parameters are pointers so that unset fields are omitted from the
// serialized body rather than sent as zeroes.
type ChatRequest struct {
	Model            string               `json:"model" validate:"required"`
	Messages         []Message            `json:"messages" validate:"required,min=1,dive"`
	Temperature      *float64             `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	TopP             *float64             `json:"top_p,omitempty" validate:"omitempty,gt=0,lte=1"`
	TopK             *int                 `json:"top_k,omitempty" validate:"omitempty,gte=1"`
	MaxTokens        *int                 `json:"max_tokens,omitempty" validate:"omitempty,gte=1"`
	FrequencyPenalty *float64             `json:"frequency_penalty,omitempty" validate:"omitempty,gte=-2,lte=2"`
	PresencePenalty  *float64             `json:"presence_penalty,omitempty" validate:"omitempty,gte=-2,lte=2"`
	Seed             *int                 `json:"seed,omitempty"`
	Stop             []string             `json:"stop,omitempty"`
	Stream           bool                 `json:"stream,omitempty"`
	StreamOptions    *StreamOptions       `json:"stream_options,omitempty"`
	Tools            []Tool               `json:"tools,omitempty"`
	ToolChoice       interface{}          `json:"tool_choice,omitempty"`
	ResponseFormat   *ResponseFormat      `json:"response_format,omitempty"`
	Provider         *ProviderPreferences `json:"provider,omitempty"`
	Reasoning        *Reasoning           `json:"reasoning,omitempty"`
	Usage            *UsageConfig         `json:"usage,omitempty"`
	Plugins          []Plugin             `json:"plugins,omitempty"`
	Models           []string             `json:"models,omitempty"`
	Transforms       []string             `json:"transforms,omitempty"`
}

// StreamOptions controls streaming behavior.
type StreamOptions struct {
	// IncludeUsage requests token usage on the final chunk of a stream.
	IncludeUsage bool `json:"include_usage,omitempty"`
}
