package openrouter

import (
	"context"
	"fmt"

	"github.com/xyOz-dev/openrouter-go/dto"
)

// ChatRequestBuilder accumulates chat completion parameters through chained
// calls and freezes them into a request value. Each setter validates its own
// argument eagerly; the first violation is sticky and surfaced by Build and
// the terminal operations. A builder is single-use and must not be shared
// across concurrent chains.
type ChatRequestBuilder struct {
	client *Client
	req    dto.ChatRequest
	err    error
}

// NewChatRequest starts a fluent chat completion request bound to the client.
func (c *Client) NewChatRequest() *ChatRequestBuilder {
	return &ChatRequestBuilder{client: c}
}

func (b *ChatRequestBuilder) fail(format string, args ...interface{}) *ChatRequestBuilder {
	if b.err == nil {
		b.err = dto.NewError(dto.ErrorTypeInvalidInput, fmt.Sprintf(format, args...), nil)
	}
	return b
}

// WithModel sets the model identifier. Last write wins.
func (b *ChatRequestBuilder) WithModel(model string) *ChatRequestBuilder {
	if model == "" {
		return b.fail("model must not be empty")
	}
	b.req.Model = model
	return b
}

// WithFallbackModels sets the ordered fallback model list tried when the
// primary model is unavailable.
func (b *ChatRequestBuilder) WithFallbackModels(models ...string) *ChatRequestBuilder {
	b.req.Models = models
	return b
}

// AddMessage appends a message in call order.
func (b *ChatRequestBuilder) AddMessage(msg dto.Message) *ChatRequestBuilder {
	if msg.Role == "" {
		return b.fail("message role must be set")
	}
	if msg.Content == nil && len(msg.ToolCalls) == 0 {
		return b.fail("message content or tool calls must be present")
	}
	b.req.Messages = append(b.req.Messages, msg)
	return b
}

// AddSystemMessage appends a system message.
func (b *ChatRequestBuilder) AddSystemMessage(content string) *ChatRequestBuilder {
	if content == "" {
		return b.fail("system message content must not be empty")
	}
	return b.AddMessage(dto.Message{Role: dto.RoleSystem, Content: content})
}

// AddUserMessage appends a user message with plain text content.
func (b *ChatRequestBuilder) AddUserMessage(content string) *ChatRequestBuilder {
	if content == "" {
		return b.fail("user message content must not be empty")
	}
	return b.AddMessage(dto.Message{Role: dto.RoleUser, Content: content})
}

// AddUserMessageParts appends a user message with multimodal content parts.
func (b *ChatRequestBuilder) AddUserMessageParts(parts ...dto.ContentPart) *ChatRequestBuilder {
	if len(parts) == 0 {
		return b.fail("user message must carry at least one content part")
	}
	return b.AddMessage(dto.Message{Role: dto.RoleUser, Content: parts})
}

// AddAssistantMessage appends an assistant message.
func (b *ChatRequestBuilder) AddAssistantMessage(content string) *ChatRequestBuilder {
	if content == "" {
		return b.fail("assistant message content must not be empty")
	}
	return b.AddMessage(dto.Message{Role: dto.RoleAssistant, Content: content})
}

// AddToolMessage appends a tool result message referencing a prior tool call.
func (b *ChatRequestBuilder) AddToolMessage(toolCallID, content string) *ChatRequestBuilder {
	if toolCallID == "" {
		return b.fail("tool message requires a tool call id")
	}
	return b.AddMessage(dto.Message{Role: dto.RoleTool, Content: content, ToolCallID: toolCallID})
}

// WithTemperature sets the sampling temperature. Valid range is [0, 2].
func (b *ChatRequestBuilder) WithTemperature(temperature float64) *ChatRequestBuilder {
	if temperature < 0 || temperature > 2 {
		return b.fail("temperature must be within [0, 2], got %v", temperature)
	}
	b.req.Temperature = &temperature
	return b
}

// WithTopP sets nucleus sampling. Valid range is (0, 1].
func (b *ChatRequestBuilder) WithTopP(topP float64) *ChatRequestBuilder {
	if topP <= 0 || topP > 1 {
		return b.fail("top_p must be within (0, 1], got %v", topP)
	}
	b.req.TopP = &topP
	return b
}

// WithTopK limits sampling to the top K tokens. Must be at least 1.
func (b *ChatRequestBuilder) WithTopK(topK int) *ChatRequestBuilder {
	if topK < 1 {
		return b.fail("top_k must be at least 1, got %d", topK)
	}
	b.req.TopK = &topK
	return b
}

// WithMaxTokens caps the completion length. Must be at least 1.
func (b *ChatRequestBuilder) WithMaxTokens(maxTokens int) *ChatRequestBuilder {
	if maxTokens < 1 {
		return b.fail("max_tokens must be at least 1, got %d", maxTokens)
	}
	b.req.MaxTokens = &maxTokens
	return b
}

// WithFrequencyPenalty sets the frequency penalty. Valid range is [-2, 2].
func (b *ChatRequestBuilder) WithFrequencyPenalty(penalty float64) *ChatRequestBuilder {
	if penalty < -2 || penalty > 2 {
		return b.fail("frequency_penalty must be within [-2, 2], got %v", penalty)
	}
	b.req.FrequencyPenalty = &penalty
	return b
}

// WithPresencePenalty sets the presence penalty. Valid range is [-2, 2].
func (b *ChatRequestBuilder) WithPresencePenalty(penalty float64) *ChatRequestBuilder {
	if penalty < -2 || penalty > 2 {
		return b.fail("presence_penalty must be within [-2, 2], got %v", penalty)
	}
	b.req.PresencePenalty = &penalty
	return b
}

// WithSeed requests deterministic sampling where the provider supports it.
func (b *ChatRequestBuilder) WithSeed(seed int) *ChatRequestBuilder {
	b.req.Seed = &seed
	return b
}

// WithStop sets up to four stop sequences.
func (b *ChatRequestBuilder) WithStop(sequences ...string) *ChatRequestBuilder {
	if len(sequences) == 0 || len(sequences) > 4 {
		return b.fail("between 1 and 4 stop sequences are allowed, got %d", len(sequences))
	}
	b.req.Stop = sequences
	return b
}

// WithTools attaches tool definitions the model may call.
func (b *ChatRequestBuilder) WithTools(tools ...dto.Tool) *ChatRequestBuilder {
	for _, tool := range tools {
		if tool.Function.Name == "" {
			return b.fail("tool function name must not be empty")
		}
	}
	b.req.Tools = tools
	return b
}

// WithToolChoice sets the tool choice mode ("auto", "none", "required") or a
// dto.ToolChoiceFunction value forcing a specific function.
func (b *ChatRequestBuilder) WithToolChoice(choice interface{}) *ChatRequestBuilder {
	b.req.ToolChoice = choice
	return b
}

// WithProviderPreferences controls provider routing for this request.
func (b *ChatRequestBuilder) WithProviderPreferences(prefs dto.ProviderPreferences) *ChatRequestBuilder {
	b.req.Provider = &prefs
	return b
}

// WithReasoning configures reasoning token generation.
func (b *ChatRequestBuilder) WithReasoning(reasoning dto.Reasoning) *ChatRequestBuilder {
	if reasoning.MaxTokens != nil && *reasoning.MaxTokens < 1 {
		return b.fail("reasoning max_tokens must be at least 1, got %d", *reasoning.MaxTokens)
	}
	b.req.Reasoning = &reasoning
	return b
}

// WithUsageAccounting requests cost and token accounting on the response.
func (b *ChatRequestBuilder) WithUsageAccounting() *ChatRequestBuilder {
	b.req.Usage = &dto.UsageConfig{Include: true}
	return b
}

// WithWebSearch activates the web search plugin. maxResults of 0 keeps the
// router default.
func (b *ChatRequestBuilder) WithWebSearch(maxResults int) *ChatRequestBuilder {
	if maxResults < 0 {
		return b.fail("web search max results must not be negative, got %d", maxResults)
	}
	plugin := dto.Plugin{ID: "web"}
	if maxResults > 0 {
		plugin.MaxResults = &maxResults
	}
	b.req.Plugins = append(b.req.Plugins, plugin)
	return b
}

// WithJSONMode requests a syntactically valid JSON object response.
func (b *ChatRequestBuilder) WithJSONMode() *ChatRequestBuilder {
	b.req.ResponseFormat = &dto.ResponseFormat{Type: "json_object"}
	return b
}

// WithJSONSchema requests structured output conforming to a caller-supplied
// JSON schema document.
func (b *ChatRequestBuilder) WithJSONSchema(name string, schema []byte) *ChatRequestBuilder {
	if name == "" {
		return b.fail("schema name must not be empty")
	}
	if len(schema) == 0 {
		return b.fail("schema document must not be empty")
	}
	b.req.ResponseFormat = &dto.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &dto.JSONSchemaSpec{
			Name:   name,
			Strict: true,
			Schema: schema,
		},
	}
	return b
}

// WithStructuredOutput requests structured output matching the shape of
// target, whose JSON schema is synthesized by reflection over its exported
// fields.
func (b *ChatRequestBuilder) WithStructuredOutput(name string, target interface{}) *ChatRequestBuilder {
	if target == nil {
		return b.fail("structured output target must not be nil")
	}
	schema, err := GenerateSchema(target)
	if err != nil {
		if b.err == nil {
			b.err = dto.NewError(dto.ErrorTypeInvalidInput, "failed to generate schema", err)
		}
		return b
	}
	return b.WithJSONSchema(name, schema)
}

// WithStream marks the request for streaming delivery. ExecuteStream sets
// this implicitly.
func (b *ChatRequestBuilder) WithStream() *ChatRequestBuilder {
	b.req.Stream = true
	b.req.StreamOptions = &dto.StreamOptions{IncludeUsage: true}
	return b
}

// WithTransforms sets prompt transforms such as "middle-out" compression.
func (b *ChatRequestBuilder) WithTransforms(transforms ...string) *ChatRequestBuilder {
	b.req.Transforms = transforms
	return b
}

// Build assembles the accumulated state into an immutable request value.
// Cross-field validation happens in the chat service immediately before
// dispatch, so requests constructed directly are checked identically.
func (b *ChatRequestBuilder) Build() (*dto.ChatRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	req := b.req
	return &req, nil
}

// Execute builds the request and performs a non-streaming completion.
func (b *ChatRequestBuilder) Execute(ctx context.Context) (*dto.ChatResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return b.client.Chat.Create(ctx, req)
}

// ExecuteStream builds the request and opens a streaming completion.
func (b *ChatRequestBuilder) ExecuteStream(ctx context.Context) (*ChatStream, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return b.client.Chat.Stream(ctx, req)
}
