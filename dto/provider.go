// Package dto defines the OpenRouter wire payloads and error types.
package dto

import "encoding/json"

// ProviderPreferences controls how OpenRouter routes a request across
// upstream providers. All fields are optional; unset fields leave the
// router's defaults in place.
type ProviderPreferences struct {
	Order             []string `json:"order,omitempty"`
	AllowFallbacks    *bool    `json:"allow_fallbacks,omitempty"`
	RequireParameters *bool    `json:"require_parameters,omitempty"`
	DataCollection    string   `json:"data_collection,omitempty"` // allow or deny
	Only              []string `json:"only,omitempty"`
	Ignore            []string `json:"ignore,omitempty"`
	Quantizations     []string `json:"quantizations,omitempty"`
	Sort              string   `json:"sort,omitempty"` // price, throughput, latency
}

// Reasoning configures reasoning token generation for models that support it.
type Reasoning struct {
	Effort    string `json:"effort,omitempty"` // low, medium, high
	MaxTokens *int   `json:"max_tokens,omitempty"`
	Exclude   *bool  `json:"exclude,omitempty"`
}

// UsageConfig toggles usage accounting on the response.
type UsageConfig struct {
	Include bool `json:"include"`
}

// Plugin activates an OpenRouter plugin such as web search.
type Plugin struct {
	ID           string `json:"id"`
	MaxResults   *int   `json:"max_results,omitempty"`
	SearchPrompt string `json:"search_prompt,omitempty"`
}

// ResponseFormat requests structured model output.
type ResponseFormat struct {
	Type       string          `json:"type"` // json_object or json_schema
	JSONSchema *JSONSchemaSpec `json:"json_schema,omitempty"`
}

// JSONSchemaSpec is the schema payload for json_schema response formats.
// Schema is an opaque JSON-schema document passed through to the remote API.
type JSONSchemaSpec struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict,omitempty"`
	Schema json.RawMessage `json:"schema"`
}
