// Package dto defines the OpenRouter wire payloads and error types.
package dto

// ModelList is the catalog envelope returned by the models endpoint.
type ModelList struct {
	Data []Model `json:"data"`
}

// Model describes one entry in the OpenRouter model catalog.
type Model struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name,omitempty"`
	Description         string       `json:"description,omitempty"`
	Created             int64        `json:"created,omitempty"`
	ContextLength       int          `json:"context_length,omitempty"`
	Architecture        Architecture `json:"architecture,omitempty"`
	Pricing             Pricing      `json:"pricing,omitempty"`
	TopProvider         *TopProvider `json:"top_provider,omitempty"`
	SupportedParameters []string     `json:"supported_parameters,omitempty"`
}

// Architecture describes a model's modality and tokenizer.
type Architecture struct {
	Modality         string   `json:"modality,omitempty"`
	Tokenizer        string   `json:"tokenizer,omitempty"`
	InstructType     string   `json:"instruct_type,omitempty"`
	InputModalities  []string `json:"input_modalities,omitempty"`
	OutputModalities []string `json:"output_modalities,omitempty"`
}

// Pricing carries per-token prices as decimal strings, exactly as the
// remote sends them.
type Pricing struct {
	Prompt     string `json:"prompt,omitempty"`
	Completion string `json:"completion,omitempty"`
	Request    string `json:"request,omitempty"`
	Image      string `json:"image,omitempty"`
	WebSearch  string `json:"web_search,omitempty"`
}

// TopProvider summarizes the primary provider serving a model.
type TopProvider struct {
	ContextLength       *int `json:"context_length,omitempty"`
	MaxCompletionTokens *int `json:"max_completion_tokens,omitempty"`
	IsModerated         bool `json:"is_moderated,omitempty"`
}
