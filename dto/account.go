// Package dto defines the OpenRouter wire payloads and error types.
package dto

// CreditsResponse is the envelope returned by the credits endpoint.
type CreditsResponse struct {
	Data Credits `json:"data"`
}

// Credits is a point-in-time snapshot of account usage and limits.
type Credits struct {
	Usage      float64        `json:"usage"`
	Limit      *float64       `json:"limit,omitempty"`
	IsFreeTier bool           `json:"is_free_tier"`
	RateLimit  *RateLimitInfo `json:"rate_limit,omitempty"`
}

// RateLimitInfo describes the account-level request rate limit.
type RateLimitInfo struct {
	Requests float64 `json:"requests"`
	Interval string  `json:"interval"`
}

// GenerationResponse is the envelope returned by the generation endpoint.
type GenerationResponse struct {
	Data Generation `json:"data"`
}

// Generation is the token and cost breakdown for a single completed request.
type Generation struct {
	ID                     string   `json:"id"`
	Model                  string   `json:"model,omitempty"`
	ProviderName           string   `json:"provider_name,omitempty"`
	CreatedAt              string   `json:"created_at,omitempty"`
	TokensPrompt           int      `json:"tokens_prompt,omitempty"`
	TokensCompletion       int      `json:"tokens_completion,omitempty"`
	NativeTokensPrompt     int      `json:"native_tokens_prompt,omitempty"`
	NativeTokensCompletion int      `json:"native_tokens_completion,omitempty"`
	TotalCost              float64  `json:"total_cost,omitempty"`
	GenerationTime         int      `json:"generation_time,omitempty"`
	Latency                int      `json:"latency,omitempty"`
	FinishReason           string   `json:"finish_reason,omitempty"`
	Streamed               bool     `json:"streamed,omitempty"`
	Cancelled              bool     `json:"cancelled,omitempty"`
	AppID                  *int     `json:"app_id,omitempty"`
	Origin                 string   `json:"origin,omitempty"`
	UsageBilled            *float64 `json:"usage,omitempty"`
}
