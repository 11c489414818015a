// Package dto defines the OpenRouter wire payloads and error types.
package dto

import "time"

// APIKey is a read-only projection of a provisioned API key.
type APIKey struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreditLimit *float64   `json:"credit_limit,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Enabled     bool       `json:"enabled"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Usage       float64    `json:"usage,omitempty"`
}

// APIKeyList is the envelope returned when listing keys.
type APIKeyList struct {
	Data []APIKey `json:"data"`
}

// APIKeyEnvelope wraps a single key response.
type APIKeyEnvelope struct {
	Data APIKey `json:"data"`
}

// ProvisionedKey is returned by key creation and carries the secret exactly once.
type ProvisionedKey struct {
	Data APIKey `json:"data"`
	Key  string `json:"key"`
}

// APIKeyCreateRequest provisions a new key.
type APIKeyCreateRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	CreditLimit *float64   `json:"credit_limit,omitempty" validate:"omitempty,gte=0"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// APIKeyUpdateRequest modifies an existing key. Nil fields are left unchanged.
type APIKeyUpdateRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreditLimit *float64   `json:"credit_limit,omitempty" validate:"omitempty,gte=0"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Enabled     *bool      `json:"enabled,omitempty"`
}

// AuthKeyRequest exchanges a PKCE authorization code for an API key.
type AuthKeyRequest struct {
	Code                string `json:"code" validate:"required"`
	CodeVerifier        string `json:"code_verifier,omitempty"`
	CodeChallengeMethod string `json:"code_challenge_method,omitempty"`
}

// AuthKeyResponse carries the API key issued for an authorization code.
type AuthKeyResponse struct {
	Key string `json:"key"`
}
