package openrouter

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

// authBaseURL is where users are sent to approve a PKCE authorization.
const authBaseURL = "https://openrouter.ai/auth"

// CodeChallengeMethodS256 is the SHA-256 challenge method of RFC 7636.
const CodeChallengeMethodS256 = "S256"

// AuthService implements the OAuth PKCE flow for obtaining an API key on a
// user's behalf. The verifier/challenge helpers are pure string
// transformations; only ExchangeCode touches the network.
type AuthService struct {
	transport *transport.Client
}

// GenerateCodeVerifier returns a cryptographically random PKCE verifier:
// 32 random bytes base64url-encoded without padding (43 characters).
func GenerateCodeVerifier() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", dto.NewError(dto.ErrorTypeInvalidInput, "failed to generate code verifier", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// S256Challenge derives the code challenge for a verifier via SHA-256 and
// base64url encoding without padding.
func S256Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// AuthURLOptions configures authorization URL assembly.
type AuthURLOptions struct {
	// CallbackURL receives the authorization code after user approval.
	CallbackURL string
	// CodeChallenge is the S256 challenge derived from the verifier.
	CodeChallenge string
	// State is an opaque round-trip value; a random UUID is generated
	// when empty.
	State string
}

// AuthURL assembles the authorization URL the user should be sent to. It
// returns the URL and the state value embedded in it.
func (s *AuthService) AuthURL(opts AuthURLOptions) (string, string, error) {
	if opts.CallbackURL == "" {
		return "", "", dto.NewError(dto.ErrorTypeInvalidInput, "callback URL must not be empty", nil)
	}

	state := opts.State
	if state == "" {
		state = uuid.NewString()
	}

	query := url.Values{}
	query.Set("callback_url", opts.CallbackURL)
	query.Set("state", state)
	if opts.CodeChallenge != "" {
		query.Set("code_challenge", opts.CodeChallenge)
		query.Set("code_challenge_method", CodeChallengeMethodS256)
	}

	return fmt.Sprintf("%s?%s", authBaseURL, query.Encode()), state, nil
}

// ExchangeCode trades an authorization code for an API key. The verifier
// must match the challenge embedded in the authorization URL; pass an empty
// verifier when the flow was started without PKCE.
func (s *AuthService) ExchangeCode(ctx context.Context, code, verifier string) (string, error) {
	if code == "" {
		return "", dto.NewError(dto.ErrorTypeInvalidInput, "authorization code must not be empty", nil)
	}

	req := dto.AuthKeyRequest{Code: code}
	if verifier != "" {
		req.CodeVerifier = verifier
		req.CodeChallengeMethod = CodeChallengeMethodS256
	}

	var resp dto.AuthKeyResponse
	if err := s.transport.Do(ctx, "POST", "/auth/keys", req, &resp); err != nil {
		return "", err
	}
	return resp.Key, nil
}
