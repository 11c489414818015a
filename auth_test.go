package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS256ChallengeMatchesRFC7636Vector(t *testing.T) {
	// Appendix B of RFC 7636.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	challenge := S256Challenge(verifier)
	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", challenge)
}

func TestGenerateCodeVerifier(t *testing.T) {
	verifier, err := GenerateCodeVerifier()
	require.NoError(t, err)

	assert.Len(t, verifier, 43)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), verifier)

	other, err := GenerateCodeVerifier()
	require.NoError(t, err)
	assert.NotEqual(t, verifier, other)
}

func TestAuthURLAssemblesQuery(t *testing.T) {
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {})

	authURL, state, err := client.Auth.AuthURL(AuthURLOptions{
		CallbackURL:   "https://example.com/callback",
		CodeChallenge: "challenge-value",
		State:         "opaque-state",
	})
	require.NoError(t, err)
	assert.Equal(t, "opaque-state", state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "openrouter.ai", parsed.Host)
	assert.Equal(t, "/auth", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "https://example.com/callback", query.Get("callback_url"))
	assert.Equal(t, "challenge-value", query.Get("code_challenge"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	assert.Equal(t, "opaque-state", query.Get("state"))
}

func TestAuthURLGeneratesStateWhenUnset(t *testing.T) {
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, state, err := client.Auth.AuthURL(AuthURLOptions{CallbackURL: "https://example.com/cb"})
	require.NoError(t, err)

	_, err = uuid.Parse(state)
	assert.NoError(t, err, "generated state should be a UUID")
}

func TestAuthURLRequiresCallback(t *testing.T) {
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, _, err := client.Auth.AuthURL(AuthURLOptions{})
	requireInvalidInput(t, err)
}

func TestExchangeCode(t *testing.T) {
	var gotBody map[string]string
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/keys", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"key":"sk-or-issued"}`))
	})

	key, err := client.Auth.ExchangeCode(context.Background(), "auth-code", "the-verifier")
	require.NoError(t, err)

	assert.Equal(t, "sk-or-issued", key)
	assert.Equal(t, "auth-code", gotBody["code"])
	assert.Equal(t, "the-verifier", gotBody["code_verifier"])
	assert.Equal(t, "S256", gotBody["code_challenge_method"])
}

func TestExchangeCodeRequiresCode(t *testing.T) {
	client, hits := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Auth.ExchangeCode(context.Background(), "", "verifier")
	requireInvalidInput(t, err)
	assert.EqualValues(t, 0, hits.Load())
}
