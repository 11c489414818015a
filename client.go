// Package openrouter is a Go client SDK for the OpenRouter API. It provides
// chat completions (streaming and non-streaming, tool calling, structured
// outputs, provider routing, web search, reasoning tokens), model listing,
// credit queries, API key management, generation metadata, and an OAuth PKCE
// helper.
package openrouter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/xyOz-dev/openrouter-go/config"
	"github.com/xyOz-dev/openrouter-go/transport"
)

// Client is the top-level handle for the OpenRouter API. All services share
// one dispatch client and one connection pool; concurrent calls are safe.
type Client struct {
	cfg       *config.Config
	transport *transport.Client

	Chat        *ChatService
	Models      *ModelsService
	Credits     *CreditsService
	Keys        *KeysService
	Generations *GenerationsService
	Auth        *AuthService
}

type clientOptions struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client during construction.
type Option func(*clientOptions)

// WithAPIKey sets the API key used for the Authorization header.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) { o.cfg.APIKey = key }
}

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.cfg.BaseURL = baseURL }
}

// WithTimeout bounds each request, including body read.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.cfg.Timeout = timeout }
}

// WithMaxRetries sets the retry ceiling for transient failures.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) { o.cfg.MaxRetries = retries }
}

// WithRetryDelay sets the initial backoff interval between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) { o.cfg.RetryDelay = delay }
}

// WithReferer sets the HTTP-Referer identification header.
func WithReferer(referer string) Option {
	return func(o *clientOptions) { o.cfg.Referer = referer }
}

// WithTitle sets the X-Title identification header.
func WithTitle(title string) Option {
	return func(o *clientOptions) { o.cfg.Title = title }
}

// WithHTTPClient supplies a custom *http.Client. The configured timeout is
// then the caller's responsibility.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = client }
}

// WithLogger attaches a structured logger for dispatch and retry debugging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// NewClient creates a client. Configuration is read from the environment
// first (OPENROUTER_* variables), then overridden by options.
func NewClient(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	options := &clientOptions{cfg: cfg}
	for _, opt := range opts {
		opt(options)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		cfg: cfg,
		transport: transport.NewClient(transport.Options{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			Headers:    cfg.Headers(),
			HTTPClient: options.httpClient,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
			Logger:     options.logger,
		}),
	}

	client.Chat = &ChatService{transport: client.transport}
	client.Models = &ModelsService{transport: client.transport}
	client.Credits = &CreditsService{transport: client.transport}
	client.Keys = &KeysService{transport: client.transport}
	client.Generations = &GenerationsService{transport: client.transport}
	client.Auth = &AuthService{transport: client.transport}

	return client, nil
}

// Close releases the underlying connection pool. The client must not be
// used afterwards.
func (c *Client) Close() {
	c.transport.Close()
}
