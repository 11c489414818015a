// Package transport provides the unified request execution layer for the
// OpenRouter API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/xyOz-dev/openrouter-go/dto"
)

// DefaultBaseURL is the OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const defaultTimeout = 120 * time.Second

// Options configures a transport client.
type Options struct {
	BaseURL    string
	APIKey     string
	Headers    map[string]string // identification headers, e.g. HTTP-Referer and X-Title
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Logger     *slog.Logger
}

// Client executes OpenRouter requests using a unified flow. It holds no
// mutable state between calls, so concurrent use is safe.
type Client struct {
	baseURL    string
	apiKey     string
	headers    map[string]string
	http       *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewClient creates a transport client with the given options.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 500 * time.Millisecond
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     opts.APIKey,
		headers:    opts.Headers,
		http:       httpClient,
		maxRetries: opts.MaxRetries,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// Close releases idle connections in the underlying pool.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Do executes a request against the given endpoint path and decodes the JSON
// response into out. A nil payload sends no body; a nil out discards the
// response body. Transient failures are retried with exponential backoff up
// to the configured attempt ceiling.
func (c *Client) Do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return dto.NewError(dto.ErrorTypeSerialization, "failed to encode request body", err)
		}
	}

	data, err := c.execute(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return dto.NewError(dto.ErrorTypeSerialization, "response body does not match the expected shape", err)
	}
	return nil
}

// Stream executes a streaming POST request and returns a decoder over the
// response body. The caller owns the decoder and must close it. Streams are
// never retried automatically; re-invoking Stream issues a brand-new call.
func (c *Client) Stream(ctx context.Context, path string, payload interface{}) (*SSEDecoder, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, dto.NewError(dto.ErrorTypeSerialization, "failed to encode request body", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, dto.NewError(dto.ErrorTypeInvalidInput, "failed to build request", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	c.logger.Debug("dispatching stream request", "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, errorFromResponse(resp, data)
	}

	return NewSSEDecoder(resp.Body), nil
}

func (c *Client) execute(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	operation := func() ([]byte, error) {
		req, err := c.newRequest(ctx, method, path, body)
		if err != nil {
			return nil, backoff.Permanent(dto.NewError(dto.ErrorTypeInvalidInput, "failed to build request", err))
		}

		c.logger.Debug("dispatching request", "method", method, "path", path)
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, classifyTransportError(err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, dto.NewError(dto.ErrorTypeNetwork, "failed to read response body", err)
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return data, nil
		}

		apiErr := errorFromResponse(resp, data)
		if !retryableStatus(resp.StatusCode) {
			return nil, backoff.Permanent(apiErr)
		}
		c.logger.Debug("retryable response", "status", resp.StatusCode, "path", path)
		if apiErr.RetryAfter > 0 {
			return nil, &throttledError{apiErr: apiErr}
		}
		return nil, apiErr
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryDelay

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.maxRetries)+1),
	)
	if err != nil {
		var throttled *throttledError
		if errors.As(err, &throttled) {
			return nil, throttled.apiErr
		}
		return nil, err
	}
	return data, nil
}

// throttledError carries a rate-limit error through the retry loop so the
// backoff policy can honor the server's Retry-After hint. The hint stays
// out of the surfaced error: execute unwraps back to the typed error before
// returning it to the caller.
type throttledError struct {
	apiErr *dto.Error
}

func (e *throttledError) Error() string {
	return e.apiErr.Error()
}

func (e *throttledError) Unwrap() []error {
	return []error{e.apiErr, &backoff.RetryAfterError{Duration: e.apiErr.RetryAfter}}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// classifyTransportError maps pre-response failures to typed errors.
func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return dto.NewError(dto.ErrorTypeTimeout, "request timed out", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return dto.NewError(dto.ErrorTypeTimeout, "request timed out", err)
	}
	return dto.NewError(dto.ErrorTypeNetwork, "transport failure", err)
}

// errorFromResponse builds a typed error for a non-2xx response. The error
// kind is chosen by status code; the structured envelope, when parseable,
// supplies the message and remote code.
func errorFromResponse(resp *http.Response, body []byte) *dto.Error {
	apiErr := &dto.Error{
		Type:       errorTypeForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
	}

	var envelope dto.ErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		if envelope.Error.Code != 0 {
			apiErr.Code = strconv.Itoa(envelope.Error.Code)
		}
		if provider, ok := envelope.Error.Metadata["provider_name"].(string); ok {
			apiErr.Provider = provider
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.RetryAfter = parseRetryAfter(resp)
	}

	return apiErr
}

func errorTypeForStatus(status int) dto.ErrorType {
	switch {
	case status == http.StatusBadRequest:
		return dto.ErrorTypeValidation
	case status == http.StatusUnauthorized:
		return dto.ErrorTypeAuthentication
	case status == http.StatusForbidden:
		return dto.ErrorTypeAuthorization
	case status == http.StatusRequestTimeout:
		return dto.ErrorTypeTimeout
	case status == http.StatusTooManyRequests:
		return dto.ErrorTypeRateLimit
	case status >= 500:
		return dto.ErrorTypeProvider
	default:
		return dto.ErrorTypeAPI
	}
}

func retryableStatus(status int) bool {
	return status == http.StatusRequestTimeout ||
		status == http.StatusTooManyRequests ||
		status >= 500
}

// parseRetryAfter extracts the Retry-After header as a duration. Integer
// seconds and HTTP dates are supported; 0 is returned otherwise.
func parseRetryAfter(resp *http.Response) time.Duration {
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
