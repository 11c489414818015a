package openrouter

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

const chatCompletionsPath = "/chat/completions"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ChatService issues chat completion requests.
type ChatService struct {
	transport *transport.Client
}

// validateRequest is the single validation point before dispatch. Requests
// built fluently and requests constructed directly pass through the same
// checks here.
func validateRequest(req *dto.ChatRequest) error {
	if req == nil {
		return dto.NewError(dto.ErrorTypeInvalidInput, "chat request is nil", nil)
	}
	if err := validate.Struct(req); err != nil {
		return dto.NewError(dto.ErrorTypeInvalidInput, "invalid chat request", err)
	}
	return nil
}

// Create performs a non-streaming chat completion.
func (s *ChatService) Create(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Stream {
		// Callers wanting chunks go through Stream.
		clone := *req
		clone.Stream = false
		clone.StreamOptions = nil
		req = &clone
	}

	var resp dto.ChatResponse
	if err := s.transport.Do(ctx, "POST", chatCompletionsPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stream performs a streaming chat completion. The returned stream is
// single-consumer and forward-only; the caller must close it.
func (s *ChatService) Stream(ctx context.Context, req *dto.ChatRequest) (*ChatStream, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	clone := *req
	clone.Stream = true
	if clone.StreamOptions == nil {
		clone.StreamOptions = &dto.StreamOptions{IncludeUsage: true}
	}

	decoder, err := s.transport.Stream(ctx, chatCompletionsPath, &clone)
	if err != nil {
		return nil, err
	}
	return &ChatStream{decoder: decoder}, nil
}
