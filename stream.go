package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

// ChatStream is a lazy sequence of chat completion chunks. It is
// single-consumer, forward-only, and not restartable; chunks arrive in the
// order the server sends them.
type ChatStream struct {
	decoder *transport.SSEDecoder
}

// Next returns the next chunk. It returns io.EOF after the termination
// sentinel, the context error on cancellation, and a streaming-kind error
// for a malformed chunk line or a body that ends without the sentinel,
// either of which terminates the sequence.
func (s *ChatStream) Next(ctx context.Context) (*dto.ChatResponseChunk, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.decoder.Next() {
		if err := s.decoder.Err(); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, dto.NewError(dto.ErrorTypeStreaming, "stream read failed", err)
		}
		if !s.decoder.Terminated() {
			// The body ended without the termination sentinel, so the
			// server never finished the response.
			return nil, dto.NewError(dto.ErrorTypeStreaming, "stream truncated before completion", nil)
		}
		return nil, io.EOF
	}

	var chunk dto.ChatResponseChunk
	if err := json.Unmarshal(s.decoder.Event().Data, &chunk); err != nil {
		return nil, dto.NewError(dto.ErrorTypeStreaming, "malformed stream chunk", err)
	}
	return &chunk, nil
}

// Close stops reading and releases the underlying response body. It is safe
// to call after the stream is exhausted.
func (s *ChatStream) Close() error {
	return s.decoder.Close()
}

// CollectStream drains a stream, invoking onDelta (when non-nil) for each
// content fragment, and accumulates the chunks into a complete response.
// Tool call fragments are merged by choice-local index.
func CollectStream(ctx context.Context, stream *ChatStream, onDelta func(string)) (*dto.ChatResponse, error) {
	var content strings.Builder
	var reasoning strings.Builder
	toolCalls := make(map[int]*dto.ToolCall)
	resp := &dto.ChatResponse{}
	var finishReason string

	for {
		chunk, err := stream.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if chunk.ID != "" {
			resp.ID = chunk.ID
		}
		if chunk.Model != "" {
			resp.Model = chunk.Model
		}
		if chunk.Created != 0 {
			resp.Created = chunk.Created
		}
		if chunk.Usage != nil {
			resp.Usage = chunk.Usage
		}

		for _, choice := range chunk.Choices {
			if choice.Index != 0 {
				continue
			}
			if choice.Delta.Content != "" {
				content.WriteString(choice.Delta.Content)
				if onDelta != nil {
					onDelta(choice.Delta.Content)
				}
			}
			if choice.Delta.Reasoning != "" {
				reasoning.WriteString(choice.Delta.Reasoning)
			}
			for _, delta := range choice.Delta.ToolCalls {
				call, ok := toolCalls[delta.Index]
				if !ok {
					call = &dto.ToolCall{Type: "function"}
					toolCalls[delta.Index] = call
				}
				if delta.ID != "" {
					call.ID = delta.ID
				}
				if delta.Function.Name != "" {
					call.Function.Name = delta.Function.Name
				}
				call.Function.Arguments += delta.Function.Arguments
			}
			if choice.FinishReason != nil {
				finishReason = *choice.FinishReason
			}
		}
	}

	var calls []dto.ToolCall
	for i := 0; i < len(toolCalls); i++ {
		if call, ok := toolCalls[i]; ok {
			calls = append(calls, *call)
		}
	}

	resp.Choices = []dto.Choice{{
		Index: 0,
		Message: dto.ResponseMessage{
			Role:      dto.RoleAssistant,
			Content:   content.String(),
			Reasoning: reasoning.String(),
			ToolCalls: calls,
		},
		FinishReason: finishReason,
	}}
	return resp, nil
}
