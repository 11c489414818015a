package openrouter

import (
	"context"
	"net/url"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

// GenerationsService queries metadata for completed generations.
type GenerationsService struct {
	transport *transport.Client
}

// Get fetches the token and cost breakdown for a generation id, as returned
// in a chat completion response.
func (s *GenerationsService) Get(ctx context.Context, id string) (*dto.Generation, error) {
	if id == "" {
		return nil, dto.NewError(dto.ErrorTypeInvalidInput, "generation id must not be empty", nil)
	}
	var resp dto.GenerationResponse
	path := "/generation?id=" + url.QueryEscape(id)
	if err := s.transport.Do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
