package openrouter

import (
	"context"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

// ModelsService queries the model catalog.
type ModelsService struct {
	transport *transport.Client
}

// List fetches the full model catalog.
func (s *ModelsService) List(ctx context.Context) ([]dto.Model, error) {
	var list dto.ModelList
	if err := s.transport.Do(ctx, "GET", "/models", nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Get returns the catalog entry for a model identifier. The remote exposes
// no per-id endpoint, so the listing is filtered client-side.
func (s *ModelsService) Get(ctx context.Context, id string) (*dto.Model, error) {
	if id == "" {
		return nil, dto.NewError(dto.ErrorTypeInvalidInput, "model id must not be empty", nil)
	}

	models, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range models {
		if models[i].ID == id {
			return &models[i], nil
		}
	}
	return nil, dto.NewError(dto.ErrorTypeInvalidInput, "model not found: "+id, nil)
}
