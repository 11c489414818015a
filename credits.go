package openrouter

import (
	"context"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

// CreditsService queries account credit state.
type CreditsService struct {
	transport *transport.Client
}

// Get fetches a point-in-time snapshot of account usage and limits.
func (s *CreditsService) Get(ctx context.Context) (*dto.Credits, error) {
	var resp dto.CreditsResponse
	if err := s.transport.Do(ctx, "GET", "/credits", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
