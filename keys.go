package openrouter

import (
	"context"

	"github.com/xyOz-dev/openrouter-go/dto"
	"github.com/xyOz-dev/openrouter-go/transport"
)

const keysPath = "/keys"

// KeysService manages provisioned API keys.
type KeysService struct {
	transport *transport.Client
}

// List fetches all keys for the account.
func (s *KeysService) List(ctx context.Context) ([]dto.APIKey, error) {
	var list dto.APIKeyList
	if err := s.transport.Do(ctx, "GET", keysPath, nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Get fetches a single key by id.
func (s *KeysService) Get(ctx context.Context, id string) (*dto.APIKey, error) {
	if id == "" {
		return nil, dto.NewError(dto.ErrorTypeInvalidInput, "key id must not be empty", nil)
	}
	var envelope dto.APIKeyEnvelope
	if err := s.transport.Do(ctx, "GET", keysPath+"/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Create provisions a new key. The returned value carries the secret
// exactly once; it cannot be retrieved again.
func (s *KeysService) Create(ctx context.Context, req dto.APIKeyCreateRequest) (*dto.ProvisionedKey, error) {
	if req.Name == "" {
		return nil, dto.NewError(dto.ErrorTypeInvalidInput, "key name must not be empty", nil)
	}
	var key dto.ProvisionedKey
	if err := s.transport.Do(ctx, "POST", keysPath, req, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// Update modifies an existing key. Nil request fields are left unchanged.
func (s *KeysService) Update(ctx context.Context, id string, req dto.APIKeyUpdateRequest) (*dto.APIKey, error) {
	if id == "" {
		return nil, dto.NewError(dto.ErrorTypeInvalidInput, "key id must not be empty", nil)
	}
	var envelope dto.APIKeyEnvelope
	if err := s.transport.Do(ctx, "PATCH", keysPath+"/"+id, req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Delete removes a key.
func (s *KeysService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dto.NewError(dto.ErrorTypeInvalidInput, "key id must not be empty", nil)
	}
	return s.transport.Do(ctx, "DELETE", keysPath+"/"+id, nil, nil)
}
