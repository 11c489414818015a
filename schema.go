package openrouter

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/xyOz-dev/openrouter-go/dto"
)

// GenerateSchema synthesizes a JSON schema from the exported fields of
// target by reflection. Pointer fields and fields tagged omitempty are
// optional; everything else is required. The schema is inlined with no
// $ref indirection so it can be sent as a response_format document.
// This is a one-shot transformation; callers on a hot path should cache
// the result.
func GenerateSchema(target interface{}) ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	schema := reflector.Reflect(target)
	// The draft marker is noise in a response_format document.
	schema.Version = ""

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, dto.NewError(dto.ErrorTypeSerialization, "failed to encode generated schema", err)
	}
	return raw, nil
}
