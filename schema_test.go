package openrouter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherReport struct {
	City        string   `json:"city"`
	TempCelsius float64  `json:"temp_celsius"`
	Conditions  []string `json:"conditions"`
	Humidity    *int     `json:"humidity,omitempty"`
}

func TestGenerateSchemaReflectsStruct(t *testing.T) {
	raw, err := GenerateSchema(weatherReport{})
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema["type"])
	assert.NotContains(t, schema, "$schema")
	assert.NotContains(t, schema, "$defs")

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok, "schema should carry a properties object")
	assert.Contains(t, props, "city")
	assert.Contains(t, props, "temp_celsius")
	assert.Contains(t, props, "conditions")
	assert.Contains(t, props, "humidity")

	city := props["city"].(map[string]interface{})
	assert.Equal(t, "string", city["type"])
	temp := props["temp_celsius"].(map[string]interface{})
	assert.Equal(t, "number", temp["type"])
	conditions := props["conditions"].(map[string]interface{})
	assert.Equal(t, "array", conditions["type"])
}

func TestGenerateSchemaRequiredFields(t *testing.T) {
	raw, err := GenerateSchema(weatherReport{})
	require.NoError(t, err)

	var schema struct {
		Required             []string `json:"required"`
		AdditionalProperties bool     `json:"additionalProperties"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.ElementsMatch(t, []string{"city", "temp_celsius", "conditions"}, schema.Required)
	assert.False(t, schema.AdditionalProperties)
}
