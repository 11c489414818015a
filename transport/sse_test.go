package transport

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decoderFor(raw string) *SSEDecoder {
	return NewSSEDecoder(io.NopCloser(strings.NewReader(raw)))
}

func TestSSEDecoderYieldsDataLinesInOrder(t *testing.T) {
	decoder := decoderFor(
		"data: {\"n\":1}\n\n" +
			"data: {\"n\":2}\n\n" +
			"data: {\"n\":3}\n\n" +
			"data: [DONE]\n\n",
	)

	var got []string
	for decoder.Next() {
		got = append(got, string(decoder.Event().Data))
	}

	require.NoError(t, decoder.Err())
	assert.Equal(t, []string{`{"n":1}`, `{"n":2}`, `{"n":3}`}, got)
	assert.True(t, decoder.Terminated())
}

func TestSSEDecoderSkipsCommentsAndEmptyLines(t *testing.T) {
	decoder := decoderFor(
		": OPENROUTER PROCESSING\n\n" +
			"data: {\"n\":1}\n\n" +
			": keep-alive\n\n" +
			"data: [DONE]\n\n",
	)

	var count int
	for decoder.Next() {
		count++
	}

	require.NoError(t, decoder.Err())
	assert.Equal(t, 1, count)
	assert.True(t, decoder.Terminated())
}

func TestSSEDecoderCarriesEventType(t *testing.T) {
	decoder := decoderFor(
		"event: message\n" +
			"data: {\"n\":1}\n\n" +
			"data: [DONE]\n\n",
	)

	require.True(t, decoder.Next())
	assert.Equal(t, "message", decoder.Event().Type)
	assert.False(t, decoder.Next())
}

func TestSSEDecoderWithoutSentinel(t *testing.T) {
	decoder := decoderFor("data: {\"n\":1}\n\n")

	require.True(t, decoder.Next())
	assert.False(t, decoder.Next())
	assert.NoError(t, decoder.Err())
	assert.False(t, decoder.Terminated())
}

func TestSSEDecoderEventDataSurvivesNext(t *testing.T) {
	decoder := decoderFor(
		"data: {\"first\":true}\n\n" +
			"data: {\"second\":true}\n\n" +
			"data: [DONE]\n\n",
	)

	require.True(t, decoder.Next())
	first := decoder.Event().Data
	require.True(t, decoder.Next())

	// The scanner reuses its internal buffer; the decoder must have copied.
	assert.Equal(t, `{"first":true}`, string(first))
}
