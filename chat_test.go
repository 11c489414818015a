package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyOz-dev/openrouter-go/dto"
)

func TestChatCreateEndToEnd(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Write([]byte(`{
			"id": "x",
			"model": "m",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	})

	resp, err := client.NewChatRequest().
		WithModel("m").
		AddUserMessage("hi").
		Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "m", gotBody["model"])
	messages, ok := gotBody["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "hi", first["content"])

	assert.Equal(t, "x", resp.ID)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "hello", resp.Choices[0].Message.Content)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 2, resp.Usage.TotalTokens)
}

func TestChatCreateOmitsUnsetSamplingFields(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"id":"x","choices":[]}`))
	})

	_, err := client.NewChatRequest().
		WithModel("m").
		AddUserMessage("hi").
		Execute(context.Background())
	require.NoError(t, err)

	for _, field := range []string{"temperature", "top_p", "top_k", "max_tokens", "frequency_penalty", "presence_penalty", "stream"} {
		_, present := gotBody[field]
		assert.Falsef(t, present, "field %q must be omitted when unset", field)
	}
}

func TestChatCreateValidatesDirectRequests(t *testing.T) {
	client, hits := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Chat.Create(context.Background(), &dto.ChatRequest{
		Messages: []dto.Message{{Role: dto.RoleUser, Content: "hi"}},
	})
	requireInvalidInput(t, err)

	_, err = client.Chat.Create(context.Background(), &dto.ChatRequest{Model: "m"})
	requireInvalidInput(t, err)

	_, err = client.Chat.Create(context.Background(), nil)
	requireInvalidInput(t, err)

	assert.EqualValues(t, 0, hits.Load())
}

func TestChatCreateRejectsBadMessageRole(t *testing.T) {
	client, hits := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Chat.Create(context.Background(), &dto.ChatRequest{
		Model:    "m",
		Messages: []dto.Message{{Role: "narrator", Content: "hi"}},
	})
	requireInvalidInput(t, err)
	assert.EqualValues(t, 0, hits.Load())
}

func TestChatCreateStripsStreamFlag(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"id":"x","choices":[]}`))
	})

	req := &dto.ChatRequest{
		Model:    "m",
		Messages: []dto.Message{{Role: dto.RoleUser, Content: "hi"}},
		Stream:   true,
	}
	_, err := client.Chat.Create(context.Background(), req)
	require.NoError(t, err)

	_, present := gotBody["stream"]
	assert.False(t, present, "Create must dispatch non-streaming requests")
	assert.True(t, req.Stream, "caller's request must not be mutated")
}
