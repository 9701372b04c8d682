package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/config"
	"careeragent/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*LLMClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.LLMConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		Model:          "primary-model",
		FallbackModels: []string{"fallback-one", "fallback-two"},
		MaxRetries:     1,
		TimeoutSeconds: 5,
	}
	return NewLLMClient(cfg, utils.NewLogger()), server
}

func completionBody(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestCallTriesModelsInOrder(t *testing.T) {
	var requestedModels []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedModels = append(requestedModels, req.Model)

		if req.Model != "fallback-two" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(completionBody("hello from fallback")))
	})

	text, err := client.Call(context.Background(), "hi", "", 0.3, 100)
	require.NoError(t, err)
	assert.Equal(t, "hello from fallback", text)
	assert.Equal(t, []string{"primary-model", "fallback-one", "fallback-two"}, requestedModels)
}

func TestCallStopsAtFirstSuccess(t *testing.T) {
	var requestedModels []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedModels = append(requestedModels, req.Model)
		w.Write([]byte(completionBody("primary answer")))
	})

	text, err := client.Call(context.Background(), "hi", "system", 0.3, 100)
	require.NoError(t, err)
	assert.Equal(t, "primary answer", text)
	assert.Equal(t, []string{"primary-model"}, requestedModels)
}

func TestCallEmptyContentFallsThrough(t *testing.T) {
	var requestedModels []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedModels = append(requestedModels, req.Model)

		if req.Model == "primary-model" {
			w.Write([]byte(completionBody("")))
			return
		}
		w.Write([]byte(completionBody("non-empty")))
	})

	text, err := client.Call(context.Background(), "hi", "", 0.3, 100)
	require.NoError(t, err)
	assert.Equal(t, "non-empty", text)
	assert.Equal(t, []string{"primary-model", "fallback-one"}, requestedModels)
}

func TestCallAllModelsFail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Call(context.Background(), "hi", "", 0.3, 100)
	assert.ErrorIs(t, err, ErrAllModelsFailed)
}

func TestCallJSONAppendsInstructionAndRecovers(t *testing.T) {
	var sawInstruction bool

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		last := req.Messages[len(req.Messages)-1]
		if last.Role == "user" && len(last.Content) > 0 {
			sawInstruction = assert.Contains(t, last.Content, "valid, complete JSON only")
		}
		// Fenced and truncated: both repair tiers must run.
		w.Write([]byte(completionBody("```json\n{\"score\": 42} trailing words")))
	})

	obj, err := client.CallJSON(context.Background(), "analyze", "", 0.3, 100)
	require.NoError(t, err)
	assert.True(t, sawInstruction)
	assert.Equal(t, float64(42), obj["score"])
}

func TestCallJSONPlaceholderOnGarbage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("I cannot answer that")))
	})

	obj, err := client.CallJSON(context.Background(), "analyze", "", 0.3, 100)
	require.NoError(t, err)
	assert.Contains(t, obj, "key_skills_to_highlight")
}

func TestCallJSONAllModelsFail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	obj, err := client.CallJSON(context.Background(), "analyze", "", 0.3, 100)
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, ErrAllModelsFailed)
}

func TestChatReturnsUnavailableMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	reply := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, "system", 0.7, 100)
	assert.Equal(t, ChatUnavailableMessage, reply)
}

func TestChatForwardsHistory(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		require.Len(t, req.Messages, 3)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "assistant", req.Messages[2].Role)

		w.Write([]byte(completionBody("got it")))
	})

	history := []ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}
	reply := client.Chat(context.Background(), history, "be nice", 0.7, 100)
	assert.Equal(t, "got it", reply)
}

func TestAuthorizationHeaderSet(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(completionBody("ok")))
	})

	_, err := client.Call(context.Background(), "hi", "", 0.3, 100)
	assert.NoError(t, err)
}
