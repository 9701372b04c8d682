package agents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/services"
)

// stubLLM satisfies ModelCaller without any network traffic. Configure
// jsonResult/err to steer agents down the success or fallback path.
type stubLLM struct {
	jsonResult map[string]interface{}
	textResult string
	chatReply  string
	err        error

	lastPrompt string
	lastSystem string
	lastTemp   float64
}

func (s *stubLLM) Call(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error) {
	s.lastPrompt = prompt
	s.lastSystem = systemPrompt
	s.lastTemp = temperature
	return s.textResult, s.err
}

func (s *stubLLM) CallJSON(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (map[string]interface{}, error) {
	s.lastPrompt = prompt
	s.lastSystem = systemPrompt
	s.lastTemp = temperature
	if s.err != nil {
		return nil, s.err
	}
	return s.jsonResult, nil
}

func (s *stubLLM) Chat(ctx context.Context, history []services.ChatMessage, systemPrompt string, temperature float64, maxTokens int) string {
	return s.chatReply
}

var errStubDown = errors.New("model unavailable")

func failingLLM() *stubLLM {
	return &stubLLM{err: errStubDown}
}

func TestResultMarshalUsesKeyField(t *testing.T) {
	r := Result{
		Agent:   "SkillGapAgent",
		Status:  StatusSuccess,
		Key:     "analysis",
		Payload: map[string]interface{}{"readiness_percentage": 80},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "SkillGapAgent", decoded["agent"])
	assert.Equal(t, "success", decoded["status"])
	analysis, ok := decoded["analysis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(80), analysis["readiness_percentage"])
}

func TestResultMarshalErrorEnvelope(t *testing.T) {
	r := Result{Agent: "ResumeAgent", Status: StatusError, Key: "resume_data", Err: "no content"}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "no content", decoded["error"])
	val, present := decoded["resume_data"]
	assert.True(t, present)
	assert.Nil(t, val)
}
