package agents

import (
	"context"
	"encoding/json"

	"careeragent/services"
)

// Result statuses. Success means the model produced the payload, fallback
// means a deterministic synthesizer did, error means the agent has nothing
// usable (only the resume agent ever reports that).
const (
	StatusSuccess  = "success"
	StatusFallback = "fallback"
	StatusError    = "error"
)

// Result is the envelope every agent returns. Key names the payload field
// in the serialized form, so a skill gap result marshals as
// {"agent": ..., "status": ..., "analysis": {...}}.
type Result struct {
	Agent   string
	Status  string
	Key     string
	Payload map[string]interface{}
	Err     string
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"agent":  r.Agent,
		"status": r.Status,
	}
	if r.Key != "" {
		if r.Payload != nil {
			out[r.Key] = r.Payload
		} else {
			out[r.Key] = nil
		}
	}
	if r.Err != "" {
		out["error"] = r.Err
	}
	return json.Marshal(out)
}

// ToMap flattens the envelope the same way MarshalJSON does.
func (r Result) ToMap() map[string]interface{} {
	out := map[string]interface{}{
		"agent":  r.Agent,
		"status": r.Status,
	}
	if r.Key != "" {
		if r.Payload != nil {
			out[r.Key] = r.Payload
		} else {
			out[r.Key] = nil
		}
	}
	if r.Err != "" {
		out["error"] = r.Err
	}
	return out
}

// ModelCaller is the slice of the LLM client the agents depend on.
type ModelCaller interface {
	Call(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error)
	CallJSON(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (map[string]interface{}, error)
	Chat(ctx context.Context, history []services.ChatMessage, systemPrompt string, temperature float64, maxTokens int) string
}

// Helpers for digging through model-produced JSON objects.

func getString(obj map[string]interface{}, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

func getList(obj map[string]interface{}, key string) []interface{} {
	if v, ok := obj[key].([]interface{}); ok {
		return v
	}
	return nil
}

func getMap(obj map[string]interface{}, key string) map[string]interface{} {
	if v, ok := obj[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func getNumber(obj map[string]interface{}, key string, def float64) float64 {
	switch v := obj[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}
