package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLLMConfigDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("FALLBACK_MODELS", "")
	t.Setenv("LLM_MAX_RETRIES", "")
	t.Setenv("LLM_TIMEOUT_SECONDS", "")

	cfg := GetLLMConfig()

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.Model)
	assert.Len(t, cfg.FallbackModels, 2)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestGetLLMConfigFallbackModelParsing(t *testing.T) {
	t.Setenv("FALLBACK_MODELS", " model-a , ,model-b,")

	cfg := GetLLMConfig()

	assert.Equal(t, []string{"model-a", "model-b"}, cfg.FallbackModels)
}

func TestGetLLMConfigInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_MAX_RETRIES", "zero")
	t.Setenv("LLM_TIMEOUT_SECONDS", "-5")

	cfg := GetLLMConfig()

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}
