package parsers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "plain fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "no fence",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.input))
		})
	}
}

func TestRecoverJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*testing.T, map[string]interface{})
	}{
		{
			name:  "well formed object",
			input: `{"skill": "Go", "level": 3}`,
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Equal(t, "Go", obj["skill"])
				assert.Equal(t, float64(3), obj["level"])
			},
		},
		{
			name:  "fenced object",
			input: "```json\n{\"ready\": true}\n```",
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Equal(t, true, obj["ready"])
			},
		},
		{
			name:  "trailing garbage after balanced close",
			input: `{"a": {"b": 2}} and here is some commentary`,
			check: func(t *testing.T, obj map[string]interface{}) {
				inner, ok := obj["a"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, float64(2), inner["b"])
			},
		},
		{
			name:  "braces inside strings do not confuse the scan",
			input: `{"text": "use {braces} and \"quotes\" freely"} trailing`,
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Equal(t, `use {braces} and "quotes" freely`, obj["text"])
			},
		},
		{
			// Curly quotes break the strict parse and the brace scan,
			// so only the cleanup tier can save this one.
			name:  "unicode quotes cleaned",
			input: "{\"note\": “plan – phase one”}",
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Equal(t, "plan - phase one", obj["note"])
			},
		},
		{
			// Truncation runs before cleanup: a balanced object with
			// trailing garbage is returned as-is, dashes included.
			name:  "balanced object keeps original punctuation",
			input: "{\"note\": \"plan – phase one\"} extra",
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Equal(t, "plan – phase one", obj["note"])
			},
		},
		{
			name:  "truncated mid string recovers prior fields",
			input: `{"items": [{"name": "sql"}, {"name": "docke`,
			check: func(t *testing.T, obj map[string]interface{}) {
				items, ok := obj["items"].([]interface{})
				require.True(t, ok)
				require.NotEmpty(t, items)
				first := items[0].(map[string]interface{})
				assert.Equal(t, "sql", first["name"])
			},
		},
		{
			name:  "hopeless input yields placeholder",
			input: "the model refused to answer",
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Contains(t, obj, "key_skills_to_highlight")
				assert.Contains(t, obj, "confidence_boosters")
			},
		},
		{
			name:  "empty input yields placeholder",
			input: "",
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Contains(t, obj, "suggested_projects")
			},
		},
		{
			name:  "top level array yields placeholder",
			input: `[1, 2, 3]`,
			check: func(t *testing.T, obj map[string]interface{}) {
				assert.Contains(t, obj, "common_questions")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := RecoverJSON(tt.input)
			require.NotNil(t, obj)

			// Every result must round-trip as valid JSON.
			_, err := json.Marshal(obj)
			require.NoError(t, err)

			tt.check(t, obj)
		})
	}
}

func TestRecoverJSONConcatenatedObjects(t *testing.T) {
	// Two complete objects back to back: the scan keeps the text up to the
	// last balanced close, so a strict parse fails and the truncation tier
	// decides. The documented behavior is that recovery still returns a
	// valid object rather than an error.
	obj := RecoverJSON(`{"first": 1}{"second": 2}`)
	require.NotNil(t, obj)
	_, err := json.Marshal(obj)
	assert.NoError(t, err)
}

func TestTryRecoverJSONReportsFailure(t *testing.T) {
	_, ok := TryRecoverJSON("not even close")
	assert.False(t, ok)

	obj, ok := TryRecoverJSON(`{"fine": true}`)
	assert.True(t, ok)
	assert.Equal(t, true, obj["fine"])
}
