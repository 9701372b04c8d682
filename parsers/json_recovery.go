package parsers

import (
	"encoding/json"
	"strings"
)

// RecoverJSON turns model output into a JSON object no matter how damaged
// the text is. Repair tiers run in order: fence stripping, truncation at
// the last balanced brace, special character cleanup, partial extraction
// with bracket closing. When nothing survives, a minimal placeholder
// object is returned so callers never see malformed data.
func RecoverJSON(text string) map[string]interface{} {
	obj, ok := TryRecoverJSON(text)
	if !ok {
		return PlaceholderObject()
	}
	return obj
}

// TryRecoverJSON is RecoverJSON without the placeholder tier. The second
// return value reports whether any repair tier produced an object.
func TryRecoverJSON(text string) (map[string]interface{}, bool) {
	cleaned := StripCodeFences(text)

	if obj, ok := parseObject(cleaned); ok {
		return obj, true
	}

	if obj, ok := fixTruncatedJSON(cleaned); ok {
		return obj, true
	}

	replaced := replaceSpecialChars(cleaned)
	if obj, ok := parseObject(replaced); ok {
		return obj, true
	}
	if obj, ok := fixTruncatedJSON(replaced); ok {
		return obj, true
	}

	if obj, ok := extractPartialJSON(replaced); ok {
		return obj, true
	}

	return nil, false
}

// StripCodeFences removes a surrounding markdown code fence if present.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

func parseObject(s string) (map[string]interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	return obj, ok
}

// fixTruncatedJSON scans the text tracking string and escape state, and
// cuts it at the last position where the brace depth returns to zero.
// Trailing garbage after a complete object is discarded, which also means
// that when several top-level objects are concatenated the text up to the
// last balanced close is what gets parsed.
func fixTruncatedJSON(text string) (map[string]interface{}, bool) {
	braceCount := 0
	lastValid := 0
	inString := false
	escapeNext := false

	for i, ch := range text {
		if escapeNext {
			escapeNext = false
			continue
		}
		switch ch {
		case '\\':
			escapeNext = true
			continue
		case '"':
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				lastValid = i + 1
			}
		}
	}

	if lastValid == 0 {
		return nil, false
	}
	return parseObject(text[:lastValid])
}

var specialCharReplacer = strings.NewReplacer(
	"‑", "-", // non-breaking hyphen
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

func replaceSpecialChars(text string) string {
	return specialCharReplacer.Replace(text)
}

// extractPartialJSON salvages a response cut off mid-string: trim back to
// the last complete field, then close whatever arrays and objects remain
// open.
func extractPartialJSON(text string) (map[string]interface{}, bool) {
	fixed := strings.TrimRight(text, " \t\r\n")

	if !strings.HasSuffix(fixed, "}") && !strings.HasSuffix(fixed, "]") {
		if idx := strings.LastIndex(fixed, `"}`); idx > 0 {
			fixed = fixed[:idx+2]
		}
	}

	openBraces := strings.Count(fixed, "{") - strings.Count(fixed, "}")
	openBrackets := strings.Count(fixed, "[") - strings.Count(fixed, "]")

	if openBrackets > 0 {
		fixed += strings.Repeat("]", openBrackets)
	}
	if openBraces > 0 {
		fixed += strings.Repeat("}", openBraces)
	}

	return parseObject(fixed)
}

// PlaceholderObject is the last-resort result when no repair tier worked.
// Keys mirror the interview preparation shape so downstream consumers can
// still render something.
func PlaceholderObject() map[string]interface{} {
	return map[string]interface{}{
		"key_skills_to_highlight":   []interface{}{},
		"suggested_projects":        []interface{}{},
		"interview_preparation_tips": []interface{}{},
		"common_questions":          []interface{}{},
		"technical_topics_to_study": []interface{}{},
		"company_culture_prep": map[string]interface{}{
			"company_values":   "Research the company",
			"questions_to_ask": []interface{}{},
			"alignment_points": []interface{}{},
		},
		"confidence_boosters": []interface{}{"You have relevant skills for this role"},
	}
}
