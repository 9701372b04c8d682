package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestProjectsFallbackByGoal(t *testing.T) {
	agent := NewProjectsAgent(failingLLM())

	tests := []struct {
		goal       string
		firstTitle string
	}{
		{"Full Stack Developer", "Personal Portfolio Website"},
		{"Data Scientist", "Data Visualization Dashboard"},
		{"Machine Learning Engineer", "Data Visualization Dashboard"},
		{"Accountant", "Personal Blog Platform"},
		{"", "Personal Blog Platform"},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			result := agent.SuggestProjects(context.Background(), nil, nil, tt.goal, nil, nil, 5)

			require.Equal(t, StatusFallback, result.Status)
			suggestions := result.Payload["suggestions"].([]interface{})
			require.Len(t, suggestions, 2)
			first := suggestions[0].(map[string]interface{})
			assert.Equal(t, tt.firstTitle, first["project_title"])
			assert.Equal(t, 2, result.Payload["count"])
		})
	}
}

func TestSuggestProjectsSuccessRequiresSuggestionsKey(t *testing.T) {
	// A parsed object without the suggestions list still counts as a
	// failed generation.
	agent := NewProjectsAgent(&stubLLM{jsonResult: map[string]interface{}{"note": "incomplete"}})

	result := agent.SuggestProjects(context.Background(), nil, nil, "Web Developer", nil, nil, 3)

	assert.Equal(t, StatusFallback, result.Status)
}

func TestAnalyzeUserProfileFallback(t *testing.T) {
	agent := NewProjectsAgent(failingLLM())
	gaps := []GapSummary{{SkillName: "Docker"}, {SkillName: "AWS"}}

	result := agent.AnalyzeUserProfile(context.Background(), skillList("Go", "SQL"), "Backend Developer", nil, gaps)

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "beginner", result.Payload["skill_level"])
	assert.Equal(t, []string{"Go", "SQL"}, result.Payload["strongest_skills"])
	assert.Equal(t, []string{"Docker", "AWS"}, result.Payload["skills_to_develop"])
	assert.Contains(t, result.Payload["opening_message"], "Backend Developer")
}

func TestImproveUserIdeaErrorsWithoutFallback(t *testing.T) {
	agent := NewProjectsAgent(failingLLM())

	result := agent.ImproveUserIdea(context.Background(), "a todo app", nil, nil, "Web Developer")

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Err, "rephrasing")
}

func TestToSaveableDefaultsAndOptionalFields(t *testing.T) {
	agent := NewProjectsAgent(failingLLM())

	saveable := agent.ToSaveable(map[string]interface{}{
		"description":           "A realtime chat service",
		"skills_used":           []interface{}{"Go", "WebSockets"},
		"estimated_duration":    "3 weeks",
		"original_idea_summary": "simple chat app",
	})

	assert.Equal(t, "Untitled Project", saveable["project_title"])
	assert.Equal(t, "Intermediate", saveable["difficulty"])
	assert.Equal(t, "planned", saveable["status"])
	assert.Equal(t, "3 weeks", saveable["estimated_duration"])
	assert.Equal(t, "simple chat app", saveable["original_idea"])
	assert.NotContains(t, saveable, "implementation_phases")
	assert.NotNil(t, saveable["features"])
}

func TestChatResponseFallback(t *testing.T) {
	agent := NewProjectsAgent(failingLLM())

	result := agent.ChatResponse(context.Background(), "hmm", nil, "", "initial", nil)

	assert.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "other", result.Intent)
	assert.Equal(t, "clarify", result.Action)
	assert.True(t, result.NeedsMoreInfo)
}

func TestChatResponseFillsMissingResponseText(t *testing.T) {
	agent := NewProjectsAgent(&stubLLM{jsonResult: map[string]interface{}{
		"intent":        "has_own_idea",
		"action_needed": "improve_idea",
	}})

	result := agent.ChatResponse(context.Background(), "I want to build a budgeting app", nil, "Web Developer", "initial", nil)

	require.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "has_own_idea", result.Intent)
	assert.Equal(t, "improve_idea", result.Action)
	assert.Equal(t, "Great! Tell me about your project idea and I'll help you refine it.", result.Response)
}
