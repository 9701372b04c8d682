package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/models"
)

func TestAnalyzeRejectionFallback(t *testing.T) {
	agent := NewFeedbackAgent(failingLLM())

	result := agent.AnalyzeRejection(context.Background(), FeedbackInput{
		Source: "rejection", Company: "Acme", Role: "Backend Developer",
	})

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "analysis", result.Key)
	assert.NotEmpty(t, result.Payload["encouragement"])
	assert.NotEmpty(t, result.Payload["next_steps"])
	items := result.Payload["action_items"].([]interface{})
	require.NotEmpty(t, items)
	assert.Equal(t, "high", items[0].(map[string]interface{})["priority"])
}

func TestAnalyzeInterviewFallback(t *testing.T) {
	agent := NewFeedbackAgent(failingLLM())

	result := agent.AnalyzeInterview(context.Background(), FeedbackInput{Company: "Acme"})

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "Analysis unavailable", result.Payload["message"])
}

func TestDetectPatternsNoHistory(t *testing.T) {
	agent := NewFeedbackAgent(&stubLLM{jsonResult: map[string]interface{}{"summary": "should not be called"}})

	result := agent.DetectPatterns(context.Background(), nil)

	assert.Equal(t, "no_data", result.Status)
	assert.Equal(t, "No feedback history to analyze", result.Payload["message"])
}

func TestDetectPatternsFallback(t *testing.T) {
	agent := NewFeedbackAgent(failingLLM())
	history := []models.Feedback{
		{FeedbackType: "rejection", Content: "Not enough system design depth"},
		{FeedbackType: "interview", Content: "Good communication, weak algorithms"},
		{FeedbackType: "rejection", Content: "Chose a more experienced candidate"},
	}

	result := agent.DetectPatterns(context.Background(), history)

	require.Equal(t, StatusFallback, result.Status)
	assert.NotEmpty(t, result.Payload["recurring_themes"])
	assert.Contains(t, result.Payload["summary"], "limited data")
}

func TestAnalyzeProgressFallbackStatuses(t *testing.T) {
	agent := NewFeedbackAgent(failingLLM())

	tests := []struct {
		rate int
		want string
	}{
		{85, "on_track"},
		{70, "on_track"},
		{55, "needs_attention"},
		{40, "needs_attention"},
		{10, "behind"},
	}

	for _, tt := range tests {
		result := agent.AnalyzeProgress(context.Background(), ProgressInput{
			CompletedTasks: tt.rate,
			TotalTasks:     100,
			CompletionRate: tt.rate,
			WeeksElapsed:   4,
		})

		require.Equal(t, StatusFallback, result.Status)
		assessment := result.Payload["progress_assessment"].(map[string]interface{})
		assert.Equal(t, tt.want, assessment["overall_status"], "rate %d", tt.rate)
	}
}

func TestGenerateWeeklyReportFallback(t *testing.T) {
	agent := NewFeedbackAgent(failingLLM())

	result := agent.GenerateWeeklyReport(context.Background(), WeeklyReportInput{
		Name:           "Sam",
		CurrentWeek:    5,
		TasksCompleted: []string{"Finished SQL module"},
	})

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "report", result.Key)
	assert.Equal(t, "Week 5 Progress Report", result.Payload["report_title"])
	accomplishments := result.Payload["key_accomplishments"].([]interface{})
	assert.Equal(t, "Finished SQL module", accomplishments[0])
}

func TestComprehensiveAnalysisGuaranteesKeys(t *testing.T) {
	// The model answered but left out most of the contract.
	llm := &stubLLM{jsonResult: map[string]interface{}{
		"identified_reasons": []interface{}{"Weak system design answers"},
		"readiness_score":    float64(65),
	}}
	agent := NewFeedbackAgent(llm)

	result := agent.ComprehensiveAnalysis(context.Background(), FeedbackInput{
		Source: "rejection", Company: "Acme", Role: "Backend Developer",
	}, nil, nil, nil)

	require.Equal(t, StatusSuccess, result.Status)

	for _, key := range []string{
		"source", "company", "role", "identified_reasons", "skill_gaps",
		"behavioral_gaps", "resume_issues", "technical_gaps", "strengths_detected",
		"confidence_level", "recommended_actions", "learning_plan",
		"project_suggestions", "resume_improvements", "next_steps",
		"readiness_score", "summary_message", "processing_time_ms",
	} {
		assert.Contains(t, result.Payload, key)
	}

	assert.Equal(t, 65, result.Payload["readiness_score"])
	assert.Equal(t, "medium", result.Payload["confidence_level"])
	assert.Equal(t, "rejection", result.Payload["source"])
	assert.NotNil(t, result.Payload["skill_gaps"])
	assert.Equal(t, "Analysis complete. Focus on the identified areas for improvement.", result.Payload["summary_message"])
}

func TestComprehensiveAnalysisFallback(t *testing.T) {
	agent := NewFeedbackAgent(failingLLM())

	result := agent.ComprehensiveAnalysis(context.Background(), FeedbackInput{
		Source: "interview", Company: "Acme",
	}, nil, nil, nil)

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, 50, result.Payload["readiness_score"])
	assert.Equal(t, "low", result.Payload["confidence_level"])
	assert.NotEmpty(t, result.Payload["recommended_actions"])
	assert.Contains(t, result.Payload, "processing_time_ms")
}
