package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineWeeks(t *testing.T) {
	tests := []struct {
		timeline string
		want     int
	}{
		{"3 months", 12},
		{"6 months", 24},
		{"8 weeks", 8},
		{"1 month", 4},
		{"", 12},
		{"soon", 12},
	}

	for _, tt := range tests {
		t.Run(tt.timeline, func(t *testing.T) {
			assert.Equal(t, tt.want, timelineWeeks(tt.timeline, 12))
		})
	}
}

func TestCreateRoadmapFallback(t *testing.T) {
	agent := NewPlannerAgent(failingLLM())
	gaps := []GapSummary{
		{SkillName: "Docker", Priority: "high"},
		{SkillName: "Kubernetes", Priority: "medium"},
	}

	result := agent.CreateRoadmap(context.Background(), gaps, "DevOps Engineer", "6 months")

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "roadmap", result.Key)
	assert.Equal(t, "Path to DevOps Engineer", result.Payload["roadmap_title"])

	weekly := result.Payload["weekly_plans"].([]interface{})
	require.Len(t, weekly, 12, "fallback roadmaps cap at twelve weeks")

	first := weekly[0].(map[string]interface{})
	assert.Equal(t, 1, first["week_number"])
	tasks := first["tasks"].([]interface{})
	require.Len(t, tasks, 3)
	study := tasks[0].(map[string]interface{})
	assert.Equal(t, "learn", study["type"])
	assert.Equal(t, 5, study["estimated_hours"])

	// Gaps cycle across the weeks.
	third := weekly[2].(map[string]interface{})
	assert.Contains(t, third["title"], "Docker")

	phases := result.Payload["phases"].([]interface{})
	require.Len(t, phases, 3)
	assert.Equal(t, "Foundation", phases[0].(map[string]interface{})["name"])
}

func TestCreateRoadmapFallbackNoGaps(t *testing.T) {
	agent := NewPlannerAgent(failingLLM())

	result := agent.CreateRoadmap(context.Background(), nil, "Software Engineer", "1 month")

	require.Equal(t, StatusFallback, result.Status)
	weekly := result.Payload["weekly_plans"].([]interface{})
	require.Len(t, weekly, 4)
	first := weekly[0].(map[string]interface{})
	assert.Contains(t, first["title"], "General Skills")
}

func TestCreateWeeklyPlanFallback(t *testing.T) {
	agent := NewPlannerAgent(failingLLM())

	result := agent.CreateWeeklyPlan(context.Background(), 3, []string{"GraphQL"}, "")

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, 3, result.Payload["week_number"])
	assert.Contains(t, result.Payload["title"], "GraphQL")
	assert.Len(t, result.Payload["tasks"].([]interface{}), 3)
}

func TestSuggestProjectsFallback(t *testing.T) {
	agent := NewPlannerAgent(failingLLM())

	result := agent.SuggestProjects(context.Background(), []string{"React", "Node.js"}, "")

	require.Equal(t, StatusFallback, result.Status)
	projects := result.Payload["projects"].([]interface{})
	require.Len(t, projects, 2)
	assert.Equal(t, "Portfolio Website", projects[0].(map[string]interface{})["title"])
	assert.Equal(t, "Task Management App", projects[1].(map[string]interface{})["title"])
}

func TestAdjustPlanFallback(t *testing.T) {
	agent := NewPlannerAgent(failingLLM())

	result := agent.AdjustPlan(context.Background(), "week 1 summary", "too hard", 20)

	require.Equal(t, StatusFallback, result.Status)
	assert.Equal(t, "No adjustments needed", result.Payload["message"])
}
