package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/models"
	"careeragent/utils"
)

func testOrchestrator(llm ModelCaller) *Orchestrator {
	return NewOrchestrator(&Store{}, llm, utils.GlobalLogger.WithComponent("test"))
}

func planWithTasks(completed, total int) models.LearningPlan {
	tasks := make([]models.PlanTask, total)
	for i := range tasks {
		tasks[i] = models.PlanTask{Task: "task", Type: "learn", Completed: i < completed}
	}
	return models.LearningPlan{Tasks: tasks, Status: "in_progress"}
}

func TestRegenerateRoadmapRunsInline(t *testing.T) {
	llm := failingLLM()
	o := testOrchestrator(llm)

	state := &UserState{
		UserID:      1,
		PrimaryGoal: &models.CareerGoal{ID: 1, TargetRole: "Backend Developer"},
		SkillGaps:   []models.SkillGap{{SkillName: "Docker", Priority: "high"}},
	}

	// The planner must have been consulted by the time the call
	// returns, and a store failure must not escape to the caller.
	o.regenerateRoadmap(context.Background(), state)
	assert.Contains(t, llm.lastPrompt, "Backend Developer")
}

func TestRegenerateRoadmapNoGoalIsNoop(t *testing.T) {
	llm := failingLLM()
	o := testOrchestrator(llm)

	o.regenerateRoadmap(context.Background(), &UserState{UserID: 1})
	assert.Empty(t, llm.lastPrompt)
}

func TestReasonNextActionLadder(t *testing.T) {
	goal := &models.CareerGoal{ID: 1, TargetRole: "Backend Developer"}

	tests := []struct {
		name       string
		state      *UserState
		wantAction string
		wantRank   string
	}{
		{
			name:       "no goal",
			state:      &UserState{},
			wantAction: "set_goal",
			wantRank:   "critical",
		},
		{
			name:       "too few skills",
			state:      &UserState{PrimaryGoal: goal, Skills: skillList("Go", "SQL")},
			wantAction: "add_skills",
			wantRank:   "high",
		},
		{
			name:       "no gaps yet",
			state:      &UserState{PrimaryGoal: goal, Skills: skillList("Go", "SQL", "Docker")},
			wantAction: "analyze_gaps",
			wantRank:   "high",
		},
		{
			name: "no plans yet",
			state: &UserState{
				PrimaryGoal: goal,
				Skills:      skillList("Go", "SQL", "Docker"),
				SkillGaps:   []models.SkillGap{{SkillName: "Kubernetes"}},
			},
			wantAction: "create_plan",
			wantRank:   "high",
		},
		{
			name: "stalled progress",
			state: &UserState{
				PrimaryGoal: goal,
				Skills:      skillList("Go", "SQL", "Docker"),
				SkillGaps:   []models.SkillGap{{SkillName: "Kubernetes"}},
				Plans:       []models.LearningPlan{planWithTasks(1, 8)},
				Stats:       Stats{CompletionRate: 13, TotalTasks: 8},
			},
			wantAction: "review_progress",
			wantRank:   "medium",
		},
		{
			name: "on track",
			state: &UserState{
				PrimaryGoal: goal,
				Skills:      skillList("Go", "SQL", "Docker"),
				SkillGaps:   []models.SkillGap{{SkillName: "Kubernetes"}},
				Plans:       []models.LearningPlan{planWithTasks(6, 8)},
				Stats:       Stats{CompletionRate: 75, TotalTasks: 8},
			},
			wantAction: "continue_learning",
			wantRank:   "normal",
		},
	}

	o := testOrchestrator(failingLLM())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := o.ReasonNextAction(tt.state)
			assert.Equal(t, tt.wantAction, action.Action)
			assert.Equal(t, tt.wantRank, action.Priority)
		})
	}
}

func TestCalculateStats(t *testing.T) {
	plans := []models.LearningPlan{planWithTasks(2, 4), planWithTasks(1, 2)}
	apps := []models.Application{
		{Status: "applied"},
		{Status: "interviewing"},
		{Status: "rejected"},
		{Status: "offer"},
	}
	feedback := []models.Feedback{{FeedbackType: "rejection"}}

	stats := calculateStats(plans, apps, feedback)

	assert.Equal(t, 2, stats.TotalPlans)
	assert.Equal(t, 6, stats.TotalTasks)
	assert.Equal(t, 3, stats.CompletedTasks)
	assert.Equal(t, 50, stats.CompletionRate)
	assert.Equal(t, 4, stats.TotalApplications)
	assert.Equal(t, 2, stats.ActiveApplications)
	assert.Equal(t, 1, stats.FeedbackCount)
}

func TestCalculateStatsEmpty(t *testing.T) {
	stats := calculateStats(nil, nil, nil)

	assert.Zero(t, stats.CompletionRate)
	assert.Zero(t, stats.TotalTasks)
}

func TestGapsFromAnalysis(t *testing.T) {
	list := []interface{}{
		map[string]interface{}{
			"skill_name":              "Kubernetes",
			"priority":                "high",
			"current_level":           "none",
			"required_level":          "intermediate",
			"estimated_learning_time": "4 weeks",
			"learning_resources": []interface{}{
				map[string]interface{}{"title": "Kubernetes Course", "type": "course", "url": "https://www.coursera.org/k8s", "platform": "Coursera"},
			},
		},
		map[string]interface{}{"priority": "high"}, // unnamed, dropped
		"not an object",
	}

	gaps := gapsFromAnalysis(list)

	require.Len(t, gaps, 1)
	assert.Equal(t, "Kubernetes", gaps[0].SkillName)
	assert.Equal(t, "intermediate", gaps[0].TargetLevel)
	assert.Equal(t, "4 weeks", gaps[0].EstimatedTime)
	require.Len(t, gaps[0].LearningResources, 1)
	assert.Equal(t, "Coursera", gaps[0].LearningResources[0].Platform)
}

func TestGapsFromAnalysisDefaults(t *testing.T) {
	gaps := gapsFromAnalysis([]interface{}{
		map[string]interface{}{"skill_name": "GraphQL"},
	})

	require.Len(t, gaps, 1)
	assert.Equal(t, "medium", gaps[0].Priority)
	assert.Equal(t, "none", gaps[0].CurrentLevel)
}

func TestGenerateInsights(t *testing.T) {
	o := testOrchestrator(failingLLM())

	state := &UserState{
		Stats: Stats{CompletionRate: 85, ActiveApplications: 2},
		SkillGaps: []models.SkillGap{
			{SkillName: "Kubernetes", Priority: "high"},
			{SkillName: "GraphQL", Priority: "low"},
		},
	}
	reasoning := map[string]interface{}{"readiness_score": float64(72)}

	insights := o.generateInsights(state, reasoning)

	assert.Contains(t, insights, "Excellent progress! You're ahead of schedule.")
	assert.Contains(t, insights, "Focus on 1 high-priority skills for your target role.")
	assert.Contains(t, insights, "You're getting close to job-ready! Consider applying soon.")
	assert.Contains(t, insights, "You have 2 active application(s). Good luck!")
}

func TestGenerateInsightsDefault(t *testing.T) {
	o := testOrchestrator(failingLLM())

	insights := o.generateInsights(&UserState{}, nil)

	assert.Equal(t, []string{"Keep learning and building your skills!"}, insights)
}

func TestFallbackInterviewPrepShape(t *testing.T) {
	o := testOrchestrator(failingLLM())

	prep := o.fallbackInterviewPrep("Acme", "Backend Developer", []string{"Go", "SQL", "Docker", "Git"})

	highlight := prep["key_skills_to_highlight"].([]interface{})
	assert.Len(t, highlight, 3)

	plan := prep["30_day_prep_plan"].(map[string]interface{})
	for _, week := range []string{"week_1", "week_2", "week_3", "week_4"} {
		assert.NotEmpty(t, plan[week])
	}

	boosters := prep["confidence_boosters"].([]interface{})
	assert.Contains(t, boosters[0], "4 skills")
}

func TestOpportunityCatalogRequirements(t *testing.T) {
	var withReqs int
	for _, opp := range opportunityCatalog {
		if len(opp.Requirements) > 0 {
			withReqs++
		}
	}
	assert.Greater(t, withReqs, 0)
	assert.Less(t, withReqs, len(opportunityCatalog), "catalog keeps a role without requirements for the flat-match path")
}
