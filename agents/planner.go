package agents

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const plannerSystemPrompt = `You are an expert learning path architect and career development planner. Your role is to:
1. Create realistic, actionable learning roadmaps
2. Break down skill acquisition into manageable weekly plans
3. Suggest hands-on projects to reinforce learning
4. Set achievable milestones

Consider learning curves, prerequisite skills, and practical application in your planning.
Plans should be specific, measurable, and achievable.`

// PlannerAgent turns skill gaps into roadmaps and weekly plans.
type PlannerAgent struct {
	name string
	llm  ModelCaller
}

func NewPlannerAgent(llm ModelCaller) *PlannerAgent {
	return &PlannerAgent{name: "PlannerAgent", llm: llm}
}

func (a *PlannerAgent) Name() string { return a.name }

// GapSummary is the slim gap view the planner needs.
type GapSummary struct {
	SkillName    string
	Priority     string
	CurrentLevel string
}

// CreateRoadmap builds a full roadmap with weekly plans for the timeline.
func (a *PlannerAgent) CreateRoadmap(ctx context.Context, skillGaps []GapSummary, targetRole, timeline string) Result {
	if timeline == "" {
		timeline = "3 months"
	}

	minWeeks := 4
	if w := timelineWeeks(timeline, 12); w > minWeeks {
		minWeeks = w
	}

	prompt := fmt.Sprintf(`Create a comprehensive learning roadmap:

## Target Role: %s
## Timeline: %s

## Skill Gaps to Address:
%s

Create a detailed roadmap in JSON:
{
    "roadmap_title": "<descriptive title>",
    "target_role": "%s",
    "total_duration": "%s",
    "start_date": "%s",
    "phases": [
        {"phase_number": 1, "name": "<phase name>", "duration": "<e.g., 4 weeks>", "focus_areas": ["<skills to learn>"], "description": "<what this phase covers>", "milestones": ["<measurable outcomes>"]}
    ],
    "weekly_plans": [
        {
            "week_number": 1,
            "title": "<week title>",
            "description": "<week focus>",
            "tasks": [
                {"id": 1, "title": "<task>", "type": "<learn|practice|build|review>", "estimated_hours": <hours>}
            ],
            "milestones": ["<what to achieve this week>"],
            "resources": ["<suggested resources>"],
            "project_ideas": ["<hands-on project suggestions>"],
            "ai_notes": "<personalized advice for this week>"
        }
    ],
    "capstone_project": {"title": "<project name>", "description": "<what to build>", "skills_demonstrated": ["<skills>"], "estimated_duration": "<time needed>"},
    "success_metrics": ["<how to measure progress>"],
    "tips": ["<general advice for success>"]
}

Create at least %d weekly plans.`,
		targetRole, timeline, formatGapSummaries(skillGaps), targetRole, timeline,
		time.Now().Format("2006-01-02"), minWeeks)

	result, err := a.llm.CallJSON(ctx, prompt, plannerSystemPrompt, 0.5, 4000)
	if err != nil {
		return a.fallbackRoadmap(skillGaps, targetRole, timeline)
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "roadmap", Payload: result}
}

// CreateWeeklyPlan builds one detailed week.
func (a *PlannerAgent) CreateWeeklyPlan(ctx context.Context, weekNumber int, skillsToLearn []string, previousProgress string) Result {
	contextStr := ""
	if previousProgress != "" {
		contextStr = "\nPrevious Progress: " + previousProgress
	}

	prompt := fmt.Sprintf(`Create a detailed plan for Week %d:

## Skills to Learn: %s
%s

Provide a detailed weekly plan in JSON:
{
    "week_number": %d,
    "title": "<catchy week title>",
    "description": "<week overview>",
    "learning_objectives": ["<specific outcomes>"],
    "daily_breakdown": {
        "day_1_2": {"focus": "<topic>", "tasks": ["<tasks>"]},
        "day_3_4": {"focus": "<topic>", "tasks": ["<tasks>"]},
        "day_5_6": {"focus": "<topic>", "tasks": ["<tasks>"]},
        "day_7": {"focus": "Review & Practice", "tasks": ["<tasks>"]}
    },
    "tasks": [
        {"id": 1, "title": "<task>", "type": "<type>", "estimated_hours": <hours>, "priority": "<high|medium|low>"}
    ],
    "resources": [
        {"title": "<resource name>", "type": "<video|article|course|book>", "url": "<optional url>"}
    ],
    "practice_exercises": ["<exercises>"],
    "mini_project": {"title": "<project name>", "description": "<what to build>", "skills_practiced": ["<skills>"]},
    "milestones": ["<checkpoints>"],
    "ai_notes": "<personalized tips and motivation>"
}`, weekNumber, strings.Join(skillsToLearn, ", "), contextStr, weekNumber)

	result, err := a.llm.CallJSON(ctx, prompt, plannerSystemPrompt, 0.5, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "plan", Payload: a.fallbackWeeklyPlan(weekNumber, skillsToLearn)}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "plan", Payload: result}
}

// SuggestProjects proposes portfolio projects for a skill set.
func (a *PlannerAgent) SuggestProjects(ctx context.Context, skills []string, level string) Result {
	if level == "" {
		level = "intermediate"
	}

	prompt := fmt.Sprintf(`Suggest portfolio projects for these skills:

## Skills: %s
## Level: %s

Provide project suggestions in JSON:
{
    "projects": [
        {
            "title": "<project name>",
            "description": "<what it does>",
            "skills_demonstrated": ["<skills>"],
            "difficulty": "<beginner|intermediate|advanced>",
            "estimated_time": "<duration>",
            "features": ["<key features to implement>"],
            "learning_outcomes": ["<what you'll learn>"],
            "extension_ideas": ["<ways to expand the project>"]
        }
    ],
    "recommended_order": ["<project names in order of complexity>"],
    "portfolio_tips": ["<tips for showcasing projects>"]
}

Suggest 3-5 projects of varying complexity.`, strings.Join(skills, ", "), level)

	result, err := a.llm.CallJSON(ctx, prompt, plannerSystemPrompt, 0.6, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "projects", Payload: a.fallbackProjects(skills)}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "projects", Payload: result}
}

// AdjustPlan revises a roadmap based on progress and feedback.
func (a *PlannerAgent) AdjustPlan(ctx context.Context, planSummary, feedback string, completionRate int) Result {
	prompt := fmt.Sprintf(`Adjust this learning plan based on progress:

## Current Plan:
%s

## Progress:
- Completion Rate: %d%%

## Feedback:
%s

Provide adjusted plan in JSON:
{
    "adjustments": [
        {"type": "<extend|remove|add|reorder>", "item": "<what>", "reason": "<why>"}
    ],
    "revised_timeline": "<if timeline changes>",
    "new_focus_areas": ["<adjusted priorities>"],
    "removed_items": ["<items to skip>"],
    "additional_support": ["<extra resources or tasks>"],
    "motivation_note": "<encouragement based on progress>",
    "next_steps": ["<immediate next actions>"]
}`, planSummary, completionRate, feedback)

	result, err := a.llm.CallJSON(ctx, prompt, plannerSystemPrompt, 0.4, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "adjustments", Payload: map[string]interface{}{
			"message": "No adjustments needed",
		}}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "adjustments", Payload: result}
}

// fallbackRoadmap cycles the gap list across up to twelve weeks with a
// fixed learn/practice/build cadence.
func (a *PlannerAgent) fallbackRoadmap(skillGaps []GapSummary, targetRole, timeline string) Result {
	weeks := timelineWeeks(timeline, 12)

	gapNames := make([]string, 0, len(skillGaps))
	for _, g := range skillGaps {
		gapNames = append(gapNames, g.SkillName)
	}

	var weeklyPlans []interface{}
	planned := weeks
	if planned > 12 {
		planned = 12
	}
	for i := 0; i < planned; i++ {
		currentSkill := "General Skills"
		if len(gapNames) > 0 {
			currentSkill = gapNames[i%len(gapNames)]
		}
		weeklyPlans = append(weeklyPlans, map[string]interface{}{
			"week_number": i + 1,
			"title":       fmt.Sprintf("Week %d: %s", i+1, currentSkill),
			"description": fmt.Sprintf("Focus on building %s skills", currentSkill),
			"tasks": []interface{}{
				map[string]interface{}{"id": 1, "title": fmt.Sprintf("Study %s fundamentals", currentSkill), "type": "learn", "estimated_hours": 5},
				map[string]interface{}{"id": 2, "title": fmt.Sprintf("Practice %s", currentSkill), "type": "practice", "estimated_hours": 3},
				map[string]interface{}{"id": 3, "title": "Build mini-project", "type": "build", "estimated_hours": 4},
			},
			"milestones": []interface{}{fmt.Sprintf("Understand %s basics", currentSkill), "Complete practice exercises"},
			"ai_notes":   "Focus on understanding core concepts before moving to advanced topics.",
		})
	}

	phaseFocus := func(from, to int) []string {
		if from >= len(gapNames) {
			return gapNames
		}
		if to > len(gapNames) {
			to = len(gapNames)
		}
		return gapNames[from:to]
	}

	return Result{Agent: a.name, Status: StatusFallback, Key: "roadmap", Payload: map[string]interface{}{
		"roadmap_title":  "Path to " + targetRole,
		"target_role":    targetRole,
		"total_duration": timeline,
		"start_date":     time.Now().Format("2006-01-02"),
		"phases": []interface{}{
			map[string]interface{}{"phase_number": 1, "name": "Foundation", "duration": fmt.Sprintf("%d weeks", weeks/3), "focus_areas": phaseFocus(0, 3)},
			map[string]interface{}{"phase_number": 2, "name": "Building", "duration": fmt.Sprintf("%d weeks", weeks/3), "focus_areas": phaseFocus(3, 6)},
			map[string]interface{}{"phase_number": 3, "name": "Mastery", "duration": fmt.Sprintf("%d weeks", weeks/3), "focus_areas": []string{"Projects", "Portfolio"}},
		},
		"weekly_plans":    emptyIfNil(weeklyPlans),
		"success_metrics": []interface{}{"Complete all weekly tasks", "Build portfolio projects", "Practice interviews"},
		"tips":            []interface{}{"Stay consistent", "Build projects", "Join communities"},
	}}
}

func (a *PlannerAgent) fallbackWeeklyPlan(week int, skills []string) map[string]interface{} {
	skill := "General Skills"
	if len(skills) > 0 {
		skill = skills[0]
	}
	return map[string]interface{}{
		"week_number": week,
		"title":       fmt.Sprintf("Week %d: %s", week, skill),
		"description": fmt.Sprintf("Focus on %s development", skill),
		"tasks": []interface{}{
			map[string]interface{}{"id": 1, "title": "Study " + skill, "type": "learn", "estimated_hours": 5},
			map[string]interface{}{"id": 2, "title": "Practice exercises", "type": "practice", "estimated_hours": 3},
			map[string]interface{}{"id": 3, "title": "Build project", "type": "build", "estimated_hours": 4},
		},
		"milestones": []interface{}{fmt.Sprintf("Understand %s fundamentals", skill)},
		"ai_notes":   "Take it step by step and focus on practical application.",
	}
}

func (a *PlannerAgent) fallbackProjects(skills []string) map[string]interface{} {
	firstThree := skills
	if len(firstThree) > 3 {
		firstThree = firstThree[:3]
	}
	if len(firstThree) == 0 {
		firstThree = []string{"Web Development"}
	}
	all := skills
	if len(all) == 0 {
		all = []string{"Full Stack"}
	}
	return map[string]interface{}{
		"projects": []interface{}{
			map[string]interface{}{
				"title":               "Portfolio Website",
				"description":         "Build a personal portfolio showcasing your skills",
				"skills_demonstrated": firstThree,
				"difficulty":          "beginner",
				"estimated_time":      "1-2 weeks",
			},
			map[string]interface{}{
				"title":               "Task Management App",
				"description":         "Full-stack app with CRUD operations",
				"skills_demonstrated": all,
				"difficulty":          "intermediate",
				"estimated_time":      "2-3 weeks",
			},
		},
		"recommended_order": []interface{}{"Portfolio Website", "Task Management App"},
	}
}

// timelineWeeks reads the leading number out of a timeline like "3 months"
// or "8 weeks". Months count as four weeks each.
func timelineWeeks(timeline string, def int) int {
	parts := strings.Fields(timeline)
	if len(parts) == 0 {
		return def
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return def
	}
	if strings.Contains(strings.ToLower(timeline), "month") {
		n *= 4
	}
	return n
}

func formatGapSummaries(gaps []GapSummary) string {
	if len(gaps) == 0 {
		return "No specific gaps identified"
	}
	var lines []string
	for _, g := range gaps {
		priority := g.Priority
		if priority == "" {
			priority = "medium"
		}
		current := g.CurrentLevel
		if current == "" {
			current = "none"
		}
		lines = append(lines, fmt.Sprintf("- %s (Priority: %s, Current: %s)", g.SkillName, priority, current))
	}
	return strings.Join(lines, "\n")
}
