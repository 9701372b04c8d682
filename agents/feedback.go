package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careeragent/models"
	"careeragent/utils"
)

const feedbackSystemPrompt = `You are an expert career coach and feedback analyst. Your role is to:
1. Extract actionable insights from rejections, interviews, and self reflections
2. Detect recurring patterns across feedback history
3. Turn setbacks into concrete improvement plans
4. Keep the tone supportive but honest

Ground every recommendation in the feedback actually given.`

// FeedbackInput describes one piece of feedback to analyze.
type FeedbackInput struct {
	Source        string `json:"source"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	Stage         string `json:"stage"`
	InterviewType string `json:"interview_type"`
	Message       string `json:"message"`
	Questions     string `json:"questions"`
	UserSkills    string `json:"user_skills"`
}

// FeedbackAgent turns rejections and interview notes into coaching.
type FeedbackAgent struct {
	name string
	llm  ModelCaller
}

func NewFeedbackAgent(llm ModelCaller) *FeedbackAgent {
	return &FeedbackAgent{name: "FeedbackAgent", llm: llm}
}

func (a *FeedbackAgent) Name() string { return a.name }

// AnalyzeRejection extracts likely reasons and action items from a
// rejection.
func (a *FeedbackAgent) AnalyzeRejection(ctx context.Context, input FeedbackInput) Result {
	prompt := fmt.Sprintf(`Analyze this job rejection and provide insights:

## Rejection Details
- Company: %s
- Role: %s
- Stage: %s
- Feedback Received: %s
- Interview Type: %s

## User's Skills:
%s

Provide analysis in JSON:
{
    "rejection_analysis": {
        "likely_reasons": ["<possible reasons for rejection>"],
        "skill_gaps_identified": ["<skills that may have been lacking>"],
        "interview_performance": {
            "strengths_shown": ["<what went well>"],
            "areas_for_improvement": ["<what could be better>"]
        },
        "company_fit_analysis": "<assessment of fit with company>",
        "competition_factor": "<how competitive was this role likely>"
    },
    "action_items": [
        {"action": "<specific action to take>", "priority": "<high|medium|low>", "timeline": "<when to do this>", "expected_outcome": "<what this will improve>"}
    ],
    "roadmap_updates": ["<suggested changes to learning plan>"],
    "skills_to_focus": ["<skills to prioritize>"],
    "encouragement": "<motivational message>",
    "next_steps": ["<immediate actions>"],
    "similar_role_tips": "<advice for similar applications>"
}`,
		defaultString(input.Company, "Unknown"), defaultString(input.Role, "Unknown"),
		defaultString(input.Stage, "Unknown"), defaultString(input.Message, "No specific feedback"),
		defaultString(input.InterviewType, "Unknown"), defaultString(input.UserSkills, "Not provided"))

	result, err := a.llm.CallJSON(ctx, prompt, feedbackSystemPrompt, 0.4, 4000)
	if err != nil {
		return a.fallbackRejectionAnalysis()
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// AnalyzeInterview digs into interview feedback.
func (a *FeedbackAgent) AnalyzeInterview(ctx context.Context, input FeedbackInput) Result {
	prompt := fmt.Sprintf(`Analyze this interview feedback:

## Interview Details
- Company: %s
- Role: %s
- Interview Type: %s

## Feedback Received:
%s

## Questions Asked (if available):
%s

Provide analysis in JSON:
{
    "performance_breakdown": {
        "technical_skills": {"score": "<weak|average|strong>", "notes": "<specific observations>"},
        "communication": {"score": "<weak|average|strong>", "notes": "<specific observations>"},
        "problem_solving": {"score": "<weak|average|strong>", "notes": "<specific observations>"},
        "cultural_fit": {"score": "<weak|average|strong>", "notes": "<specific observations>"}
    },
    "key_insights": ["<important takeaways>"],
    "strengths_demonstrated": ["<what you did well>"],
    "improvement_areas": [
        {"area": "<what to improve>", "specific_feedback": "<details>", "how_to_improve": "<action steps>", "resources": ["<helpful resources>"]}
    ],
    "practice_recommendations": ["<what to practice>"],
    "mindset_adjustments": ["<mental approach changes>"],
    "next_interview_tips": ["<tips for next time>"]
}`,
		defaultString(input.Company, "Unknown"), defaultString(input.Role, "Unknown"),
		defaultString(input.InterviewType, "Unknown"), defaultString(input.Message, "No specific feedback"),
		defaultString(input.Questions, "Not provided"))

	result, err := a.llm.CallJSON(ctx, prompt, feedbackSystemPrompt, 0.4, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: map[string]interface{}{
			"message": "Analysis unavailable",
		}}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// DetectPatterns looks for recurring themes across stored feedback.
// Callers should only invoke it with three or more entries; with none it
// reports no_data.
func (a *FeedbackAgent) DetectPatterns(ctx context.Context, history []models.Feedback) Result {
	if len(history) == 0 {
		return Result{Agent: a.name, Status: "no_data", Key: "patterns", Payload: map[string]interface{}{
			"message": "No feedback history to analyze",
		}}
	}

	var b strings.Builder
	for i, fb := range history {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s\n   Message: %s\n   Analysis: %s\n",
			i+1, fb.FeedbackType, utils.Truncate(fb.Content, 300), defaultString(fb.Analysis, "N/A"))
	}

	prompt := fmt.Sprintf(`Analyze patterns across this feedback history:
%s

Identify patterns in JSON:
{
    "recurring_themes": [
        {"theme": "<pattern identified>", "frequency": "<how often it appears>", "severity": "<critical|significant|minor>", "examples": ["<specific instances>"]}
    ],
    "skill_gaps_pattern": ["<consistently missing skills>"],
    "strength_patterns": ["<consistently positive areas>"],
    "interview_stage_analysis": {
        "early_stage_issues": ["<problems in initial stages>"],
        "later_stage_issues": ["<problems in final stages>"]
    },
    "root_causes": ["<underlying causes>"],
    "systemic_recommendations": [
        {"recommendation": "<what to change>", "addresses": "<which pattern this fixes>", "implementation": "<how to implement>"}
    ],
    "priority_improvements": ["<most impactful changes>"],
    "positive_trends": ["<improvements over time>"],
    "summary": "<overall pattern analysis>"
}`, b.String())

	result, err := a.llm.CallJSON(ctx, prompt, feedbackSystemPrompt, 0.4, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "patterns", Payload: a.fallbackPatterns()}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "patterns", Payload: result}
}

// ProgressInput summarizes learning progress for analysis.
type ProgressInput struct {
	CompletedTasks int
	TotalTasks     int
	CompletionRate int
	WeeksElapsed   int
}

// AnalyzeProgress reviews completion data.
func (a *FeedbackAgent) AnalyzeProgress(ctx context.Context, progress ProgressInput) Result {
	prompt := fmt.Sprintf(`Analyze this learning progress:

## Progress Data
- Tasks Completed: %d
- Total Tasks: %d
- Completion Rate: %d%%
- Weeks Elapsed: %d

Provide progress analysis in JSON:
{
    "progress_assessment": {
        "overall_status": "<on_track|ahead|behind|needs_attention>",
        "completion_rate_analysis": "<assessment of completion rate>",
        "pace_analysis": "<is the pace sustainable?>"
    },
    "achievements": ["<notable accomplishments>"],
    "areas_of_concern": ["<potential issues>"],
    "momentum_tips": ["<how to maintain progress>"],
    "schedule_adjustments": ["<suggested changes>"],
    "motivation_boosters": ["<encouragement>"],
    "next_week_focus": ["<what to prioritize>"],
    "celebration_worthy": ["<achievements to celebrate>"]
}`, progress.CompletedTasks, progress.TotalTasks, progress.CompletionRate, progress.WeeksElapsed)

	result, err := a.llm.CallJSON(ctx, prompt, feedbackSystemPrompt, 0.4, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: a.fallbackProgress(progress.CompletionRate)}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// WeeklyReportInput is one week of activity.
type WeeklyReportInput struct {
	Name           string
	TargetRole     string
	CurrentWeek    int
	TasksCompleted []string
	HoursSpent     int
	NewSkills      []string
	Applications   int
	Challenges     string
}

// GenerateWeeklyReport writes the weekly progress report.
func (a *FeedbackAgent) GenerateWeeklyReport(ctx context.Context, input WeeklyReportInput) Result {
	prompt := fmt.Sprintf(`Generate a weekly progress report:

## User Data
- Name: %s
- Target Role: %s
- Current Week: %d

## This Week's Activities
- Tasks Completed: %s
- Hours Spent: %d
- New Skills: %s
- Applications Sent: %d

## Challenges
%s

Generate a comprehensive weekly report in JSON:
{
    "report_title": "<catchy title>",
    "week_summary": "<brief overview>",
    "key_accomplishments": ["<achievements>"],
    "skills_progress": [
        {"skill": "<skill>", "progress": "<description>", "level_change": "<if any>"}
    ],
    "readiness_change": {"previous": <score>, "current": <score>, "delta": <change>, "trend": "<improving|stable|declining>"},
    "insights": ["<AI observations>"],
    "challenges_addressed": ["<how challenges were handled>"],
    "next_week_preview": {
        "focus_areas": ["<priorities>"],
        "goals": ["<specific goals>"],
        "recommendations": ["<suggestions>"]
    },
    "motivation_message": "<personalized encouragement>",
    "agent_thoughts": "<AI's perspective on progress>"
}`,
		defaultString(input.Name, "User"), defaultString(input.TargetRole, "Not set"), input.CurrentWeek,
		strings.Join(input.TasksCompleted, ", "), input.HoursSpent, strings.Join(input.NewSkills, ", "),
		input.Applications, defaultString(input.Challenges, "None reported"))

	result, err := a.llm.CallJSON(ctx, prompt, feedbackSystemPrompt, 0.5, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "report", Payload: a.fallbackReport(input)}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "report", Payload: result}
}

// comprehensiveKeys is the fixed key set every comprehensive analysis
// carries, model-produced or not.
var comprehensiveListKeys = []string{
	"identified_reasons", "skill_gaps", "behavioral_gaps", "resume_issues",
	"technical_gaps", "strengths_detected", "recommended_actions",
	"learning_plan", "project_suggestions", "resume_improvements", "next_steps",
}

// ComprehensiveAnalysis is the main coaching analysis. The result always
// contains the full key superset with defaults filled in.
func (a *FeedbackAgent) ComprehensiveAnalysis(ctx context.Context, input FeedbackInput, profile *models.User, skills []models.Skill, history []models.Application) Result {
	start := time.Now()

	source := defaultString(input.Source, "unknown")
	sourceDisplay := utils.TitleCase(strings.ReplaceAll(source, "_", " "))

	skillsStr := "Not provided"
	if len(skills) > 0 {
		var parts []string
		for i, s := range skills {
			if i >= 15 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", s.SkillName, s.Level))
		}
		skillsStr = strings.Join(parts, ", ")
	}

	profileStr := "Not provided"
	if profile != nil {
		var parts []string
		if profile.Name != "" {
			parts = append(parts, "Name: "+profile.Name)
		}
		if profile.CurrentLevel != "" {
			parts = append(parts, "Level: "+profile.CurrentLevel)
		}
		if profile.ExperienceYears > 0 {
			parts = append(parts, fmt.Sprintf("Experience: %d years", profile.ExperienceYears))
		}
		if len(parts) > 0 {
			profileStr = strings.Join(parts, " | ")
		}
	}

	historyStr := "No previous applications"
	if len(history) > 0 {
		var parts []string
		for i, app := range history {
			if i >= 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s (%s): %s", app.Company, app.Role, app.Status))
		}
		historyStr = strings.Join(parts, "\n")
	}

	prompt := fmt.Sprintf(`Perform a COMPREHENSIVE career feedback analysis.

## Feedback Source
Type: %s

## Feedback Details
- Company: %s
- Role: %s
- Interview Type: %s
- Stage: %s

## Feedback Message/Text
%s

## User Profile
%s

## User's Current Skills
%s

## Application History
%s

Analyze this feedback comprehensively and return a JSON response with this EXACT structure:

{
    "source": "%s",
    "company": "%s",
    "role": "%s",
    "identified_reasons": ["<2-5 specific reasons for rejection or areas of concern>"],
    "skill_gaps": ["<technical or domain skills that appear to be lacking>"],
    "behavioral_gaps": ["<behavioral issues like communication, confidence, clarity, teamwork>"],
    "resume_issues": ["<resume-related problems mentioned or inferred>"],
    "technical_gaps": ["<specific technical areas needing improvement>"],
    "strengths_detected": ["<positive aspects detected in the feedback or profile>"],
    "confidence_level": "<low|medium|high - how confident are you in this analysis>",
    "recommended_actions": ["<3-7 specific, actionable recommendations>"],
    "learning_plan": [
        {"area": "<skill or topic area>", "action": "<specific learning action>", "timeline": "<realistic timeline>"}
    ],
    "project_suggestions": ["<2-4 project ideas that would address the identified gaps>"],
    "resume_improvements": ["<specific resume improvement suggestions>"],
    "next_steps": ["<3-5 immediate actions the user should take>"],
    "readiness_score": <0-100 integer estimating current readiness for similar roles>,
    "summary_message": "<supportive, mentor-style 2-3 sentence summary. Be encouraging but honest.>"
}

IMPORTANT:
- Be specific and actionable in all recommendations
- Base your analysis on the actual feedback provided
- If information is missing, make reasonable inferences but note them`,
		sourceDisplay,
		defaultString(input.Company, "Not specified"), defaultString(input.Role, "Not specified"),
		defaultString(input.InterviewType, "Not specified"), defaultString(input.Stage, "Not specified"),
		defaultString(input.Message, "No feedback text provided"),
		profileStr, skillsStr, historyStr,
		source, input.Company, input.Role)

	result, err := a.llm.CallJSON(ctx, prompt, feedbackSystemPrompt, 0.3, 4000)
	processingMs := time.Since(start).Milliseconds()
	if err != nil {
		return a.fallbackComprehensive(input, processingMs)
	}

	analysis := map[string]interface{}{
		"source":           defaultString(getString(result, "source"), source),
		"company":          defaultString(getString(result, "company"), input.Company),
		"role":             defaultString(getString(result, "role"), input.Role),
		"confidence_level": defaultString(getString(result, "confidence_level"), "medium"),
		"readiness_score":  int(getNumber(result, "readiness_score", 50)),
		"summary_message":  defaultString(getString(result, "summary_message"), "Analysis complete. Focus on the identified areas for improvement."),
	}
	for _, key := range comprehensiveListKeys {
		analysis[key] = emptyIfNil(getList(result, key))
	}
	analysis["processing_time_ms"] = processingMs

	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: analysis}
}

func (a *FeedbackAgent) fallbackComprehensive(input FeedbackInput, processingMs int64) Result {
	return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: map[string]interface{}{
		"source":  defaultString(input.Source, "unknown"),
		"company": input.Company,
		"role":    input.Role,
		"identified_reasons": []interface{}{
			"Unable to perform detailed analysis",
			"Consider reviewing the feedback manually",
		},
		"skill_gaps":         []interface{}{"Technical skills assessment needed"},
		"behavioral_gaps":    []interface{}{"Communication assessment needed"},
		"resume_issues":      []interface{}{"Resume review recommended"},
		"technical_gaps":     []interface{}{"Technical assessment needed"},
		"strengths_detected": []interface{}{"Persistence in job search", "Openness to feedback"},
		"confidence_level":   "low",
		"recommended_actions": []interface{}{
			"Review the feedback carefully",
			"Identify specific areas mentioned",
			"Create a targeted improvement plan",
			"Practice mock interviews",
			"Update resume based on feedback",
		},
		"learning_plan": []interface{}{
			map[string]interface{}{"area": "Technical Skills", "action": "Review fundamentals", "timeline": "2 weeks"},
			map[string]interface{}{"area": "Interview Skills", "action": "Practice with peers", "timeline": "1 week"},
		},
		"project_suggestions": []interface{}{
			"Build a portfolio project related to target role",
			"Contribute to open source",
		},
		"resume_improvements": []interface{}{
			"Add quantified achievements",
			"Tailor to target role",
		},
		"next_steps": []interface{}{
			"Re-read feedback for specific insights",
			"Update skills inventory",
			"Practice identified weak areas",
		},
		"readiness_score":    50,
		"summary_message":    "We couldn't perform a detailed AI analysis at this time. Please review the feedback manually and focus on any specific areas mentioned. Every setback is a learning opportunity!",
		"processing_time_ms": processingMs,
	}}
}

func (a *FeedbackAgent) fallbackRejectionAnalysis() Result {
	return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: map[string]interface{}{
		"rejection_analysis": map[string]interface{}{
			"likely_reasons":         []interface{}{"Competition was strong", "Skill mismatch possible"},
			"skill_gaps_identified":  []interface{}{"Further assessment needed"},
		},
		"action_items": []interface{}{
			map[string]interface{}{"action": "Review job requirements", "priority": "high", "timeline": "This week"},
			map[string]interface{}{"action": "Practice technical skills", "priority": "high", "timeline": "Ongoing"},
		},
		"skills_to_focus": []interface{}{"Technical fundamentals", "Communication"},
		"encouragement":   "Every rejection is a step closer to the right opportunity. Keep learning and improving!",
		"next_steps":      []interface{}{"Continue learning", "Apply to similar roles", "Seek feedback"},
	}}
}

func (a *FeedbackAgent) fallbackPatterns() map[string]interface{} {
	return map[string]interface{}{
		"recurring_themes": []interface{}{
			map[string]interface{}{"theme": "Competitive market", "frequency": "Common", "severity": "significant"},
		},
		"skill_gaps_pattern":    []interface{}{"Technical depth"},
		"strength_patterns":     []interface{}{"Persistence", "Learning attitude"},
		"priority_improvements": []interface{}{"Focus on core skills", "Practice interviewing"},
		"summary":               "Based on limited data. Continue tracking for better insights.",
	}
}

func (a *FeedbackAgent) fallbackProgress(rate int) map[string]interface{} {
	status := "behind"
	if rate >= 70 {
		status = "on_track"
	} else if rate >= 40 {
		status = "needs_attention"
	}

	return map[string]interface{}{
		"progress_assessment": map[string]interface{}{
			"overall_status":           status,
			"completion_rate_analysis": fmt.Sprintf("%d%% completion rate", rate),
			"pace_analysis":            "Steady progress",
		},
		"achievements":    []interface{}{"Making progress on learning goals"},
		"momentum_tips":   []interface{}{"Stay consistent", "Celebrate small wins"},
		"next_week_focus": []interface{}{"Continue current tasks", "Review completed work"},
	}
}

func (a *FeedbackAgent) fallbackReport(input WeeklyReportInput) map[string]interface{} {
	accomplishments := []interface{}{"Continued learning"}
	if len(input.TasksCompleted) > 0 {
		accomplishments = nil
		for _, t := range input.TasksCompleted {
			accomplishments = append(accomplishments, t)
		}
	}

	week := input.CurrentWeek
	if week == 0 {
		week = 1
	}

	return map[string]interface{}{
		"report_title":        fmt.Sprintf("Week %d Progress Report", week),
		"week_summary":        "Keep up the good work on your career journey!",
		"key_accomplishments": accomplishments,
		"readiness_change":    map[string]interface{}{"trend": "improving"},
		"insights":            []interface{}{"Consistent effort leads to results"},
		"next_week_preview": map[string]interface{}{
			"focus_areas":     []interface{}{"Continue current path"},
			"goals":           []interface{}{"Complete weekly tasks"},
			"recommendations": []interface{}{"Stay focused and motivated"},
		},
		"motivation_message": "You're making progress every day. Keep going!",
		"agent_thoughts":     "Steady progress is the key to success.",
	}
}
