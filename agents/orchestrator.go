package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careeragent/models"
	"careeragent/utils"
)

const interviewPrepSystemPrompt = `You are an expert interview preparation coach. Your role is to:
1. Identify key skills needed for the target role
2. Suggest relevant projects to showcase
3. Provide interview preparation tips specific to the company and role
4. Recommend areas to study and practice

Be specific, actionable, and encouraging.`

// NextAction is the orchestrator's recommendation for what the user
// should do next.
type NextAction struct {
	Action      string `json:"action"`
	Priority    string `json:"priority"`
	Message     string `json:"message"`
	AgentToCall string `json:"agent_to_call,omitempty"`
}

// Opportunity is a role a user can be matched against.
type Opportunity struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Requirements []string `json:"requirements"`
}

// opportunityCatalog backs opportunity matching. Roles with no
// requirements score a flat 50.
var opportunityCatalog = []Opportunity{
	{Title: "Full Stack Developer", Company: "TechStart Inc", Location: "Remote", Requirements: roleRequirements["Full Stack Developer"].Required},
	{Title: "Frontend Developer", Company: "PixelWorks", Location: "Remote", Requirements: roleRequirements["Frontend Developer"].Required},
	{Title: "Backend Developer", Company: "DataFlow Systems", Location: "Hybrid", Requirements: roleRequirements["Backend Developer"].Required},
	{Title: "Data Scientist", Company: "InsightLabs", Location: "Remote", Requirements: roleRequirements["Data Scientist"].Required},
	{Title: "Software Engineer", Company: "CoreBuild", Location: "On-site", Requirements: roleRequirements["Software Engineer"].Required},
	{Title: "Junior Developer", Company: "Launchpad Studio", Location: "Remote"},
}

// Orchestrator coordinates every agent through the loop:
// observe, reason, plan, act, store, adapt.
type Orchestrator struct {
	name       string
	observer   *StateObserver
	store      *Store
	llm        ModelCaller
	reasoning  *ReasoningAgent
	skillGap   *SkillGapAgent
	planner    *PlannerAgent
	feedback   *FeedbackAgent
	embeddings *EmbeddingGenerator
	logger     *utils.Logger
}

func NewOrchestrator(store *Store, llm ModelCaller, logger *utils.Logger) *Orchestrator {
	return &Orchestrator{
		name:       "AgentOrchestrator",
		observer:   NewStateObserver(store),
		store:      store,
		llm:        llm,
		reasoning:  NewReasoningAgent(llm),
		skillGap:   NewSkillGapAgent(llm),
		planner:    NewPlannerAgent(llm),
		feedback:   NewFeedbackAgent(llm),
		embeddings: NewEmbeddingGenerator(),
		logger:     logger,
	}
}

func (o *Orchestrator) Observer() *StateObserver { return o.observer }

// RunAgent is the single entry point for all agent events. Any failure
// inside a handler is captured as a structured error result and the
// session is marked failed.
func (o *Orchestrator) RunAgent(ctx context.Context, eventType string, userID int, payload map[string]interface{}) map[string]interface{} {
	if payload == nil {
		payload = map[string]interface{}{}
	}

	sessionID, err := o.store.Sessions.Create(userID, eventType)
	if err != nil {
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	result, err := o.runEvent(ctx, eventType, userID, payload)
	if err != nil {
		o.logger.Error("agent event failed", err, map[string]interface{}{
			"event":   eventType,
			"user_id": userID,
		})
		if failErr := o.store.Sessions.Fail(sessionID, err.Error()); failErr != nil {
			o.logger.Error("session fail update error", failErr)
		}
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	thoughts, _ := result["agent_thoughts"].(string)
	o.storeAgentResult(userID, eventType, thoughts)

	if encoded, marshalErr := json.Marshal(result); marshalErr == nil {
		if completeErr := o.store.Sessions.Complete(sessionID, string(encoded)); completeErr != nil {
			o.logger.Error("session complete error", completeErr)
		}
	}

	return map[string]interface{}{
		"status": "success",
		"event":  eventType,
		"result": result,
		"agent_state": map[string]interface{}{
			"user_id":    userID,
			"timestamp":  time.Now().Format(time.RFC3339),
			"session_id": sessionID,
		},
	}
}

func (o *Orchestrator) runEvent(ctx context.Context, eventType string, userID int, payload map[string]interface{}) (result map[string]interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("agent panic: %v", r)
		}
	}()

	state, err := o.observer.Observe(userID)
	if err != nil {
		return nil, err
	}

	switch eventType {
	case "skill_gap":
		result = o.handleSkillGapEvent(ctx, state, payload)
	case "roadmap":
		result = o.handleRoadmapEvent(ctx, state, payload)
	case "feedback":
		result = o.handleFeedbackEvent(ctx, state, payload)
	case "profile_update":
		result = o.handleProfileUpdateEvent(ctx, state, payload)
	case "application", "apply_role":
		result = o.handleApplicationEvent(ctx, state, payload)
	case "interview_prep":
		result = o.handleInterviewPrepEvent(ctx, state, payload)
	case "full_analysis":
		result = o.RunFullAnalysis(ctx, userID)
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	// Cascade: fresh profile or feedback signal invalidates the roadmap
	// when gaps are already known.
	if (eventType == "profile_update" || eventType == "feedback") &&
		result["status"] == "success" && len(state.SkillGaps) > 0 {
		o.regenerateRoadmap(ctx, state)
	}

	return result, nil
}

// ReasonNextAction decides the single most valuable next step from the
// current state.
func (o *Orchestrator) ReasonNextAction(state *UserState) NextAction {
	if state.PrimaryGoal == nil {
		return NextAction{
			Action:   "set_goal",
			Priority: "critical",
			Message:  "Set your career goal to get personalized guidance",
		}
	}
	if len(state.Skills) < 3 {
		return NextAction{
			Action:   "add_skills",
			Priority: "high",
			Message:  "Add more skills to your profile for accurate analysis",
		}
	}
	if len(state.SkillGaps) == 0 {
		return NextAction{
			Action:      "analyze_gaps",
			Priority:    "high",
			Message:     "Let's analyze your skill gaps for your target role",
			AgentToCall: "skill_gap_agent",
		}
	}
	if len(state.Plans) == 0 {
		return NextAction{
			Action:      "create_plan",
			Priority:    "high",
			Message:     "Time to create your personalized learning roadmap",
			AgentToCall: "planner_agent",
		}
	}
	if state.Stats.CompletionRate < 50 && state.Stats.TotalTasks > 5 {
		return NextAction{
			Action:      "review_progress",
			Priority:    "medium",
			Message:     "Let's review your progress and adjust the plan if needed",
			AgentToCall: "feedback_agent",
		}
	}
	return NextAction{
		Action:   "continue_learning",
		Priority: "normal",
		Message:  "Keep up the great work! Focus on your current tasks.",
	}
}

// RunFullAnalysis runs profile reasoning and gap analysis together and
// refreshes the stored readiness score.
func (o *Orchestrator) RunFullAnalysis(ctx context.Context, userID int) map[string]interface{} {
	state, err := o.observer.Observe(userID)
	if err != nil {
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	targetRole := state.TargetRole("Software Developer")
	profile := Profile{Skills: state.Skills, TargetRole: targetRole}
	if state.Profile != nil {
		profile.Name = state.Profile.Name
		profile.CurrentLevel = state.Profile.CurrentLevel
		profile.CareerGoal = targetRole
	}

	reasoningResult := o.reasoning.AnalyzeProfile(ctx, profile)
	gapResult := o.skillGap.AnalyzeGaps(ctx, state.Skills, targetRole)
	nextAction := o.ReasonNextAction(state)
	insights := o.generateInsights(state, reasoningResult.Payload)
	thoughts := o.generateThoughts(state, reasoningResult.Payload)

	readinessScore := int(getNumber(reasoningResult.Payload, "readiness_score", 0))
	result := map[string]interface{}{
		"status":          "success",
		"user_id":         userID,
		"readiness_score": readinessScore,
		"reasoning":       reasoningResult.ToMap(),
		"skill_gaps":      gapResult.ToMap(),
		"next_action":     nextAction,
		"insights":        insights,
		"stats":           state.Stats,
		"agent_thoughts":  thoughts,
	}

	if readinessScore > 0 {
		if err := o.store.Users.UpdateReadiness(userID, readinessScore); err != nil {
			o.logger.Error("readiness update failed", err)
		}
		if err := o.store.Readiness.Record(userID, readinessScore, getMap(reasoningResult.Payload, "category_scores")); err != nil {
			o.logger.Error("readiness history failed", err)
		}
	}

	content := fmt.Sprintf("Full analysis completed. Readiness: %d%%. Next action: %s.", readinessScore, nextAction.Action)
	o.saveMemory(userID, content, "reasoning", map[string]interface{}{"result_summary": true})

	return result
}

// AnalyzeAndPlan chains gap analysis into roadmap generation and
// persists both.
func (o *Orchestrator) AnalyzeAndPlan(ctx context.Context, userID int) map[string]interface{} {
	state, err := o.observer.Observe(userID)
	if err != nil {
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	targetRole := state.TargetRole("Software Developer")
	timeline := state.Timeline("3 months")

	gapResult := o.skillGap.AnalyzeGaps(ctx, state.Skills, targetRole)
	gaps := gapsFromAnalysis(getList(gapResult.Payload, "skill_gaps"))

	roadmapResult := o.planner.CreateRoadmap(ctx, gapSummaries(gaps), targetRole, timeline)

	var goalID *int
	if state.PrimaryGoal != nil {
		goalID = &state.PrimaryGoal.ID
		if len(gaps) > 0 {
			if err := o.store.Gaps.Replace(userID, goalID, gaps); err != nil {
				o.logger.Error("gap save failed", err)
			}
		}
	}

	weeklyPlans := getList(roadmapResult.Payload, "weekly_plans")
	saved := o.savePlans(userID, goalID, weeklyPlans)

	return map[string]interface{}{
		"status":      "success",
		"skill_gaps":  gapResult.ToMap(),
		"roadmap":     roadmapResult.ToMap(),
		"saved_plans": saved,
	}
}

// DashboardData assembles the dashboard view in one pass.
func (o *Orchestrator) DashboardData(ctx context.Context, userID int) map[string]interface{} {
	state, err := o.observer.Observe(userID)
	if err != nil {
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	var readiness map[string]interface{}
	if len(state.Skills) > 0 && state.PrimaryGoal != nil {
		r := o.reasoning.CalculateReadiness(ctx, state.Skills, state.PrimaryGoal.TargetRole)
		readiness = r.Payload
	}

	var currentPlan *models.LearningPlan
	for i := range state.Plans {
		if state.Plans[i].Status == "pending" || state.Plans[i].Status == "in_progress" {
			currentPlan = &state.Plans[i]
			break
		}
	}

	user := map[string]interface{}{"name": "User"}
	var targetRole interface{}
	if state.Profile != nil {
		user = map[string]interface{}{
			"name":            state.Profile.Name,
			"current_role":    state.Profile.CurrentRole,
			"current_level":   state.Profile.CurrentLevel,
			"readiness_score": state.Profile.ReadinessScore,
		}
	}
	if state.PrimaryGoal != nil {
		targetRole = state.PrimaryGoal.TargetRole
	}

	recentFeedback := state.RecentFeedback
	if len(recentFeedback) > 3 {
		recentFeedback = recentFeedback[:3]
	}

	return map[string]interface{}{
		"user":             user,
		"target_role":      targetRole,
		"readiness":        readiness,
		"stats":            state.Stats,
		"skill_gaps_count": len(state.SkillGaps),
		"current_plan":     currentPlan,
		"next_action":      o.ReasonNextAction(state),
		"insights":         o.generateInsights(state, nil),
		"recent_feedback":  recentFeedback,
		"applications_summary": map[string]interface{}{
			"total":  state.Stats.TotalApplications,
			"active": state.Stats.ActiveApplications,
		},
	}
}

// OpportunityMatches scores the opportunity catalog against the user's
// skills.
func (o *Orchestrator) OpportunityMatches(userID int) map[string]interface{} {
	state, err := o.observer.Observe(userID)
	if err != nil {
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	matched := make([]map[string]interface{}, 0, len(opportunityCatalog))
	for _, opp := range opportunityCatalog {
		entry := map[string]interface{}{
			"title":        opp.Title,
			"company":      opp.Company,
			"location":     opp.Location,
			"requirements": opp.Requirements,
		}
		if len(opp.Requirements) > 0 {
			comparison := o.skillGap.CompareWithJob(state.Skills, opp.Requirements)
			entry["match_percentage"] = int(getNumber(comparison.Payload, "match_percentage", 0))
			entry["matching_skills"] = emptyIfNil(getList(comparison.Payload, "matching_skills"))
			entry["missing_skills"] = emptyIfNil(getList(comparison.Payload, "missing_skills"))
		} else {
			entry["match_percentage"] = 50
		}
		matched = append(matched, entry)
	}

	for i := 1; i < len(matched); i++ {
		for j := i; j > 0 && matched[j]["match_percentage"].(int) > matched[j-1]["match_percentage"].(int); j-- {
			matched[j], matched[j-1] = matched[j-1], matched[j]
		}
	}

	return map[string]interface{}{
		"status":        "success",
		"opportunities": matched,
		"total":         len(matched),
	}
}

// AgentState reports a compact view of where the user stands.
func (o *Orchestrator) AgentState(userID int) map[string]interface{} {
	state, err := o.observer.Observe(userID)
	if err != nil {
		return map[string]interface{}{"status": "error", "message": err.Error()}
	}

	readinessScore := 0
	if state.Profile != nil {
		readinessScore = state.Profile.ReadinessScore
	}

	return map[string]interface{}{
		"status":             "success",
		"user_id":            userID,
		"has_goal":           state.PrimaryGoal != nil,
		"skills_count":       len(state.Skills),
		"gaps_count":         len(state.SkillGaps),
		"plans_count":        len(state.Plans),
		"feedback_count":     len(state.RecentFeedback),
		"applications_count": len(state.Applications),
		"readiness_score":    readinessScore,
		"stats":              state.Stats,
		"next_action":        o.ReasonNextAction(state),
	}
}

func (o *Orchestrator) handleSkillGapEvent(ctx context.Context, state *UserState, payload map[string]interface{}) map[string]interface{} {
	targetRole := defaultString(getString(payload, "target_role"), state.TargetRole("Software Developer"))

	gapResult := o.skillGap.AnalyzeGaps(ctx, state.Skills, targetRole)

	if gapResult.Status == StatusSuccess && state.PrimaryGoal != nil {
		gaps := gapsFromAnalysis(getList(gapResult.Payload, "skill_gaps"))
		if len(gaps) > 0 {
			if err := o.store.Gaps.Replace(state.UserID, &state.PrimaryGoal.ID, gaps); err != nil {
				o.logger.Error("gap save failed", err)
			}
		}
	}

	return map[string]interface{}{
		"status":               "success",
		"analysis":             gapResult.Payload,
		"skill_gaps":           emptyIfNil(getList(gapResult.Payload, "skill_gaps")),
		"readiness_percentage": int(getNumber(gapResult.Payload, "readiness_percentage", 0)),
		"critical_path":        emptyIfNil(getList(gapResult.Payload, "critical_path")),
		"agent_thoughts":       fmt.Sprintf("Analyzed %d skills against %s requirements.", len(state.Skills), targetRole),
	}
}

func (o *Orchestrator) handleRoadmapEvent(ctx context.Context, state *UserState, payload map[string]interface{}) map[string]interface{} {
	targetRole := defaultString(getString(payload, "target_role"), state.TargetRole("Software Developer"))
	timeline := defaultString(getString(payload, "timeline"), state.Timeline("3 months"))

	var goalID *int
	if state.PrimaryGoal != nil {
		goalID = &state.PrimaryGoal.ID
	}

	gaps := state.SkillGaps
	if len(gaps) == 0 {
		gapResult := o.skillGap.AnalyzeGaps(ctx, state.Skills, targetRole)
		gaps = gapsFromAnalysis(getList(gapResult.Payload, "skill_gaps"))
		if goalID != nil && len(gaps) > 0 {
			if err := o.store.Gaps.Replace(state.UserID, goalID, gaps); err != nil {
				o.logger.Error("gap save failed", err)
			}
		}
	}

	roadmapResult := o.planner.CreateRoadmap(ctx, gapSummaries(gaps), targetRole, timeline)
	weeklyPlans := getList(roadmapResult.Payload, "weekly_plans")

	if goalID != nil {
		if err := o.store.Plans.Clear(state.UserID, goalID); err != nil {
			o.logger.Error("plan clear failed", err)
		}
	}
	saved := o.savePlans(state.UserID, goalID, weeklyPlans)

	return map[string]interface{}{
		"status":         "success",
		"roadmap":        roadmapResult.Payload,
		"weekly_plans":   emptyIfNil(weeklyPlans),
		"total_weeks":    saved,
		"agent_thoughts": fmt.Sprintf("Created %d-week roadmap for %s.", saved, targetRole),
	}
}

func (o *Orchestrator) handleFeedbackEvent(ctx context.Context, state *UserState, payload map[string]interface{}) map[string]interface{} {
	fd := payload
	if nested := getMap(payload, "feedback"); nested != nil {
		fd = nested
	}

	input := FeedbackInput{
		Source:        getString(fd, "source"),
		Company:       getString(fd, "company"),
		Role:          getString(fd, "role"),
		Stage:         getString(fd, "stage"),
		InterviewType: getString(fd, "interview_type"),
		Message:       getString(fd, "message"),
		UserSkills:    formatSkills(state.Skills),
	}

	var analysis Result
	if input.Source == "rejection" {
		analysis = o.feedback.AnalyzeRejection(ctx, input)
	} else {
		analysis = o.feedback.AnalyzeInterview(ctx, input)
	}
	analysisResult := analysis.Payload

	source := defaultString(input.Source, "interview")
	if _, err := o.store.Feedback.Create(state.UserID, source, input.Message, models.FlattenAnalysis(analysisResult)); err != nil {
		o.logger.Error("feedback save failed", err)
	}

	content := fmt.Sprintf("Feedback: %s from %s", source, defaultString(input.Company, "Unknown"))
	o.saveMemory(state.UserID, content, "feedback", map[string]interface{}{"analysis_summary": "Feedback analyzed"})

	if err := o.store.Events.Log(state.UserID, "feedback_received", map[string]interface{}{
		"source":  input.Source,
		"company": input.Company,
		"role":    input.Role,
	}); err != nil {
		o.logger.Error("career event save failed", err)
	}

	var patterns interface{}
	history, err := o.store.Feedback.ListByUser(state.UserID, 10)
	if err == nil && len(history) >= 3 {
		patterns = o.feedback.DetectPatterns(ctx, history).ToMap()
	}

	roadmapUpdates := emptyIfNil(getList(analysisResult, "roadmap_updates"))
	skillsToFocus := emptyIfNil(getList(analysisResult, "skills_to_focus"))

	return map[string]interface{}{
		"status":                    "success",
		"analysis":                  analysisResult,
		"patterns":                  patterns,
		"roadmap_updates":           roadmapUpdates,
		"skills_to_focus":           skillsToFocus,
		"should_regenerate_roadmap": len(roadmapUpdates) > 0,
		"agent_thoughts":            fmt.Sprintf("Processed feedback and identified %d skills to focus on.", len(skillsToFocus)),
	}
}

func (o *Orchestrator) handleProfileUpdateEvent(ctx context.Context, state *UserState, payload map[string]interface{}) map[string]interface{} {
	analysis := o.RunFullAnalysis(ctx, state.UserID)

	shouldUpdate := false
	if v, ok := payload["skills_changed"].(bool); ok && v {
		shouldUpdate = true
	}
	if v, ok := payload["goal_changed"].(bool); ok && v {
		shouldUpdate = true
	}

	return map[string]interface{}{
		"status":                "success",
		"analysis":              analysis,
		"should_update_roadmap": shouldUpdate,
		"agent_thoughts":        "Profile updated. Re-analyzed career readiness.",
	}
}

func (o *Orchestrator) handleApplicationEvent(ctx context.Context, state *UserState, payload map[string]interface{}) map[string]interface{} {
	action := getString(payload, "action")

	switch action {
	case "", "match":
		matches := o.OpportunityMatches(state.UserID)
		opportunities, _ := matches["opportunities"].([]map[string]interface{})
		return map[string]interface{}{
			"status":         "success",
			"opportunities":  opportunities,
			"total":          len(opportunities),
			"agent_thoughts": fmt.Sprintf("Found %d matching opportunities.", len(opportunities)),
		}
	case "analyze":
		requirements := toStringSlice(getList(payload, "requirements"))
		comparison := o.skillGap.CompareWithJob(state.Skills, requirements)
		return map[string]interface{}{
			"status":         "success",
			"match_analysis": comparison.Payload,
			"agent_thoughts": "Analyzed match against job requirements.",
		}
	}

	return map[string]interface{}{"status": "success", "message": "Application event processed", "opportunities": []interface{}{}}
}

func (o *Orchestrator) handleInterviewPrepEvent(ctx context.Context, state *UserState, payload map[string]interface{}) map[string]interface{} {
	company := defaultString(getString(payload, "company"), "the company")
	role := defaultString(getString(payload, "role"), "the position")

	var skillNames []string
	for i, s := range state.Skills {
		if i >= 15 {
			break
		}
		skillNames = append(skillNames, s.SkillName)
	}

	prompt := fmt.Sprintf(`Provide comprehensive interview preparation guidance for:

## Target Position
- Company: %s
- Role: %s

## Candidate Profile
- Current Skills: %s

Provide detailed interview preparation advice in JSON format:
{
    "key_skills_to_highlight": [
        {"skill": "<skill name>", "why": "<relevance to role>", "how_to_demonstrate": "<specific example>"}
    ],
    "suggested_projects": [
        {
            "title": "<project idea>",
            "description": "<what to build>",
            "skills_demonstrated": ["<skills>"],
            "relevance": "<why this helps for the interview>",
            "complexity": "<beginner|intermediate|advanced>",
            "estimated_time": "<time to complete>"
        }
    ],
    "technical_topics_to_study": [
        {"topic": "<topic>", "priority": "<high|medium|low>", "resources": ["<resource suggestions>"]}
    ],
    "interview_preparation_tips": [
        {"category": "<behavioral|technical|company-specific>", "tip": "<specific advice>", "why": "<importance>"}
    ],
    "common_questions": [
        {"question": "<likely interview question>", "approach": "<how to answer>", "example_points": ["<key points to mention>"]}
    ],
    "red_flags_to_address": [
        {"concern": "<potential weakness>", "how_to_address": "<mitigation strategy>"}
    ],
    "company_culture_prep": {
        "company_values": "<research about company culture>",
        "questions_to_ask": ["<smart questions for interviewer>"],
        "alignment_points": ["<how your background aligns>"]
    },
    "30_day_prep_plan": {
        "week_1": ["<tasks for week 1>"],
        "week_2": ["<tasks for week 2>"],
        "week_3": ["<tasks for week 3>"],
        "week_4": ["<tasks for week 4>"]
    },
    "confidence_boosters": ["<positive aspects of their profile>"],
    "final_checklist": ["<things to do right before interview>"]
}

Provide 3-5 items in each category. Be specific to the %s role at %s.`,
		company, role, strings.Join(skillNames, ", "), role, company)

	result, err := o.llm.CallJSON(ctx, prompt, interviewPrepSystemPrompt, 0.6, 6000)
	if err != nil {
		result = o.fallbackInterviewPrep(company, role, skillNames)
	}

	return map[string]interface{}{
		"status":         "success",
		"suggestions":    result,
		"company":        company,
		"role":           role,
		"agent_thoughts": fmt.Sprintf("Generated comprehensive interview preparation guide for %s at %s.", role, company),
	}
}

func (o *Orchestrator) fallbackInterviewPrep(company, role string, skillNames []string) map[string]interface{} {
	highlight := make([]interface{}, 0, 3)
	for i, skill := range skillNames {
		if i >= 3 {
			break
		}
		highlight = append(highlight, map[string]interface{}{
			"skill":              skill,
			"why":                fmt.Sprintf("Essential for %s", role),
			"how_to_demonstrate": "Discuss relevant projects",
		})
	}

	demonstrated := skillNames
	if len(demonstrated) > 3 {
		demonstrated = demonstrated[:3]
	}

	return map[string]interface{}{
		"key_skills_to_highlight": highlight,
		"suggested_projects": []interface{}{
			map[string]interface{}{
				"title":               fmt.Sprintf("%s Portfolio Project", role),
				"description":         fmt.Sprintf("Build a project showcasing skills needed for %s", role),
				"skills_demonstrated": demonstrated,
				"relevance":           "Demonstrates practical application",
				"complexity":          "intermediate",
				"estimated_time":      "2-3 weeks",
			},
		},
		"technical_topics_to_study": []interface{}{
			map[string]interface{}{"topic": "Data Structures & Algorithms", "priority": "high", "resources": []interface{}{"LeetCode", "HackerRank"}},
			map[string]interface{}{"topic": "System Design", "priority": "medium", "resources": []interface{}{"System Design Primer"}},
		},
		"interview_preparation_tips": []interface{}{
			map[string]interface{}{"category": "technical", "tip": "Practice coding problems daily", "why": "Builds confidence"},
			map[string]interface{}{"category": "behavioral", "tip": "Prepare STAR method examples", "why": "Structures your responses"},
		},
		"common_questions": []interface{}{
			map[string]interface{}{"question": "Tell me about yourself", "approach": "Focus on relevant experience", "example_points": []interface{}{"Background", "Skills", "Why this role"}},
			map[string]interface{}{"question": fmt.Sprintf("Why %s?", company), "approach": "Show research and alignment", "example_points": []interface{}{"Company values", "Product interest", "Growth opportunity"}},
		},
		"red_flags_to_address": []interface{}{},
		"company_culture_prep": map[string]interface{}{
			"company_values":   fmt.Sprintf("Research %s's mission and values", company),
			"questions_to_ask": []interface{}{"What does success look like in this role?", "What are the team dynamics?"},
			"alignment_points": []interface{}{"Your skills match the role", "You're passionate about their mission"},
		},
		"30_day_prep_plan": map[string]interface{}{
			"week_1": []interface{}{"Research company", "Practice common questions", "Review fundamentals"},
			"week_2": []interface{}{"Work on portfolio project", "Practice technical problems"},
			"week_3": []interface{}{"Mock interviews", "Refine project"},
			"week_4": []interface{}{"Final review", "Prepare questions to ask"},
		},
		"confidence_boosters": []interface{}{
			fmt.Sprintf("You have %d skills in your profile", len(skillNames)),
			fmt.Sprintf("Your background aligns with %s requirements", role),
		},
		"final_checklist": []interface{}{
			"Test your setup (if virtual)",
			"Prepare questions to ask",
			"Review your resume",
			"Get good sleep",
		},
	}
}

func (o *Orchestrator) generateInsights(state *UserState, reasoning map[string]interface{}) []string {
	var insights []string

	switch {
	case state.Stats.CompletionRate >= 80:
		insights = append(insights, "Excellent progress! You're ahead of schedule.")
	case state.Stats.CompletionRate >= 50:
		insights = append(insights, "Good progress! Keep up the momentum.")
	case state.Stats.CompletionRate > 0:
		insights = append(insights, "You're making progress. Try to pick up the pace a bit.")
	}

	highPriority := 0
	for _, g := range state.SkillGaps {
		if g.Priority == "high" {
			highPriority++
		}
	}
	if highPriority > 0 {
		insights = append(insights, fmt.Sprintf("Focus on %d high-priority skills for your target role.", highPriority))
	}

	if reasoning != nil && getNumber(reasoning, "readiness_score", 0) >= 70 {
		insights = append(insights, "You're getting close to job-ready! Consider applying soon.")
	}

	if state.Stats.ActiveApplications > 0 {
		insights = append(insights, fmt.Sprintf("You have %d active application(s). Good luck!", state.Stats.ActiveApplications))
	}

	if len(insights) == 0 {
		insights = []string{"Keep learning and building your skills!"}
	}
	return insights
}

func (o *Orchestrator) generateThoughts(state *UserState, reasoning map[string]interface{}) string {
	name := "user"
	if state.Profile != nil && state.Profile.Name != "" {
		name = state.Profile.Name
	}

	thoughts := []string{fmt.Sprintf("Analyzed profile for %s.", name)}
	if state.PrimaryGoal != nil {
		thoughts = append(thoughts, fmt.Sprintf("Target role: %s.", state.PrimaryGoal.TargetRole))
	}
	if reasoning != nil {
		if score := getNumber(reasoning, "readiness_score", 0); score > 0 {
			thoughts = append(thoughts, fmt.Sprintf("Career readiness: %d%%.", int(score)))
		}
	}
	if state.Stats.CompletionRate > 0 {
		thoughts = append(thoughts, fmt.Sprintf("Task completion: %d%%.", state.Stats.CompletionRate))
	}
	return strings.Join(thoughts, " ")
}

// regenerateRoadmap rebuilds the plan inline after a profile or feedback
// event. Failures are contained here so the triggering event still
// reports its own result.
func (o *Orchestrator) regenerateRoadmap(ctx context.Context, state *UserState) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("roadmap regeneration panic", fmt.Errorf("%v", r))
		}
	}()
	if state.PrimaryGoal == nil {
		return
	}
	o.handleRoadmapEvent(ctx, state, map[string]interface{}{
		"target_role": state.PrimaryGoal.TargetRole,
		"timeline":    state.Timeline("3 months"),
	})
}

func (o *Orchestrator) saveMemory(userID int, content, memoryType string, metadata map[string]interface{}) {
	embedding := o.embeddings.Generate(content)
	if _, err := o.store.Memories.Save(userID, content, memoryType, metadata, embedding); err != nil {
		o.logger.Error("memory save failed", err)
	}
}

func (o *Orchestrator) storeAgentResult(userID int, eventType, thoughts string) {
	content := fmt.Sprintf("Agent %s: %s", eventType, defaultString(thoughts, "Completed"))
	o.saveMemory(userID, content, "agent_result", map[string]interface{}{
		"event_type": eventType,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

func (o *Orchestrator) savePlans(userID int, goalID *int, weeklyPlans []interface{}) int {
	saved := 0
	for i, raw := range weeklyPlans {
		plan, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		week := int(getNumber(plan, "week_number", float64(i+1)))
		title := defaultString(getString(plan, "title"), fmt.Sprintf("Week %d", week))
		focus := defaultString(getString(plan, "description"), getString(plan, "focus_area"))

		var tasks []models.PlanTask
		for _, t := range getList(plan, "tasks") {
			tm, ok := t.(map[string]interface{})
			if !ok {
				continue
			}
			tasks = append(tasks, models.PlanTask{
				Task:           defaultString(getString(tm, "title"), getString(tm, "task")),
				Type:           defaultString(getString(tm, "type"), "learn"),
				EstimatedHours: int(getNumber(tm, "estimated_hours", 0)),
			})
		}

		if _, err := o.store.Plans.Upsert(userID, goalID, week, title, focus, tasks); err != nil {
			o.logger.Error("plan save failed", err, map[string]interface{}{"week": week})
			continue
		}
		saved++
	}
	return saved
}

// gapsFromAnalysis converts model gap output into persistable rows.
func gapsFromAnalysis(list []interface{}) []models.SkillGap {
	gaps := make([]models.SkillGap, 0, len(list))
	for _, raw := range list {
		g, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		name := getString(g, "skill_name")
		if name == "" {
			continue
		}
		gap := models.SkillGap{
			SkillName:     name,
			Priority:      defaultString(getString(g, "priority"), "medium"),
			CurrentLevel:  defaultString(getString(g, "current_level"), "none"),
			TargetLevel:   defaultString(getString(g, "required_level"), getString(g, "target_level")),
			EstimatedTime: defaultString(getString(g, "estimated_learning_time"), getString(g, "estimated_time")),
		}
		for _, rr := range getList(g, "learning_resources") {
			rm, ok := rr.(map[string]interface{})
			if !ok {
				continue
			}
			gap.LearningResources = append(gap.LearningResources, models.LearningResource{
				Title:    getString(rm, "title"),
				Type:     getString(rm, "type"),
				URL:      getString(rm, "url"),
				Platform: getString(rm, "platform"),
				Duration: getString(rm, "duration"),
			})
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

func gapSummaries(gaps []models.SkillGap) []GapSummary {
	out := make([]GapSummary, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, GapSummary{SkillName: g.SkillName, Priority: g.Priority, CurrentLevel: g.CurrentLevel})
	}
	return out
}
