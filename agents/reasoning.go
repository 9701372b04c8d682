package agents

import (
	"context"
	"fmt"
	"strings"

	"careeragent/models"
)

const reasoningSystemPrompt = `You are an expert career advisor and AI reasoning agent. Your role is to:
1. Deeply analyze user profiles, skills, and goals
2. Provide realistic career path recommendations
3. Calculate job readiness scores based on skill alignment
4. Give clear, actionable reasoning for your decisions

Always be encouraging but realistic. Focus on growth potential and practical next steps.
Consider industry trends and job market realities in your analysis.`

// ReasoningAgent is the thinking engine: profile analysis, role
// comparison, readiness scoring.
type ReasoningAgent struct {
	name string
	llm  ModelCaller
}

func NewReasoningAgent(llm ModelCaller) *ReasoningAgent {
	return &ReasoningAgent{name: "ReasoningAgent", llm: llm}
}

func (a *ReasoningAgent) Name() string { return a.name }

// Profile is the reasoning agent's view of a user.
type Profile struct {
	Name         string
	CurrentLevel string
	CareerGoal   string
	TargetRole   string
	Skills       []models.Skill
	Interests    []string
}

// AnalyzeProfile produces readiness, recommended roles, and reasoning.
func (a *ReasoningAgent) AnalyzeProfile(ctx context.Context, profile Profile) Result {
	targetRole := profile.TargetRole
	if targetRole == "" {
		targetRole = profile.CareerGoal
	}
	if targetRole == "" {
		targetRole = "Not specified"
	}

	prompt := fmt.Sprintf(`Analyze this career profile and provide comprehensive insights:

## User Profile
- Name: %s
- Current Level: %s
- Career Goal: %s

## Skills
%s

## Interests
%s

## Target Role
%s

---

Provide your analysis in the following JSON format:
{
    "readiness_score": <0-100>,
    "readiness_level": "<not_ready|developing|almost_ready|ready>",
    "recommended_roles": [
        {"role": "<role name>", "match_percentage": <0-100>, "reason": "<why this fits>"}
    ],
    "strengths": ["<strength 1>", "<strength 2>"],
    "growth_areas": ["<area 1>", "<area 2>"],
    "immediate_actions": ["<action 1>", "<action 2>", "<action 3>"],
    "reasoning": "<detailed explanation of your analysis>",
    "career_trajectory": "<short-term and long-term career path suggestion>",
    "market_insights": "<relevant job market observations>"
}`,
		defaultString(profile.Name, "User"),
		defaultString(profile.CurrentLevel, "beginner"),
		defaultString(profile.CareerGoal, "Not specified"),
		formatSkills(profile.Skills),
		defaultString(strings.Join(profile.Interests, ", "), "None listed"),
		targetRole)

	result, err := a.llm.CallJSON(ctx, prompt, reasoningSystemPrompt, 0.3, 4000)
	if err != nil {
		return a.fallbackAnalysis(profile)
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// CompareRoles ranks target roles for the profile.
func (a *ReasoningAgent) CompareRoles(ctx context.Context, profile Profile, targetRoles []string) Result {
	prompt := fmt.Sprintf(`Compare this user's profile against these target roles:

## User Skills
%s

## Current Level: %s

## Target Roles to Analyze:
%s

For each role, provide:
1. Match percentage (0-100)
2. Key matching skills
3. Missing critical skills
4. Time to job-ready estimate

Respond in JSON format:
{
    "role_comparisons": [
        {
            "role": "<role name>",
            "match_percentage": <0-100>,
            "matching_skills": ["<skill1>", "<skill2>"],
            "missing_skills": ["<skill1>", "<skill2>"],
            "time_to_ready": "<estimated time>",
            "difficulty": "<low|medium|high>",
            "recommendation": "<should pursue / needs work / not recommended>"
        }
    ],
    "best_fit": "<recommended role>",
    "reasoning": "<explanation of ranking>"
}`, formatSkills(profile.Skills), defaultString(profile.CurrentLevel, "beginner"), strings.Join(targetRoles, ", "))

	result, err := a.llm.CallJSON(ctx, prompt, reasoningSystemPrompt, 0.3, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "comparison", Payload: map[string]interface{}{
			"error": "Analysis unavailable",
		}}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "comparison", Payload: result}
}

// CalculateReadiness scores readiness for a specific role.
func (a *ReasoningAgent) CalculateReadiness(ctx context.Context, skills []models.Skill, targetRole string) Result {
	prompt := fmt.Sprintf(`Calculate job readiness for this target role:

## Target Role: %s

## Current Skills:
%s

Analyze the readiness and provide a detailed breakdown in JSON:
{
    "overall_score": <0-100>,
    "category_scores": {
        "technical_skills": <0-100>,
        "soft_skills": <0-100>,
        "experience": <0-100>,
        "education": <0-100>
    },
    "ready_skills": ["<skills already sufficient>"],
    "developing_skills": ["<skills that need more work>"],
    "missing_skills": ["<skills not present>"],
    "confidence_level": "<low|medium|high>",
    "estimated_prep_time": "<time needed>",
    "key_recommendation": "<most important next step>"
}`, targetRole, formatSkills(skills))

	result, err := a.llm.CallJSON(ctx, prompt, reasoningSystemPrompt, 0.3, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "readiness", Payload: a.fallbackReadiness(skills)}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "readiness", Payload: result}
}

// fallbackAnalysis scores from skill count alone: 10 points per skill plus
// a 20 point base, capped at 70.
func (a *ReasoningAgent) fallbackAnalysis(profile Profile) Result {
	baseScore := len(profile.Skills)*10 + 20
	if baseScore > 70 {
		baseScore = 70
	}

	goal := defaultString(profile.CareerGoal, "Software Developer")

	return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: map[string]interface{}{
		"readiness_score": baseScore,
		"readiness_level": "developing",
		"recommended_roles": []interface{}{
			map[string]interface{}{"role": goal, "match_percentage": baseScore, "reason": "Based on stated goals"},
		},
		"strengths":    []interface{}{"Self-motivated learner", "Clear career goals"},
		"growth_areas": []interface{}{"Technical depth", "Industry experience"},
		"immediate_actions": []interface{}{
			"Build a portfolio project",
			"Practice coding challenges",
			"Network with professionals",
		},
		"reasoning":         "Analysis based on profile completeness and skill count.",
		"career_trajectory": "Focus on building foundational skills first.",
		"market_insights":   "Tech industry continues to value practical skills.",
	}}
}

// fallbackReadiness: 12 points per skill plus a 15 point base, capped at 75.
func (a *ReasoningAgent) fallbackReadiness(skills []models.Skill) map[string]interface{} {
	score := len(skills)*12 + 15
	if score > 75 {
		score = 75
	}

	var readySkills []interface{}
	for i, s := range skills {
		if i >= 3 {
			break
		}
		readySkills = append(readySkills, s.SkillName)
	}

	return map[string]interface{}{
		"overall_score": score,
		"category_scores": map[string]interface{}{
			"technical_skills": score,
			"soft_skills":      60,
			"experience":       40,
			"education":        50,
		},
		"ready_skills":        emptyIfNil(readySkills),
		"developing_skills":   []interface{}{},
		"missing_skills":      []interface{}{"Advanced concepts", "System design"},
		"confidence_level":    "medium",
		"estimated_prep_time": "3-6 months",
		"key_recommendation":  "Focus on building practical projects",
	}
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
