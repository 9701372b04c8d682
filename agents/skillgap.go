package agents

import (
	"context"
	"fmt"
	"math"
	"strings"

	"careeragent/models"
)

const skillGapSystemPrompt = `You are an expert skill assessment agent. Your role is to:
1. Accurately compare user skills against job role requirements
2. Identify critical skill gaps
3. Prioritize gaps based on industry importance
4. Provide actionable insights for skill development
5. Recommend specific, real learning resources (YouTube videos, courses, documentation)

Be precise and realistic in your assessments. Consider both technical and soft skills.
When providing learning resources, use REAL, working URLs to popular educational content.`

// SkillGapAgent compares user skills against role requirements and
// identifies what is missing.
type SkillGapAgent struct {
	name string
	llm  ModelCaller
}

func NewSkillGapAgent(llm ModelCaller) *SkillGapAgent {
	return &SkillGapAgent{name: "SkillGapAgent", llm: llm}
}

func (a *SkillGapAgent) Name() string { return a.name }

// AnalyzeGaps produces a gap analysis for the target role. Model-suggested
// learning resources are always swapped for curated ones so URLs stay real.
func (a *SkillGapAgent) AnalyzeGaps(ctx context.Context, userSkills []models.Skill, targetRole string) Result {
	prompt := fmt.Sprintf(`Analyze skill gaps for this career transition:

## Target Role: %s

## User's Current Skills:
%s

Identify ALL skill gaps and provide detailed analysis in JSON.
IMPORTANT: For each skill gap, provide REAL, working YouTube video links and course URLs.

{
    "target_role": "%s",
    "skill_gaps": [
        {
            "skill_name": "<skill name>",
            "current_level": "<none|beginner|intermediate|advanced>",
            "required_level": "<beginner|intermediate|advanced|expert>",
            "priority": "<high|medium|low>",
            "importance": "<why this skill matters>",
            "estimated_learning_time": "<time to acquire>",
            "learning_approach": "<how to learn this skill>",
            "learning_resources": [
                {"title": "<title>", "type": "<video|course|documentation>", "url": "<real URL>", "platform": "<platform>"}
            ]
        }
    ],
    "matching_skills": [
        {"skill_name": "<skill name>", "current_level": "<level>", "status": "<exceeds|meets|close>"}
    ],
    "gap_summary": {
        "total_gaps": <number>,
        "high_priority": <number>,
        "medium_priority": <number>,
        "low_priority": <number>
    },
    "readiness_percentage": <0-100>,
    "critical_path": ["<most important skills to learn in order>"],
    "quick_wins": ["<skills that can be acquired quickly>"],
    "overall_assessment": "<summary of the gap analysis>"
}`, targetRole, formatSkills(userSkills), targetRole)

	result, err := a.llm.CallJSON(ctx, prompt, skillGapSystemPrompt, 0.3, 4000)
	if err != nil {
		return a.fallbackAnalysis(userSkills, targetRole)
	}

	if gaps := getList(result, "skill_gaps"); gaps != nil {
		for _, item := range gaps {
			gap, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			skillName := getString(gap, "skill_name")
			gap["learning_resources"] = resourcesAsList(FallbackResourcesFor(skillName))
		}
	}

	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// CompareWithJob is a deterministic containment match against a concrete
// requirement list. No model involved.
func (a *SkillGapAgent) CompareWithJob(userSkills []models.Skill, jobRequirements []string) Result {
	userSkillNames := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		userSkillNames = append(userSkillNames, strings.ToLower(s.SkillName))
	}

	var matching, missing []interface{}
	for _, req := range jobRequirements {
		reqLower := strings.ToLower(req)
		matched := false
		for _, skill := range userSkillNames {
			if strings.Contains(skill, reqLower) || strings.Contains(reqLower, skill) {
				matched = true
				break
			}
		}
		if matched {
			matching = append(matching, req)
		} else {
			missing = append(missing, req)
		}
	}

	matchPercentage := 0.0
	if len(jobRequirements) > 0 {
		matchPercentage = float64(len(matching)) / float64(len(jobRequirements)) * 100
	}

	return Result{Agent: a.name, Status: StatusSuccess, Key: "comparison", Payload: map[string]interface{}{
		"matching_skills":  emptyIfNil(matching),
		"missing_skills":   emptyIfNil(missing),
		"match_percentage": int(math.Round(matchPercentage)),
		"total_required":   len(jobRequirements),
		"skills_matched":   len(matching),
		"skills_missing":   len(missing),
	}}
}

// PrioritizeGaps asks the model for a learning order over known gaps.
func (a *SkillGapAgent) PrioritizeGaps(ctx context.Context, gaps []models.SkillGap, careerGoal string) Result {
	var lines []string
	for _, g := range gaps {
		lines = append(lines, fmt.Sprintf("- %s: %s", g.SkillName, g.CurrentLevel))
	}

	prompt := fmt.Sprintf(`Prioritize these skill gaps for the career goal:

## Career Goal: %s

## Skill Gaps:
%s

Provide prioritized learning order in JSON:
{
    "prioritized_gaps": [
        {"rank": <1, 2, 3...>, "skill_name": "<skill>", "priority": "<critical|high|medium|low>", "reason": "<why this priority>", "dependencies": ["<skills to learn first>"], "time_investment": "<estimated time>"}
    ],
    "learning_phases": [
        {"phase": <1, 2, 3>, "name": "<phase name>", "skills": ["<skills in this phase>"], "duration": "<estimated duration>"}
    ],
    "parallel_learning": ["<skills that can be learned simultaneously>"],
    "recommendation": "<overall learning strategy>"
}`, careerGoal, strings.Join(lines, "\n"))

	result, err := a.llm.CallJSON(ctx, prompt, skillGapSystemPrompt, 0.3, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusFallback, Key: "prioritization", Payload: map[string]interface{}{
			"error": "Prioritization unavailable",
		}}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "prioritization", Payload: result}
}

// GetRoleRequirements serves from the built-in catalog when it can, and
// asks the model only for unknown roles.
func (a *SkillGapAgent) GetRoleRequirements(ctx context.Context, role string) Result {
	if canonical, reqs, ok := LookupRoleRequirements(role); ok {
		return Result{Agent: a.name, Status: StatusSuccess, Key: "requirements", Payload: map[string]interface{}{
			"role":        canonical,
			"required":    reqs.Required,
			"preferred":   reqs.Preferred,
			"soft_skills": reqs.SoftSkills,
		}}
	}

	prompt := fmt.Sprintf(`What skills are required for this role: %s

Provide requirements in JSON:
{
    "role": "%s",
    "required": ["<essential skills>"],
    "preferred": ["<nice-to-have skills>"],
    "soft_skills": ["<soft skills needed>"],
    "education": "<typical education requirement>",
    "experience": "<typical experience requirement>"
}`, role, role)

	result, err := a.llm.CallJSON(ctx, prompt, skillGapSystemPrompt, 0.3, 4000)
	if err != nil {
		def := defaultRoleRequirements()
		return Result{Agent: a.name, Status: StatusFallback, Key: "requirements", Payload: map[string]interface{}{
			"role":        "Software Engineer",
			"required":    def.Required,
			"preferred":   def.Preferred,
			"soft_skills": def.SoftSkills,
		}}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "requirements", Payload: result}
}

// fallbackAnalysis builds a gap analysis from the requirements catalog.
// Required skills the user lacks become high priority gaps, preferred ones
// medium. Readiness is the matched share of required-plus-gap skills.
func (a *SkillGapAgent) fallbackAnalysis(userSkills []models.Skill, targetRole string) Result {
	requirements := defaultRoleRequirements()
	if _, reqs, ok := LookupRoleRequirements(targetRole); ok {
		requirements = reqs
	}

	userSkillNames := map[string]bool{}
	for _, s := range userSkills {
		userSkillNames[strings.ToLower(s.SkillName)] = true
	}

	var gaps, matching []interface{}
	for _, skill := range requirements.Required {
		if userSkillNames[strings.ToLower(skill)] {
			matching = append(matching, map[string]interface{}{"skill_name": skill, "status": "meets"})
			continue
		}
		gaps = append(gaps, map[string]interface{}{
			"skill_name":              skill,
			"current_level":           "none",
			"required_level":          "intermediate",
			"priority":                "high",
			"importance":              "Core requirement for role",
			"estimated_learning_time": "2-4 weeks",
			"learning_approach":       fmt.Sprintf("Start with fundamentals of %s, practice with projects", skill),
			"learning_resources":      resourcesAsList(FallbackResourcesFor(skill)),
		})
	}
	for _, skill := range requirements.Preferred {
		if userSkillNames[strings.ToLower(skill)] {
			continue
		}
		gaps = append(gaps, map[string]interface{}{
			"skill_name":              skill,
			"current_level":           "none",
			"required_level":          "beginner",
			"priority":                "medium",
			"importance":              "Preferred skill for role",
			"estimated_learning_time": "1-2 weeks",
			"learning_approach":       fmt.Sprintf("Learn basics of %s through tutorials and practice", skill),
			"learning_resources":      resourcesAsList(FallbackResourcesFor(skill)),
		})
	}

	highPriority := 0
	var criticalPath []interface{}
	for _, item := range gaps {
		gap := item.(map[string]interface{})
		if gap["priority"] == "high" {
			highPriority++
			if len(criticalPath) < 3 {
				criticalPath = append(criticalPath, gap["skill_name"])
			}
		}
	}

	readiness := 50
	if len(matching)+len(gaps) > 0 {
		readiness = int(math.Round(float64(len(matching)) / float64(len(matching)+len(gaps)) * 100))
	}

	return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: map[string]interface{}{
		"target_role":     targetRole,
		"skill_gaps":      emptyIfNil(gaps),
		"matching_skills": emptyIfNil(matching),
		"gap_summary": map[string]interface{}{
			"total_gaps":      len(gaps),
			"high_priority":   highPriority,
			"medium_priority": len(gaps) - highPriority,
			"low_priority":    0,
		},
		"readiness_percentage": readiness,
		"critical_path":        emptyIfNil(criticalPath),
		"overall_assessment":   "Analysis based on standard role requirements.",
	}}
}

func formatSkills(skills []models.Skill) string {
	if len(skills) == 0 {
		return "No skills listed"
	}
	var lines []string
	for _, s := range skills {
		expStr := ""
		if s.YearsExperience > 0 {
			expStr = fmt.Sprintf(" (%.1f years)", s.YearsExperience)
		}
		lines = append(lines, fmt.Sprintf("- %s: %s%s", s.SkillName, s.Level, expStr))
	}
	return strings.Join(lines, "\n")
}

func resourcesAsList(resources []models.LearningResource) []interface{} {
	out := make([]interface{}, 0, len(resources))
	for _, r := range resources {
		m := map[string]interface{}{
			"title":    r.Title,
			"type":     r.Type,
			"url":      r.URL,
			"platform": r.Platform,
		}
		if r.Duration != "" {
			m["duration"] = r.Duration
		}
		out = append(out, m)
	}
	return out
}

func emptyIfNil(list []interface{}) []interface{} {
	if list == nil {
		return []interface{}{}
	}
	return list
}
