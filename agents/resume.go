package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careeragent/models"
)

const resumeSystemPrompt = `You are a professional resume content generation agent.

Your task is to generate resume CONTENT ONLY.
You MUST follow all rules strictly.

======================
CRITICAL RULES
======================
1. Output ONLY valid JSON
2. Follow the EXACT JSON schema provided
3. Do NOT add, remove, or rename any fields
4. Do NOT include formatting, styling, layout, colors, icons, or alignment instructions
5. Do NOT invent skills or projects
6. Use ONLY skills and projects provided in the user profile
7. Select ONLY skills and projects that are RELEVANT to the given job role or job description
8. Exclude unrelated or weakly relevant skills and projects
9. Bullet points must be concise, professional, and achievement-oriented
10. Use strong action verbs and measurable impact where possible
11. Keep the resume professional, ATS-friendly, and recruiter-ready

======================
RESUME JSON SCHEMA (STRICT - DO NOT DEVIATE)
======================
{
  "header": {"name": "", "title": ""},
  "contact": {"phone": "", "email": "", "address": "", "website": "", "linkedin": ""},
  "summary": "",
  "skills": [{"name": "", "level": 0}],
  "projects": [{"title": "", "tech_stack": [], "points": []}],
  "experience": [{"role": "", "company": "", "location": "", "duration": "", "points": []}],
  "education": [{"degree": "", "institution": "", "year": "", "details": ""}],
  "certifications": ["certification name 1", "certification name 2"]
}

======================
OUTPUT REQUIREMENTS
======================
- Skills level must be 0-100 integer
- Select ONLY skills relevant to the job role
- Select ONLY projects that demonstrate required competencies
- Do NOT repeat content across sections
- If experience is limited, emphasize projects strongly
- IMPORTANT: The resume MUST fill the entire page with NO white space
- If user has no projects, GENERATE 2-3 relevant projects based on their skills
- If user has limited experience, expand bullet points with more details
- Each experience should have 3-5 bullet points minimum
- Summary should be 3-4 sentences minimum
- Include at least 6-10 skills relevant to the role
- Include 2-3 certifications if available or suggest relevant ones`

// ResumeProfile carries the contact and identity details a resume
// draws from.
type ResumeProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Website    string `json:"website"`
	LinkedIn   string `json:"linkedin"`
	CareerGoal string `json:"career_goal"`
}

// ResumeResult is the envelope resume operations return. ResumeData is
// nil when the model calls failed.
type ResumeResult struct {
	Agent         string                 `json:"agent"`
	Status        string                 `json:"status"`
	Message       string                 `json:"message,omitempty"`
	ResumeData    *models.ResumeDocument `json:"resume_data"`
	TargetRole    string                 `json:"target_role,omitempty"`
	TargetCompany string                 `json:"target_company,omitempty"`
	Tailored      bool                   `json:"tailored,omitempty"`
}

// ResumeAgent generates and tailors resume content against a strict
// document schema. Unlike the coaching agents it has no synthetic
// fallback: a resume built from canned text is worse than none.
type ResumeAgent struct {
	name string
	llm  ModelCaller
}

func NewResumeAgent(llm ModelCaller) *ResumeAgent {
	return &ResumeAgent{name: "ResumeAgent", llm: llm}
}

func (a *ResumeAgent) Name() string { return a.name }

// GenerateStructuredResume builds a complete resume document from the
// user's stored profile, selecting only material relevant to the target
// role.
func (a *ResumeAgent) GenerateStructuredResume(ctx context.Context, profile ResumeProfile, skills []models.Skill, experience []models.ResumeExperience, education []models.ResumeEducation, projects []models.ResumeProject, targetRole, jobDescription string) ResumeResult {
	type promptSkill struct {
		Name     string `json:"name"`
		Level    int    `json:"level"`
		Category string `json:"category"`
	}
	skillsList := make([]promptSkill, 0, len(skills))
	for _, s := range skills {
		skillsList = append(skillsList, promptSkill{Name: s.SkillName, Level: levelToScore(s.Level), Category: "general"})
	}

	prompt := fmt.Sprintf(`Generate a professional resume following the STRICT JSON schema.

======================
INPUT DATA
======================

## Target Role
%s

## Job Description
%s

## User Profile
- Full Name: %s
- Email: %s
- Phone: %s
- Location/Address: %s
- Website: %s
- LinkedIn: %s
- Career Goal: %s

## Available Skills (SELECT ONLY RELEVANT ONES)
%s

## Available Projects (SELECT ONLY RELEVANT ONES)
%s

## Experience History
%s

## Education
%s

======================
CRITICAL: FILL THE ENTIRE PAGE
======================
The resume MUST fill the entire page with NO white space. Follow these rules:

1. Set header.name to the user's full name
2. Set header.title to the target role: "%s"
3. Write a compelling 3-4 sentence professional summary (minimum 50 words)
4. Include 8-12 skills relevant to %s (with level as 0-100 integer)
5. PROJECTS ARE REQUIRED:
   - If user has projects, include 2-3 of them with 2-3 bullet points each
   - If user has NO projects, GENERATE 2-3 realistic projects based on their skills
   - Each project must have: title, tech_stack (array), and points (2-3 bullets)
6. Each work experience MUST have 4-5 detailed bullet points with metrics
7. Include 2-3 education entries if available
8. Include 3-5 certifications (use user's if available, or suggest relevant ones)
9. Rewrite all bullet points with strong action verbs and measurable impact
10. Output ONLY the JSON following the STRICT schema

Generate the resume JSON now:`,
		targetRole,
		defaultString(jobDescription, "Not provided - tailor to target role"),
		defaultString(profile.Name, "Unknown"), profile.Email, profile.Phone,
		profile.Location, profile.Website, profile.LinkedIn,
		defaultString(profile.CareerGoal, targetRole),
		promptJSON(skillsList), promptJSON(projects), promptJSON(experience), promptJSON(education),
		targetRole, targetRole)

	result, err := a.llm.CallJSON(ctx, prompt, resumeSystemPrompt, 0.3, 4000)
	if err != nil {
		return ResumeResult{Agent: a.name, Status: StatusError, Message: "Failed to generate resume content"}
	}

	doc := a.ValidateAndClean(result, profile)
	return ResumeResult{Agent: a.name, Status: StatusSuccess, ResumeData: &doc, TargetRole: targetRole}
}

// TailorToJobDescription rewrites an existing resume for a specific
// posting.
func (a *ResumeAgent) TailorToJobDescription(ctx context.Context, existing models.ResumeDocument, jobDescription, targetRole, targetCompany string) ResumeResult {
	prompt := fmt.Sprintf(`Tailor this existing resume to the job description below.

======================
CURRENT RESUME
======================
%s

======================
TARGET JOB
======================
Role: %s
Company: %s
Description: %s

======================
INSTRUCTIONS - FULL PAGE RESUME
======================
1. Keep the same contact information
2. Update header.title to match the target role
3. Rewrite summary to emphasize relevant experience (4-5 sentences minimum)
4. Include 8-12 skills that match the JD (keep level as 0-100)
5. Rewrite experience bullet points - MINIMUM 4-5 bullet points per job
6. Include ALL projects - if less than 2, create relevant project ideas
7. Include 3-5 certifications (generate relevant ones if none exist)
8. Output ONLY the JSON, following the STRICT schema

CRITICAL: The resume MUST fill an entire A4 page. Write comprehensive content for every section. NO empty sections allowed.

Generate the tailored resume JSON:`,
		promptJSON(existing), targetRole, defaultString(targetCompany, "Not specified"), jobDescription)

	result, err := a.llm.CallJSON(ctx, prompt, resumeSystemPrompt, 0.3, 4000)
	if err != nil {
		return ResumeResult{Agent: a.name, Status: StatusError, Message: "Failed to tailor resume"}
	}

	doc := a.ValidateAndClean(result, ResumeProfile{})
	return ResumeResult{Agent: a.name, Status: StatusSuccess, ResumeData: &doc, TargetRole: targetRole, TargetCompany: targetCompany, Tailored: true}
}

// AnalyzeResumeMatch scores a resume against a job description.
func (a *ResumeAgent) AnalyzeResumeMatch(ctx context.Context, resume models.ResumeDocument, jobDescription string) Result {
	prompt := fmt.Sprintf(`Analyze how well this resume matches the job description.

## Resume
%s

## Job Description
%s

Provide analysis in this JSON format:
{
    "match_score": <0-100>,
    "matching_skills": ["skill1", "skill2"],
    "missing_skills": ["skill1", "skill2"],
    "matching_experience": ["relevant experience 1", "relevant experience 2"],
    "gaps": ["gap 1", "gap 2"],
    "recommendations": [
        "specific recommendation 1",
        "specific recommendation 2"
    ],
    "keywords_present": ["keyword1", "keyword2"],
    "keywords_missing": ["keyword1", "keyword2"],
    "overall_assessment": "brief assessment"
}`, promptJSON(resume), jobDescription)

	result, err := a.llm.CallJSON(ctx, prompt, resumeSystemPrompt, 0.2, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusError, Key: "analysis", Err: "Failed to analyze resume match"}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// SuggestImprovements reviews a resume against past rejection feedback.
func (a *ResumeAgent) SuggestImprovements(ctx context.Context, resume models.ResumeDocument, targetRole string, feedbackHistory []models.Feedback) Result {
	feedbackSection := ""
	if len(feedbackHistory) > 0 {
		var lines []string
		for i, fb := range feedbackHistory {
			if i >= 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", defaultString(fb.FeedbackType, "feedback"), fb.Content))
		}
		feedbackSection = "## Past Rejection Feedback\n" + strings.Join(lines, "\n")
	}

	prompt := fmt.Sprintf(`Review this resume for a %s position and suggest improvements.

## Resume
%s

%s

Provide suggestions in this JSON format:
{
    "summary_improvements": ["suggestion 1", "suggestion 2"],
    "skills_to_add": ["skill 1", "skill 2"],
    "skills_to_remove": ["skill that's not relevant"],
    "experience_improvements": [
        {
            "current": "current bullet point",
            "improved": "improved bullet point with metrics"
        }
    ],
    "project_improvements": ["suggestion 1"],
    "formatting_tips": ["tip 1", "tip 2"],
    "keywords_to_add": ["keyword 1", "keyword 2"],
    "overall_score": <0-100>,
    "priority_actions": ["action 1", "action 2", "action 3"]
}`, defaultString(targetRole, "professional"), promptJSON(resume), feedbackSection)

	result, err := a.llm.CallJSON(ctx, prompt, resumeSystemPrompt, 0.3, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusError, Key: "suggestions", Err: "Failed to generate improvement suggestions"}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "suggestions", Payload: result}
}

// ValidateAndClean forces model output into the strict document schema,
// backfilling contact details from the profile and dropping anything
// that does not fit.
func (a *ResumeAgent) ValidateAndClean(data map[string]interface{}, profile ResumeProfile) models.ResumeDocument {
	header := getMap(data, "header")
	contact := getMap(data, "contact")

	doc := models.ResumeDocument{
		Header: models.ResumeHeader{
			Name:  defaultString(getString(header, "name"), profile.Name),
			Title: getString(header, "title"),
		},
		Contact: models.ResumeContact{
			Phone:    defaultString(getString(contact, "phone"), profile.Phone),
			Email:    defaultString(getString(contact, "email"), profile.Email),
			Address:  defaultString(getString(contact, "address"), profile.Location),
			Website:  defaultString(getString(contact, "website"), profile.Website),
			LinkedIn: defaultString(getString(contact, "linkedin"), profile.LinkedIn),
		},
		Summary:        getString(data, "summary"),
		Skills:         []models.ResumeSkill{},
		Projects:       []models.ResumeProject{},
		Experience:     []models.ResumeExperience{},
		Education:      []models.ResumeEducation{},
		Certifications: []string{},
	}

	for _, raw := range getList(data, "skills") {
		switch s := raw.(type) {
		case map[string]interface{}:
			doc.Skills = append(doc.Skills, models.ResumeSkill{
				Name:  getString(s, "name"),
				Level: int(getNumber(s, "level", 50)),
			})
		case string:
			doc.Skills = append(doc.Skills, models.ResumeSkill{Name: s, Level: 70})
		}
	}

	for _, raw := range getList(data, "projects") {
		p, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		doc.Projects = append(doc.Projects, models.ResumeProject{
			Title:     defaultString(getString(p, "title"), getString(p, "name")),
			TechStack: toStringSlice(firstList(p, "tech_stack", "technologies")),
			Points:    toStringSlice(firstList(p, "points", "highlights")),
		})
	}

	for _, raw := range getList(data, "experience") {
		e, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		doc.Experience = append(doc.Experience, models.ResumeExperience{
			Role:     defaultString(getString(e, "role"), getString(e, "title")),
			Company:  getString(e, "company"),
			Location: getString(e, "location"),
			Duration: getString(e, "duration"),
			Points:   toStringSlice(firstList(e, "points", "achievements")),
		})
	}

	for _, raw := range getList(data, "education") {
		e, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		doc.Education = append(doc.Education, models.ResumeEducation{
			Degree:      getString(e, "degree"),
			Institution: getString(e, "institution"),
			Year:        stringifyValue(e["year"]),
			Details:     getString(e, "details"),
		})
	}

	for _, raw := range getList(data, "certifications") {
		switch c := raw.(type) {
		case string:
			doc.Certifications = append(doc.Certifications, c)
		case map[string]interface{}:
			doc.Certifications = append(doc.Certifications, defaultString(getString(c, "name"), getString(c, "title")))
		}
	}

	return doc
}

// levelToScore maps proficiency labels onto the 0-100 skill scale.
func levelToScore(level string) int {
	switch strings.ToLower(level) {
	case "beginner":
		return 30
	case "intermediate":
		return 60
	case "advanced":
		return 80
	case "expert":
		return 95
	}
	return 50
}

func promptJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func firstList(m map[string]interface{}, keys ...string) []interface{} {
	for _, k := range keys {
		if list := getList(m, k); list != nil {
			return list
		}
	}
	return nil
}

func toStringSlice(list []interface{}) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, stringifyValue(v))
	}
	return out
}

func stringifyValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
