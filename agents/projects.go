package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careeragent/models"
)

const projectsSystemPrompt = `You are an expert Projects Recommendation Agent for an AI Career Platform.

Your role is to help users discover, design, and track meaningful project ideas that will:
- Build their portfolio
- Strengthen their skills
- Align with their career goals
- Be valuable for job applications and interviews

CORE RULES:
1. Never hallucinate or invent user skills - use ONLY what is provided
2. Suggest projects appropriate to the user's current skill level
3. Always consider the user's career goal when making suggestions
4. Projects should be realistic, implementable, and portfolio-worthy
5. Include specific technical details and features
6. Be encouraging, professional, and mentor-like in tone

DIFFICULTY GUIDELINES:
- Beginner: 1-2 weeks, basic concepts, guided structure
- Intermediate: 2-4 weeks, combines multiple skills, some complexity
- Advanced: 1-2 months, production-level, complex architecture

When generating project suggestions, ensure they:
- Have clear learning outcomes
- Use skills the user already has or is learning
- Can be explained well in interviews
- Show practical, real-world application`

// ProjectsAgent recommends, refines, and structures portfolio
// projects.
type ProjectsAgent struct {
	name string
	llm  ModelCaller
}

func NewProjectsAgent(llm ModelCaller) *ProjectsAgent {
	return &ProjectsAgent{name: "ProjectsAgent", llm: llm}
}

func (a *ProjectsAgent) Name() string { return a.name }

// AnalyzeUserProfile assesses project readiness and the recommendation
// context for this user.
func (a *ProjectsAgent) AnalyzeUserProfile(ctx context.Context, skills []models.Skill, careerGoal string, completedProjects []models.Project, gaps []GapSummary) Result {
	projectsStr := "None"
	if len(completedProjects) > 0 {
		var titles []string
		for i, p := range completedProjects {
			if i >= 5 {
				break
			}
			titles = append(titles, p.Title)
		}
		projectsStr = strings.Join(titles, ", ")
	}

	gapsStr := "None identified"
	if len(gaps) > 0 {
		var parts []string
		for i, g := range gaps {
			if i >= 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%s priority)", g.SkillName, defaultString(g.Priority, "medium")))
		}
		gapsStr = strings.Join(parts, ", ")
	}

	prompt := fmt.Sprintf(`Analyze this user's profile to determine the best project recommendations context:

## User Profile
- Career Goal: %s
- Current Skills: %s
- Completed Projects: %s
- Skill Gaps to Address: %s

Provide analysis in JSON:
{
    "skill_level": "<beginner|intermediate|advanced>",
    "strongest_skills": ["skill1", "skill2", "skill3"],
    "skills_to_develop": ["skill1", "skill2"],
    "recommended_difficulty": "<Beginner|Intermediate|Advanced>",
    "recommended_domains": ["domain1", "domain2"],
    "portfolio_gaps": ["what's missing from their portfolio"],
    "readiness_assessment": "<brief assessment of their project readiness>",
    "focus_areas": ["area1", "area2"],
    "opening_message": "<personalized greeting and summary for the user>"
}`,
		defaultString(careerGoal, "Not specified"),
		defaultString(formatSkills(skills), "None added"),
		projectsStr, gapsStr)

	result, err := a.llm.CallJSON(ctx, prompt, projectsSystemPrompt, 0.3, 4000)
	if err != nil {
		return a.fallbackProfileAnalysis(skills, careerGoal, gaps)
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "analysis", Payload: result}
}

// SuggestProjects generates personalized project ideas, skipping
// anything too close to what the user already built.
func (a *ProjectsAgent) SuggestProjects(ctx context.Context, profile *models.User, skills []models.Skill, careerGoal string, gaps []GapSummary, completedProjects []models.Project, count int) Result {
	if count <= 0 {
		count = 5
	}

	var gapNames []string
	for _, g := range gaps {
		gapNames = append(gapNames, g.SkillName)
	}
	var completedTitles []string
	for _, p := range completedProjects {
		completedTitles = append(completedTitles, p.Title)
	}
	level := "beginner"
	if profile != nil && profile.CurrentLevel != "" {
		level = profile.CurrentLevel
	}

	prompt := fmt.Sprintf(`Generate %d personalized project suggestions for this user:

## User Context
- Career Goal: %s
- Current Skills: %s
- Skills to Develop: %s
- Already Completed: %s
- Experience Level: %s

Generate EXACTLY %d project suggestions in JSON:
{
    "suggestions": [
        {
            "project_title": "<Creative, descriptive project name>",
            "difficulty": "<Beginner|Intermediate|Advanced>",
            "description": "<2-3 sentence description of what the project does and why it's valuable>",
            "skills_used": ["skill1", "skill2", "skill3"],
            "features": [
                "<Feature 1: Specific implementation detail>",
                "<Feature 2: Specific implementation detail>",
                "<Feature 3: Specific implementation detail>",
                "<Feature 4: Specific implementation detail>",
                "<Feature 5: Specific implementation detail>"
            ],
            "tech_stack": {
                "frontend": ["tech1", "tech2"],
                "backend": ["tech1"],
                "database": ["tech1"],
                "other": ["tool1"]
            },
            "learning_outcomes": [
                "<What the user will learn 1>",
                "<What the user will learn 2>",
                "<What the user will learn 3>"
            ],
            "estimated_duration": "<e.g., 2-3 weeks>",
            "resume_value": "<Why this project matters for their resume and interviews>",
            "interview_talking_points": ["<Point 1>", "<Point 2>"]
        }
    ],
    "recommendation_note": "<Brief note about why these projects were chosen>"
}

IMPORTANT:
1. Mix difficulty levels (at least one Beginner, one Intermediate)
2. Projects should align with the career goal: %s
3. Use skills the user has OR skills from their skill gaps
4. Each project must be unique and portfolio-worthy
5. DO NOT suggest projects similar to what they've already completed`,
		count,
		defaultString(careerGoal, "Software Developer"),
		defaultString(formatSkills(skills), "None specified"),
		defaultString(strings.Join(gapNames, ", "), "Not specified"),
		defaultString(strings.Join(completedTitles, ", "), "None"),
		level, count, careerGoal)

	result, err := a.llm.CallJSON(ctx, prompt, projectsSystemPrompt, 0.6, 4000)
	if err == nil {
		if suggestions := getList(result, "suggestions"); suggestions != nil {
			return Result{Agent: a.name, Status: StatusSuccess, Key: "suggestions", Payload: map[string]interface{}{
				"suggestions":         suggestions,
				"recommendation_note": getString(result, "recommendation_note"),
				"count":               len(suggestions),
			}}
		}
	}
	return a.fallbackSuggestions(careerGoal)
}

// ImproveUserIdea upgrades a raw project idea into a structured,
// production-grade definition. There is no synthetic fallback; a failed
// call reports an error.
func (a *ProjectsAgent) ImproveUserIdea(ctx context.Context, userIdea string, profile *models.User, skills []models.Skill, careerGoal string) Result {
	level := "beginner"
	if profile != nil && profile.CurrentLevel != "" {
		level = profile.CurrentLevel
	}

	prompt := fmt.Sprintf(`The user has shared their project idea. Your job is to:
1. Understand their idea completely
2. Improve it technically
3. Add missing features
4. Suggest better scope and structure
5. Upgrade it to industry-level quality

## User's Idea:
"%s"

## User Context:
- Career Goal: %s
- Current Skills: %s
- Experience Level: %s

Transform this into a production-grade project in JSON:
{
    "original_idea_summary": "<Brief summary of what the user wanted>",
    "project_title": "<Professional, marketable project name>",
    "difficulty": "<Beginner|Intermediate|Advanced>",
    "description": "<3-4 sentence professional description of the improved project>",
    "skills_used": ["skill1", "skill2", "skill3", "skill4"],
    "features": [
        "<Core Feature 1>",
        "<Core Feature 2>",
        "<Core Feature 3>",
        "<Advanced Feature 1>",
        "<Advanced Feature 2>",
        "<Bonus Feature (if time permits)>"
    ],
    "tech_stack": {
        "frontend": ["tech1", "tech2"],
        "backend": ["tech1", "tech2"],
        "database": ["tech1"],
        "ai": ["<if applicable>"],
        "other": ["tool1", "tool2"]
    },
    "learning_outcomes": [
        "<What they will learn 1>",
        "<What they will learn 2>",
        "<What they will learn 3>",
        "<What they will learn 4>"
    ],
    "estimated_duration": "<realistic time estimate>",
    "resume_value": "<Why this project will impress recruiters>",
    "improvements_made": [
        "<How you improved the original idea 1>",
        "<How you improved the original idea 2>",
        "<How you improved the original idea 3>"
    ],
    "implementation_phases": [
        {
            "phase": 1,
            "name": "<Phase name>",
            "tasks": ["<task1>", "<task2>"],
            "duration": "<time>"
        },
        {
            "phase": 2,
            "name": "<Phase name>",
            "tasks": ["<task1>", "<task2>"],
            "duration": "<time>"
        },
        {
            "phase": 3,
            "name": "<Phase name>",
            "tasks": ["<task1>", "<task2>"],
            "duration": "<time>"
        }
    ],
    "interview_talking_points": [
        "<Technical challenge solved>",
        "<Design decision made>",
        "<Impact/result achieved>"
    ]
}

CRITICAL: Keep the project achievable based on the user's skill level while still making it impressive.`,
		userIdea,
		defaultString(careerGoal, "Software Developer"),
		defaultString(formatSkills(skills), "General programming"),
		level)

	result, err := a.llm.CallJSON(ctx, prompt, projectsSystemPrompt, 0.5, 4000)
	if err != nil {
		return Result{Agent: a.name, Status: StatusError, Key: "improved_project",
			Err: "Could not improve the project idea. Please try rephrasing."}
	}
	return Result{Agent: a.name, Status: StatusSuccess, Key: "improved_project", Payload: result}
}

// ToSaveable strips a suggestion or improved project down to the shape
// the projects table stores.
func (a *ProjectsAgent) ToSaveable(projectData map[string]interface{}) map[string]interface{} {
	saveable := map[string]interface{}{
		"project_title":     defaultString(getString(projectData, "project_title"), "Untitled Project"),
		"difficulty":        defaultString(getString(projectData, "difficulty"), "Intermediate"),
		"description":       getString(projectData, "description"),
		"skills_used":       emptyIfNil(getList(projectData, "skills_used")),
		"features":          emptyIfNil(getList(projectData, "features")),
		"tech_stack":        getMap(projectData, "tech_stack"),
		"learning_outcomes": emptyIfNil(getList(projectData, "learning_outcomes")),
		"resume_value":      getString(projectData, "resume_value"),
		"status":            "planned",
	}
	for _, key := range []string{"implementation_phases", "estimated_duration", "interview_talking_points"} {
		if v, ok := projectData[key]; ok {
			saveable[key] = v
		}
	}
	if summary := getString(projectData, "original_idea_summary"); summary != "" {
		saveable["original_idea"] = summary
	}
	return saveable
}

// ChatResult is the structured outcome of one conversational turn about
// projects.
type ChatResult struct {
	Agent         string      `json:"agent"`
	Status        string      `json:"status"`
	Intent        string      `json:"intent"`
	Response      string      `json:"response"`
	Action        string      `json:"action"`
	ExtractedIdea string      `json:"extracted_idea,omitempty"`
	SelectedIndex interface{} `json:"selected_index"`
	NeedsMoreInfo bool        `json:"needs_more_info"`
}

// ChatResponse classifies a conversational message about projects and
// decides the next action.
func (a *ProjectsAgent) ChatResponse(ctx context.Context, message string, skills []models.Skill, careerGoal, stage string, previousTitles []string) ChatResult {
	var skillNames []string
	for _, s := range skills {
		skillNames = append(skillNames, s.SkillName)
	}

	previous := "None yet"
	if len(previousTitles) > 0 {
		if b, err := json.Marshal(previousTitles); err == nil {
			previous = string(b)
		}
	}

	prompt := fmt.Sprintf(`You are chatting with a user about project ideas. Analyze their message and respond appropriately.

## User Message:
"%s"

## User Context:
- Career Goal: %s
- Skills: %s
- Conversation Stage: %s

## Previous Suggestions Shown:
%s

Determine the user's intent and respond in JSON:
{
    "intent": "<suggest_projects|has_own_idea|select_project|ask_question|confirm|other>",
    "response_text": "<Your natural, friendly response to the user>",
    "action_needed": "<none|generate_suggestions|improve_idea|save_project|clarify>",
    "extracted_idea": "<If user shared a project idea, extract it here, otherwise null>",
    "selected_project_index": <If user selected a project by number, put index here, otherwise null>,
    "needs_more_info": <true|false>
}

GUIDELINES:
- If user says they have NO idea → action_needed = "generate_suggestions"
- If user describes a project idea → action_needed = "improve_idea", extract the idea
- If user says "yes" or confirms → action_needed = "save_project"
- If user picks a number (like "1" or "project 2") → extract the index
- Be conversational, helpful, and encouraging`,
		message,
		defaultString(careerGoal, "Software Developer"),
		defaultString(strings.Join(skillNames, ", "), "Not specified"),
		defaultString(stage, "initial"),
		previous)

	result, err := a.llm.CallJSON(ctx, prompt, projectsSystemPrompt, 0.5, 4000)
	if err != nil {
		return ChatResult{
			Agent:  a.name,
			Status: StatusFallback,
			Intent: "other",
			Response: "I'd be happy to help you with project ideas! Could you tell me more " +
				"about what you're looking for?",
			Action:        "clarify",
			NeedsMoreInfo: true,
		}
	}

	intent := defaultString(getString(result, "intent"), "other")
	responseText := defaultString(getString(result, "response_text"), getString(result, "response"))
	if responseText == "" {
		switch intent {
		case "suggest_projects":
			responseText = "I'd be happy to suggest some project ideas for you!"
		case "has_own_idea":
			responseText = "Great! Tell me about your project idea and I'll help you refine it."
		default:
			responseText = "How can I help you with your projects today?"
		}
	}

	needsMore := false
	if v, ok := result["needs_more_info"].(bool); ok {
		needsMore = v
	}

	return ChatResult{
		Agent:         a.name,
		Status:        StatusSuccess,
		Intent:        intent,
		Response:      responseText,
		Action:        defaultString(getString(result, "action_needed"), "none"),
		ExtractedIdea: getString(result, "extracted_idea"),
		SelectedIndex: result["selected_project_index"],
		NeedsMoreInfo: needsMore,
	}
}

func (a *ProjectsAgent) fallbackProfileAnalysis(skills []models.Skill, careerGoal string, gaps []GapSummary) Result {
	var strongest []string
	for i, s := range skills {
		if i >= 3 {
			break
		}
		strongest = append(strongest, s.SkillName)
	}
	var develop []string
	for i, g := range gaps {
		if i >= 3 {
			break
		}
		develop = append(develop, g.SkillName)
	}

	return Result{Agent: a.name, Status: StatusFallback, Key: "analysis", Payload: map[string]interface{}{
		"skill_level":            "beginner",
		"strongest_skills":       strongest,
		"skills_to_develop":      develop,
		"recommended_difficulty": "Beginner",
		"recommended_domains":    []interface{}{"Web Development", "Data Processing"},
		"portfolio_gaps":         []interface{}{"Portfolio projects", "Real-world applications"},
		"readiness_assessment":   "Ready to start building foundational projects",
		"focus_areas":            []interface{}{"Core skills practice", "Portfolio building"},
		"opening_message": fmt.Sprintf("Based on your profile, I can suggest projects tailored to your goal of becoming a %s. Do you already have any project idea in mind?",
			defaultString(careerGoal, "developer")),
	}}
}

func (a *ProjectsAgent) fallbackSuggestions(careerGoal string) Result {
	goalLower := strings.ToLower(careerGoal)

	var suggestions []interface{}
	switch {
	case strings.Contains(goalLower, "web") || strings.Contains(goalLower, "frontend") || strings.Contains(goalLower, "full"):
		suggestions = []interface{}{
			map[string]interface{}{
				"project_title":     "Personal Portfolio Website",
				"difficulty":        "Beginner",
				"description":       "A responsive portfolio website showcasing your skills, projects, and experience.",
				"skills_used":       []interface{}{"HTML", "CSS", "JavaScript", "React"},
				"features":          []interface{}{"Responsive design", "Project showcase", "Contact form", "Dark mode"},
				"tech_stack":        map[string]interface{}{"frontend": []interface{}{"React", "CSS"}, "hosting": []interface{}{"Netlify"}},
				"learning_outcomes": []interface{}{"Responsive design", "Component architecture", "Deployment"},
				"resume_value":      "Shows frontend skills and attention to design",
			},
			map[string]interface{}{
				"project_title":     "Task Management Application",
				"difficulty":        "Intermediate",
				"description":       "A full-stack task management app with user authentication and CRUD operations.",
				"skills_used":       []interface{}{"React", "Node.js", "SQL", "REST APIs"},
				"features":          []interface{}{"User auth", "CRUD tasks", "Categories", "Due dates", "Search"},
				"tech_stack":        map[string]interface{}{"frontend": []interface{}{"React"}, "backend": []interface{}{"Node.js", "Express"}, "database": []interface{}{"MySQL"}},
				"learning_outcomes": []interface{}{"Full-stack development", "Authentication", "Database design"},
				"resume_value":      "Demonstrates complete application development cycle",
			},
		}
	case strings.Contains(goalLower, "data") || strings.Contains(goalLower, "machine") || strings.Contains(goalLower, "ai"):
		suggestions = []interface{}{
			map[string]interface{}{
				"project_title":     "Data Visualization Dashboard",
				"difficulty":        "Beginner",
				"description":       "An interactive dashboard visualizing real-world data with charts and filters.",
				"skills_used":       []interface{}{"Python", "Pandas", "Matplotlib", "Plotly"},
				"features":          []interface{}{"Multiple chart types", "Filtering", "Data export", "Responsive layout"},
				"tech_stack":        map[string]interface{}{"backend": []interface{}{"Python", "Flask"}, "visualization": []interface{}{"Plotly", "D3.js"}},
				"learning_outcomes": []interface{}{"Data manipulation", "Visualization", "Dashboard design"},
				"resume_value":      "Shows data analysis and visualization skills",
			},
			map[string]interface{}{
				"project_title":     "Sentiment Analysis Tool",
				"difficulty":        "Intermediate",
				"description":       "An NLP tool that analyzes text sentiment using machine learning.",
				"skills_used":       []interface{}{"Python", "NLP", "Machine Learning", "APIs"},
				"features":          []interface{}{"Text analysis", "Sentiment scoring", "Batch processing", "API endpoint"},
				"tech_stack":        map[string]interface{}{"backend": []interface{}{"Python", "FastAPI"}, "ml": []interface{}{"scikit-learn", "NLTK"}},
				"learning_outcomes": []interface{}{"NLP basics", "ML pipelines", "API development"},
				"resume_value":      "Demonstrates ML and NLP application",
			},
		}
	default:
		suggestions = []interface{}{
			map[string]interface{}{
				"project_title":     "Personal Blog Platform",
				"difficulty":        "Beginner",
				"description":       "A blog platform where users can create, edit, and publish articles.",
				"skills_used":       []interface{}{"HTML", "CSS", "JavaScript", "SQL"},
				"features":          []interface{}{"Article CRUD", "Categories", "Search", "Comments"},
				"tech_stack":        map[string]interface{}{"frontend": []interface{}{"HTML", "CSS", "JS"}, "backend": []interface{}{"PHP"}, "database": []interface{}{"MySQL"}},
				"learning_outcomes": []interface{}{"Web fundamentals", "Database operations", "CRUD patterns"},
				"resume_value":      "Shows fundamental web development skills",
			},
			map[string]interface{}{
				"project_title":     "Weather Application",
				"difficulty":        "Beginner",
				"description":       "A weather app that fetches and displays weather data from a public API.",
				"skills_used":       []interface{}{"JavaScript", "APIs", "CSS"},
				"features":          []interface{}{"Current weather", "5-day forecast", "Location search", "Weather icons"},
				"tech_stack":        map[string]interface{}{"frontend": []interface{}{"JavaScript", "CSS"}, "api": []interface{}{"OpenWeatherMap"}},
				"learning_outcomes": []interface{}{"API integration", "Async JavaScript", "UI design"},
				"resume_value":      "Demonstrates API integration skills",
			},
		}
	}

	return Result{Agent: a.name, Status: StatusFallback, Key: "suggestions", Payload: map[string]interface{}{
		"suggestions": suggestions,
		"recommendation_note": fmt.Sprintf("These projects are tailored for your goal of becoming a %s.",
			defaultString(careerGoal, "developer")),
		"count": len(suggestions),
	}}
}
