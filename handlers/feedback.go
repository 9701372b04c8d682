package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careeragent/agents"
	"careeragent/models"
	"careeragent/utils"
)

type FeedbackRequest struct {
	Source        string `json:"source"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	Stage         string `json:"stage"`
	InterviewType string `json:"interview_type"`
	Message       string `json:"message" binding:"required"`
	Questions     string `json:"questions"`
}

func (r FeedbackRequest) toInput(skills []models.Skill) agents.FeedbackInput {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.SkillName)
	}
	return agents.FeedbackInput{
		Source:        r.Source,
		Company:       r.Company,
		Role:          r.Role,
		Stage:         r.Stage,
		InterviewType: r.InterviewType,
		Message:       r.Message,
		Questions:     r.Questions,
		UserSkills:    strings.Join(names, ", "),
	}
}

// ProcessFeedback runs the full feedback event: analysis, persistence,
// pattern detection, and the roadmap cascade.
func (a *API) ProcessFeedback(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	payload := map[string]interface{}{
		"source":         req.Source,
		"company":        req.Company,
		"role":           req.Role,
		"stage":          req.Stage,
		"interview_type": req.InterviewType,
		"message":        req.Message,
		"questions":      req.Questions,
	}

	result := a.Orchestrator.RunAgent(c.Request.Context(), "feedback", userID, payload)
	c.JSON(http.StatusOK, result)
}

func (a *API) ListFeedback(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	history, err := a.Store.Feedback.ListByUser(userID, 50)
	if err != nil {
		utils.InternalServerError(c, "Failed to load feedback", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "feedback": history})
}

// AnalyzeRejection analyzes a rejection without persisting it.
func (a *API) AnalyzeRejection(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	skills, _ := a.Store.Skills.ListByUser(userID)
	result := a.Feedback.AnalyzeRejection(c.Request.Context(), req.toInput(skills))
	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) AnalyzeInterview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	skills, _ := a.Store.Skills.ListByUser(userID)
	result := a.Feedback.AnalyzeInterview(c.Request.Context(), req.toInput(skills))
	c.JSON(http.StatusOK, result.ToMap())
}

// ComprehensiveFeedback runs the deep analysis and saves the outcome to
// the feedback history.
func (a *API) ComprehensiveFeedback(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return
	}

	result := a.Feedback.ComprehensiveAnalysis(c.Request.Context(), req.toInput(state.Skills), state.Profile, state.Skills, state.Applications)

	source := req.Source
	if source == "" {
		source = "feedback"
	}
	if _, err := a.Store.Feedback.Create(userID, source, req.Message, models.FlattenAnalysis(result.Payload)); err != nil {
		a.Logger.Error("feedback save failed", err)
	}

	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) FeedbackPatterns(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	history, err := a.Store.Feedback.ListByUser(userID, 50)
	if err != nil {
		utils.InternalServerError(c, "Failed to load feedback", err)
		return
	}

	result := a.Feedback.DetectPatterns(c.Request.Context(), history)
	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) ProgressSummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return
	}

	result := a.Feedback.AnalyzeProgress(c.Request.Context(), agents.ProgressInput{
		CompletedTasks: state.Stats.CompletedTasks,
		TotalTasks:     state.Stats.TotalTasks,
		CompletionRate: state.Stats.CompletionRate,
		WeeksElapsed:   len(state.Plans),
	})
	c.JSON(http.StatusOK, result.ToMap())
}

type WeeklyReportRequest struct {
	CurrentWeek    int      `json:"current_week"`
	TasksCompleted []string `json:"tasks_completed"`
	HoursSpent     int      `json:"hours_spent"`
	NewSkills      []string `json:"new_skills"`
	Challenges     string   `json:"challenges"`
}

func (a *API) WeeklyReport(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req WeeklyReportRequest
	_ = c.ShouldBindJSON(&req)

	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return
	}

	input := agents.WeeklyReportInput{
		TargetRole:     state.TargetRole("your target role"),
		CurrentWeek:    req.CurrentWeek,
		TasksCompleted: req.TasksCompleted,
		HoursSpent:     req.HoursSpent,
		NewSkills:      req.NewSkills,
		Applications:   state.Stats.TotalApplications,
		Challenges:     req.Challenges,
	}
	if state.Profile != nil {
		input.Name = state.Profile.Name
	}

	result := a.Feedback.GenerateWeeklyReport(c.Request.Context(), input)
	c.JSON(http.StatusOK, result.ToMap())
}
