package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careeragent/utils"
)

func (a *API) GetRoadmap(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	plans, err := a.Store.Plans.ListByUser(userID, nil)
	if err != nil {
		utils.InternalServerError(c, "Failed to load roadmap", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "plans": plans})
}

// GenerateRoadmap rebuilds the full learning roadmap through the
// orchestrator so gaps are analyzed first when missing.
func (a *API) GenerateRoadmap(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	_ = c.ShouldBindJSON(&payload)

	result := a.Orchestrator.RunAgent(c.Request.Context(), "roadmap", userID, payload)
	c.JSON(http.StatusOK, result)
}

type WeeklyPlanRequest struct {
	WeekNumber       int      `json:"week_number" binding:"required"`
	SkillsToLearn    []string `json:"skills_to_learn"`
	PreviousProgress string   `json:"previous_progress"`
}

func (a *API) GenerateWeeklyPlan(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	var req WeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	result := a.Planner.CreateWeeklyPlan(c.Request.Context(), req.WeekNumber, req.SkillsToLearn, req.PreviousProgress)
	c.JSON(http.StatusOK, result.ToMap())
}

// SuggestPracticeProjects asks the planner for portfolio project ideas
// based on the user's current skills.
func (a *API) SuggestPracticeProjects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	skills, err := a.Store.Skills.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load skills", err)
		return
	}

	names := make([]string, 0, len(skills))
	level := "beginner"
	for _, s := range skills {
		names = append(names, s.SkillName)
		if s.Level == "advanced" || s.Level == "expert" {
			level = "intermediate"
		}
	}

	result := a.Planner.SuggestProjects(c.Request.Context(), names, level)
	c.JSON(http.StatusOK, result.ToMap())
}

type AdjustPlanRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

func (a *API) AdjustPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req AdjustPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return
	}

	summary := ""
	for _, p := range state.Plans {
		summary += "Week " + strconv.Itoa(p.WeekNumber) + ": " + p.Title + "\n"
	}

	result := a.Planner.AdjustPlan(c.Request.Context(), summary, req.Feedback, state.Stats.CompletionRate)
	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) UpdatePlanStatus(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	planID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid plan id", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := a.Store.Plans.UpdateStatus(planID, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update plan", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Plan updated"})
}

type MarkTaskRequest struct {
	PlanID    int  `json:"plan_id" binding:"required"`
	TaskIndex int  `json:"task_index"`
	Completed bool `json:"completed"`
}

func (a *API) MarkTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req MarkTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := a.Store.Progress.MarkTask(userID, req.PlanID, req.TaskIndex, req.Completed); err != nil {
		utils.InternalServerError(c, "Failed to record progress", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Progress recorded"})
}
