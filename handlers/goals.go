package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careeragent/utils"
)

type GoalRequest struct {
	TargetRole string `json:"target_role" binding:"required"`
	TargetDate string `json:"target_date"`
	Timeline   string `json:"timeline"`
	IsPrimary  *bool  `json:"is_primary"`
}

// CreateGoal saves a career goal and kicks off gap analysis for it.
func (a *API) CreateGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	isPrimary := true
	if req.IsPrimary != nil {
		isPrimary = *req.IsPrimary
	}
	if req.Timeline == "" {
		req.Timeline = "3 months"
	}

	goal, err := a.Store.Goals.Create(userID, req.TargetRole, req.TargetDate, req.Timeline, isPrimary)
	if err != nil {
		utils.InternalServerError(c, "Failed to save goal", err)
		return
	}

	analysis := a.Orchestrator.RunAgent(c.Request.Context(), "skill_gap", userID, map[string]interface{}{
		"target_role": req.TargetRole,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"goal":     goal,
		"analysis": analysis,
	})
}

func (a *API) ListGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	goals, err := a.Store.Goals.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load goals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "goals": goals})
}

func (a *API) UpdateGoalStatus(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid goal id", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := a.Store.Goals.UpdateStatus(goalID, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update goal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Goal updated"})
}
