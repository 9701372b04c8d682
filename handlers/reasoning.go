package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careeragent/agents"
	"careeragent/utils"
)

func (a *API) profileFor(c *gin.Context, userID int) (agents.Profile, bool) {
	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return agents.Profile{}, false
	}

	profile := agents.Profile{
		TargetRole: state.TargetRole(""),
		Skills:     state.Skills,
	}
	if state.Profile != nil {
		profile.Name = state.Profile.Name
		profile.CurrentLevel = state.Profile.CurrentLevel
	}
	if state.PrimaryGoal != nil {
		profile.CareerGoal = state.PrimaryGoal.TargetRole
	}
	return profile, true
}

// AnalyzeProfile runs the reasoning agent over the stored profile.
func (a *API) AnalyzeProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, ok := a.profileFor(c, userID)
	if !ok {
		return
	}

	result := a.Reasoning.AnalyzeProfile(c.Request.Context(), profile)
	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) CalculateReadiness(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return
	}

	result := a.Reasoning.CalculateReadiness(c.Request.Context(), state.Skills, state.TargetRole("Software Engineer"))
	if result.Status != agents.StatusError {
		if score, ok := result.Payload["readiness_score"].(float64); ok {
			if err := a.Store.Users.UpdateReadiness(userID, int(score)); err != nil {
				a.Logger.Error("readiness update failed", err)
			}
		} else if score, ok := result.Payload["readiness_score"].(int); ok {
			if err := a.Store.Users.UpdateReadiness(userID, score); err != nil {
				a.Logger.Error("readiness update failed", err)
			}
		}
	}

	c.JSON(http.StatusOK, result.ToMap())
}

type CompareRolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=2"`
}

func (a *API) CompareRoles(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req CompareRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	profile, ok := a.profileFor(c, userID)
	if !ok {
		return
	}

	result := a.Reasoning.CompareRoles(c.Request.Context(), profile, req.Roles)
	c.JSON(http.StatusOK, result.ToMap())
}
