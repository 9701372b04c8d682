package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard aggregates readiness, next action, current plan, and recent
// activity in one response.
func (a *API) Dashboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, a.Orchestrator.DashboardData(c.Request.Context(), userID))
}

// Opportunities scores the user against the built-in role catalog.
func (a *API) Opportunities(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, a.Orchestrator.OpportunityMatches(userID))
}

// FullAnalysis runs the combined profile + gap analysis and refreshes
// the stored readiness score.
func (a *API) FullAnalysis(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result := a.Orchestrator.RunAgent(c.Request.Context(), "full_analysis", userID, nil)
	c.JSON(http.StatusOK, result)
}

// AnalyzeAndPlan chains gap analysis into roadmap generation.
func (a *API) AnalyzeAndPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, a.Orchestrator.AnalyzeAndPlan(c.Request.Context(), userID))
}
