package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careeragent/utils"
)

type RunAgentRequest struct {
	EventType string                 `json:"event_type" binding:"required"`
	Payload   map[string]interface{} `json:"payload"`
}

// RunAgent dispatches an event through the orchestrator's agentic loop.
func (a *API) RunAgent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req RunAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "event_type is required", err)
		return
	}

	result := a.Orchestrator.RunAgent(c.Request.Context(), req.EventType, userID, req.Payload)
	c.JSON(http.StatusOK, result)
}

// AgentStatus returns the current snapshot plus the reasoned next action.
func (a *API) AgentStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, a.Orchestrator.AgentState(userID))
}

// AgentSessions lists recent agent runs for the user.
func (a *API) AgentSessions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	sessions, err := a.Store.Sessions.Recent(userID, 20)
	if err != nil {
		utils.InternalServerError(c, "Failed to load agent sessions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sessions": sessions})
}
