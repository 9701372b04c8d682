package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careeragent/utils"
)

type ApplicationRequest struct {
	Company string `json:"company" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

func (a *API) CreateApplication(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if req.Status == "" {
		req.Status = "applied"
	}

	app, err := a.Store.Applications.Create(userID, req.Company, req.Role, req.Status, req.Notes)
	if err != nil {
		utils.InternalServerError(c, "Failed to save application", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

func (a *API) ListApplications(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	apps, err := a.Store.Applications.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load applications", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

func (a *API) UpdateApplicationStatus(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid application id", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := a.Store.Applications.UpdateStatus(appID, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update application", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application updated"})
}

// AnalyzeApplication runs the application event: role matching against
// the catalog, or a specific posting when requirements are supplied.
func (a *API) AnalyzeApplication(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	_ = c.ShouldBindJSON(&payload)

	result := a.Orchestrator.RunAgent(c.Request.Context(), "application", userID, payload)
	c.JSON(http.StatusOK, result)
}

// InterviewPrep generates a preparation guide for a specific company
// and role.
func (a *API) InterviewPrep(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	_ = c.ShouldBindJSON(&payload)

	result := a.Orchestrator.RunAgent(c.Request.Context(), "interview_prep", userID, payload)
	c.JSON(http.StatusOK, result)
}
