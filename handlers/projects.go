package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careeragent/agents"
	"careeragent/models"
	"careeragent/utils"
)

func (a *API) projectContext(c *gin.Context, userID int) (*agents.UserState, []agents.GapSummary, string, bool) {
	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return nil, nil, "", false
	}

	gaps := make([]agents.GapSummary, 0, len(state.SkillGaps))
	for _, g := range state.SkillGaps {
		gaps = append(gaps, agents.GapSummary{SkillName: g.SkillName, Priority: g.Priority, CurrentLevel: g.CurrentLevel})
	}
	return state, gaps, state.TargetRole("Software Engineer"), true
}

func (a *API) completedProjects(userID int) []models.Project {
	projects, err := a.Projects.ListByUser(userID)
	if err != nil {
		return nil
	}
	var done []models.Project
	for _, p := range projects {
		if p.Status == "completed" {
			done = append(done, p)
		}
	}
	return done
}

func (a *API) AnalyzeProjectProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	state, gaps, goal, ok := a.projectContext(c, userID)
	if !ok {
		return
	}

	result := a.ProjectsAgent.AnalyzeUserProfile(c.Request.Context(), state.Skills, goal, a.completedProjects(userID), gaps)
	c.JSON(http.StatusOK, result.ToMap())
}

type SuggestProjectsRequest struct {
	Count int `json:"count"`
}

func (a *API) SuggestProjects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req SuggestProjectsRequest
	_ = c.ShouldBindJSON(&req)
	if req.Count <= 0 {
		req.Count = 3
	}

	state, gaps, goal, ok := a.projectContext(c, userID)
	if !ok {
		return
	}

	result := a.ProjectsAgent.SuggestProjects(c.Request.Context(), state.Profile, state.Skills, goal, gaps, a.completedProjects(userID), req.Count)
	c.JSON(http.StatusOK, result.ToMap())
}

type ImproveIdeaRequest struct {
	Idea string `json:"idea" binding:"required"`
}

func (a *API) ImproveProjectIdea(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ImproveIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	state, _, goal, ok := a.projectContext(c, userID)
	if !ok {
		return
	}

	result := a.ProjectsAgent.ImproveUserIdea(c.Request.Context(), req.Idea, state.Profile, state.Skills, goal)
	c.JSON(http.StatusOK, result.ToMap())
}

type SaveProjectRequest struct {
	Project map[string]interface{} `json:"project" binding:"required"`
}

// SaveProject persists a suggested or improved project. The agent
// normalizes the payload before it reaches the table.
func (a *API) SaveProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	saveable := a.ProjectsAgent.ToSaveable(req.Project)

	project := &models.Project{
		Title:       saveable["project_title"].(string),
		Description: saveable["description"].(string),
		Difficulty:  saveable["difficulty"].(string),
		Status:      saveable["status"].(string),
		Details:     saveable,
	}
	if duration, ok := saveable["estimated_duration"].(string); ok {
		project.EstimatedTime = duration
	}
	for _, v := range saveable["skills_used"].([]interface{}) {
		if s, ok := v.(string); ok {
			project.Technologies = append(project.Technologies, s)
		}
	}

	created, err := a.Projects.Create(userID, project)
	if err != nil {
		utils.InternalServerError(c, "Failed to save project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": created})
}

func (a *API) ListProjects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	projects, err := a.Projects.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

func (a *API) UpdateProjectStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid project id", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	project, err := a.Projects.GetByID(id)
	if err != nil || project.UserID != userID {
		utils.NotFoundError(c, "Project not found")
		return
	}

	project.Status = req.Status
	if err := a.Projects.Update(id, userID, project); err != nil {
		utils.InternalServerError(c, "Failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (a *API) DeleteProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid project id", err)
		return
	}

	if err := a.Projects.Delete(id, userID); err != nil {
		utils.InternalServerError(c, "Failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}

type ProjectChatRequest struct {
	Message string `json:"message" binding:"required"`
	Stage   string `json:"stage"`
}

// ProjectChat drives the conversational project flow: intent detection,
// suggestion selection, idea extraction.
func (a *API) ProjectChat(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ProjectChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if req.Stage == "" {
		req.Stage = "initial"
	}

	state, _, goal, ok := a.projectContext(c, userID)
	if !ok {
		return
	}

	var previousTitles []string
	if projects, err := a.Projects.ListByUser(userID); err == nil {
		for _, p := range projects {
			previousTitles = append(previousTitles, p.Title)
		}
	}

	result := a.ProjectsAgent.ChatResponse(c.Request.Context(), req.Message, state.Skills, goal, req.Stage, previousTitles)
	c.JSON(http.StatusOK, result)
}
