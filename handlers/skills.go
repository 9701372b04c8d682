package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careeragent/utils"
)

type SkillRequest struct {
	SkillName       string  `json:"skill_name" binding:"required"`
	Level           string  `json:"level"`
	YearsExperience float64 `json:"years_experience"`
}

func (a *API) ListSkills(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	skills, err := a.Store.Skills.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load skills", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "skills": skills})
}

func (a *API) UpsertSkill(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if req.Level == "" {
		req.Level = "beginner"
	}

	skill, err := a.Store.Skills.Upsert(userID, req.SkillName, req.Level, req.YearsExperience)
	if err != nil {
		utils.InternalServerError(c, "Failed to save skill", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "skill": skill})
}

func (a *API) DeleteSkill(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if name == "" {
		utils.BadRequestError(c, "Skill name is required", nil)
		return
	}

	if err := a.Store.Skills.Delete(userID, name); err != nil {
		utils.InternalServerError(c, "Failed to delete skill", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill removed"})
}

// AnalyzeSkillGaps runs the gap analysis event through the orchestrator
// so results are persisted and the session recorded.
func (a *API) AnalyzeSkillGaps(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	_ = c.ShouldBindJSON(&payload)

	result := a.Orchestrator.RunAgent(c.Request.Context(), "skill_gap", userID, payload)
	c.JSON(http.StatusOK, result)
}

func (a *API) ListSkillGaps(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	gaps, err := a.Store.Gaps.ListByUser(userID, nil)
	if err != nil {
		utils.InternalServerError(c, "Failed to load skill gaps", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "skill_gaps": gaps})
}

type CompareJobRequest struct {
	Requirements []string `json:"requirements" binding:"required"`
}

// CompareWithJob scores the user's skills against a pasted requirement
// list. Deterministic; no model call.
func (a *API) CompareWithJob(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req CompareJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	skills, err := a.Store.Skills.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load skills", err)
		return
	}

	result := a.SkillGapAgent.CompareWithJob(skills, req.Requirements)
	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) RoleRequirements(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		utils.BadRequestError(c, "role query parameter is required", nil)
		return
	}

	result := a.SkillGapAgent.GetRoleRequirements(c.Request.Context(), role)
	c.JSON(http.StatusOK, result.ToMap())
}

// PrioritizeGaps re-orders the stored gaps for the user's goal.
func (a *API) PrioritizeGaps(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	gaps, err := a.Store.Gaps.ListByUser(userID, nil)
	if err != nil {
		utils.InternalServerError(c, "Failed to load skill gaps", err)
		return
	}

	goal := ""
	if primary, err := a.Store.Goals.GetPrimary(userID); err == nil && primary != nil {
		goal = primary.TargetRole
	}

	result := a.SkillGapAgent.PrioritizeGaps(c.Request.Context(), gaps, goal)
	c.JSON(http.StatusOK, result.ToMap())
}
