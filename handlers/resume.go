package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careeragent/agents"
	"careeragent/models"
	"careeragent/utils"
)

type GenerateResumeRequest struct {
	Profile        agents.ResumeProfile      `json:"profile"`
	Experience     []models.ResumeExperience `json:"experience"`
	Education      []models.ResumeEducation  `json:"education"`
	Projects       []models.ResumeProject    `json:"projects"`
	TargetRole     string                    `json:"target_role"`
	JobDescription string                    `json:"job_description"`
}

// GenerateResume builds a structured resume from the user's profile and
// stores it as a new version. There is no canned fallback: a model
// failure returns an error status.
func (a *API) GenerateResume(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	skills, err := a.Store.Skills.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load skills", err)
		return
	}

	if req.Profile.Name == "" || req.Profile.Email == "" {
		if user, err := a.Store.Users.GetByID(userID); err == nil {
			if req.Profile.Name == "" {
				req.Profile.Name = user.Name
			}
			if req.Profile.Email == "" {
				req.Profile.Email = user.Email
			}
		}
	}
	if req.TargetRole == "" {
		if primary, err := a.Store.Goals.GetPrimary(userID); err == nil && primary != nil {
			req.TargetRole = primary.TargetRole
		}
	}

	result := a.ResumeAgent.GenerateStructuredResume(c.Request.Context(), req.Profile, skills,
		req.Experience, req.Education, req.Projects, req.TargetRole, req.JobDescription)
	if result.Status == agents.StatusError || result.ResumeData == nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": result.Message,
		})
		return
	}

	roleType := req.TargetRole
	if roleType == "" {
		roleType = "general"
	}
	saved, err := a.Resumes.Create(userID, roleType, result.ResumeData)
	if err != nil {
		utils.InternalServerError(c, "Failed to save resume", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": result.Status,
		"resume": saved,
	})
}

type TailorResumeRequest struct {
	ResumeID       int    `json:"resume_id" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
	TargetRole     string `json:"target_role"`
	TargetCompany  string `json:"target_company"`
}

func (a *API) TailorResume(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req TailorResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	existing, err := a.loadUserResume(c, userID, req.ResumeID)
	if err != nil {
		return
	}

	result := a.ResumeAgent.TailorToJobDescription(c.Request.Context(), *existing.ResumeData,
		req.JobDescription, req.TargetRole, req.TargetCompany)
	if result.Status == agents.StatusError || result.ResumeData == nil {
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": result.Message})
		return
	}

	roleType := req.TargetRole
	if roleType == "" {
		roleType = existing.RoleType
	}
	saved, err := a.Resumes.Create(userID, roleType, result.ResumeData)
	if err != nil {
		utils.InternalServerError(c, "Failed to save tailored resume", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   result.Status,
		"tailored": true,
		"resume":   saved,
	})
}

type AnalyzeResumeRequest struct {
	ResumeID       int    `json:"resume_id" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}

func (a *API) AnalyzeResumeMatch(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req AnalyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	resume, err := a.loadUserResume(c, userID, req.ResumeID)
	if err != nil {
		return
	}

	result := a.ResumeAgent.AnalyzeResumeMatch(c.Request.Context(), *resume.ResumeData, req.JobDescription)
	c.JSON(http.StatusOK, result.ToMap())
}

type ImproveResumeRequest struct {
	ResumeID   int    `json:"resume_id" binding:"required"`
	TargetRole string `json:"target_role"`
}

func (a *API) ImproveResume(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ImproveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	resume, err := a.loadUserResume(c, userID, req.ResumeID)
	if err != nil {
		return
	}

	history, _ := a.Store.Feedback.ListByUser(userID, 10)
	result := a.ResumeAgent.SuggestImprovements(c.Request.Context(), *resume.ResumeData, req.TargetRole, history)
	c.JSON(http.StatusOK, result.ToMap())
}

func (a *API) ListResumes(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resumes, err := a.Resumes.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load resumes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "resumes": resumes})
}

func (a *API) GetResume(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid resume id", err)
		return
	}

	resume, loadErr := a.loadUserResume(c, userID, id)
	if loadErr != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "resume": resume})
}

func (a *API) DeleteResume(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid resume id", err)
		return
	}

	if err := a.Resumes.Delete(id, userID); err != nil {
		utils.InternalServerError(c, "Failed to delete resume", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resume deleted"})
}

// ExportResume renders the stored resume to DOCX. With S3 configured
// the file is uploaded and a presigned URL returned; otherwise the
// document streams back directly.
func (a *API) ExportResume(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid resume id", err)
		return
	}

	resume, loadErr := a.loadUserResume(c, userID, id)
	if loadErr != nil {
		return
	}

	var buf bytes.Buffer
	if err := utils.RenderResumeDocx(resume.ResumeData, &buf); err != nil {
		utils.InternalServerError(c, "Failed to render resume document", err)
		return
	}

	fileName := fmt.Sprintf("resumes/%d/resume-%s-v%d.docx", userID, resume.RoleType, resume.Version)

	if a.S3 == nil {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resume-v%d.docx"`, resume.Version))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())
		return
	}

	url, err := a.S3.UploadResumeDocx(fileName, buf.Bytes())
	if err != nil {
		utils.InternalServerError(c, "Failed to upload resume document", err)
		return
	}
	if err := a.Resumes.SetDocumentURL(resume.ID, url); err != nil {
		a.Logger.Error("document url save failed", err)
	}

	downloadURL, err := a.S3.GeneratePresignedURL(fileName)
	if err != nil {
		downloadURL = url
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"document_url": url,
		"download_url": downloadURL,
	})
}

// loadUserResume fetches a resume and enforces ownership. It writes the
// error response itself; a non-nil error means the handler should stop.
func (a *API) loadUserResume(c *gin.Context, userID, resumeID int) (*models.GeneratedResume, error) {
	resume, err := a.Resumes.GetByID(resumeID)
	if err != nil || resume.UserID != userID {
		utils.NotFoundError(c, "Resume not found")
		if err == nil {
			err = fmt.Errorf("resume %d does not belong to user %d", resumeID, userID)
		}
		return nil, err
	}
	if resume.ResumeData == nil {
		utils.InternalServerError(c, "Stored resume is unreadable", nil)
		return nil, fmt.Errorf("resume %d has no data", resumeID)
	}
	return resume, nil
}
