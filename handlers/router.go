package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"careeragent/middleware"
)

// RegisterRoutes wires the full REST surface. Auth-scoped routes share
// the JWT middleware; model-heavy routes get the tighter rate limiter.
func (a *API) RegisterRoutes(r *gin.Engine, db *sql.DB) {
	limiters := middleware.CreateRateLimiters()
	caches := middleware.CreateCaches()

	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.MaxRequestSize(2 << 20))

	r.GET("/api/health", Health(db, a.LLM != nil))

	auth := r.Group("/api/auth")
	auth.Use(limiters["auth"].Limit())
	{
		auth.POST("/register", a.Register)
		auth.POST("/login", a.Login)
		auth.POST("/logout", a.Logout)
	}

	api := r.Group("/api")
	api.Use(middleware.Auth(a.JWT), limiters["general"].Limit())
	{
		api.GET("/user/profile", a.GetProfile)
		api.PUT("/user/profile", a.UpdateProfile)
		api.POST("/user/password", a.ChangePassword)

		api.GET("/skills", a.ListSkills)
		api.POST("/skills", a.UpsertSkill)
		api.DELETE("/skills/:name", a.DeleteSkill)
		api.GET("/skills/gaps", a.ListSkillGaps)
		api.GET("/skills/requirements", a.RoleRequirements)

		api.GET("/goals", a.ListGoals)
		api.PATCH("/goals/:id/status", a.UpdateGoalStatus)

		api.GET("/roadmap", a.GetRoadmap)
		api.PATCH("/plans/:id/status", a.UpdatePlanStatus)
		api.POST("/plans/progress", a.MarkTask)

		api.GET("/feedback", a.ListFeedback)

		api.GET("/applications", a.ListApplications)
		api.POST("/applications", a.CreateApplication)
		api.PATCH("/applications/:id/status", a.UpdateApplicationStatus)

		api.GET("/memory", a.RecentMemories)
		api.POST("/memory", a.StoreMemory)
		api.POST("/memory/search", a.SearchMemories)

		api.GET("/resumes", a.ListResumes)
		api.GET("/resumes/:id", a.GetResume)
		api.DELETE("/resumes/:id", a.DeleteResume)
		api.GET("/resumes/:id/export", a.ExportResume)

		api.GET("/projects", a.ListProjects)
		api.PATCH("/projects/:id/status", a.UpdateProjectStatus)
		api.DELETE("/projects/:id", a.DeleteProject)
		api.POST("/projects/save", a.SaveProject)

		api.GET("/dashboard", a.Dashboard)
		api.GET("/opportunities", a.Opportunities)

		api.GET("/agent/status", a.AgentStatus)
		api.GET("/agent/sessions", a.AgentSessions)
		api.GET("/agent/chat/history", a.ChatHistory)
		api.POST("/agent/chat/clear", a.ClearChat)
	}

	// Model-backed routes: lower rate limit, cached where deterministic.
	ai := r.Group("/api")
	ai.Use(middleware.Auth(a.JWT), limiters["ai"].Limit(), caches["ai"].Cache())
	{
		ai.POST("/agent/run", a.RunAgent)
		ai.POST("/agent/chat", a.SendChat)

		ai.POST("/goals", a.CreateGoal)

		ai.POST("/skills/analyze", a.AnalyzeSkillGaps)
		ai.POST("/skills/compare", a.CompareWithJob)
		ai.POST("/skills/prioritize", a.PrioritizeGaps)

		ai.POST("/reasoning/analyze", a.AnalyzeProfile)
		ai.POST("/reasoning/readiness", a.CalculateReadiness)
		ai.POST("/reasoning/compare-roles", a.CompareRoles)

		ai.POST("/roadmap/generate", a.GenerateRoadmap)
		ai.POST("/roadmap/weekly", a.GenerateWeeklyPlan)
		ai.POST("/roadmap/projects", a.SuggestPracticeProjects)
		ai.POST("/roadmap/adjust", a.AdjustPlan)

		ai.POST("/feedback", a.ProcessFeedback)
		ai.POST("/feedback/rejection", a.AnalyzeRejection)
		ai.POST("/feedback/interview", a.AnalyzeInterview)
		ai.POST("/feedback/comprehensive", a.ComprehensiveFeedback)
		ai.POST("/feedback/patterns", a.FeedbackPatterns)
		ai.POST("/feedback/progress", a.ProgressSummary)
		ai.POST("/feedback/weekly-report", a.WeeklyReport)

		ai.POST("/resumes/generate", a.GenerateResume)
		ai.POST("/resumes/tailor", a.TailorResume)
		ai.POST("/resumes/analyze", a.AnalyzeResumeMatch)
		ai.POST("/resumes/improve", a.ImproveResume)

		ai.POST("/projects/profile", a.AnalyzeProjectProfile)
		ai.POST("/projects/suggest", a.SuggestProjects)
		ai.POST("/projects/improve", a.ImproveProjectIdea)
		ai.POST("/projects/chat", a.ProjectChat)

		ai.POST("/applications/analyze", a.AnalyzeApplication)
		ai.POST("/interview-prep", a.InterviewPrep)

		ai.POST("/analysis/full", a.FullAnalysis)
		ai.POST("/analysis/plan", a.AnalyzeAndPlan)
	}

	// Embeddings are deterministic and cheap; no auth needed.
	embed := r.Group("/api/embedding")
	embed.Use(caches["general"].Cache())
	{
		embed.POST("", a.Embed)
		embed.POST("/similarity", a.Similarity)
	}
}
