package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"careeragent/agents"
	"careeragent/models"
	"careeragent/services"
	"careeragent/utils"
)

// API holds everything the HTTP layer needs. Agents are stateless and
// shared between requests; the orchestrator owns the agentic event loop
// while individual endpoints can call agents directly.
type API struct {
	Store        *agents.Store
	Orchestrator *agents.Orchestrator
	Resumes      *models.ResumeModel
	Projects     *models.ProjectModel
	Chat         *models.ChatMessageModel
	JWT          *services.JWTService
	S3           *services.S3Service

	LLM           agents.ModelCaller
	Reasoning     *agents.ReasoningAgent
	SkillGapAgent *agents.SkillGapAgent
	Planner       *agents.PlannerAgent
	Feedback      *agents.FeedbackAgent
	ResumeAgent   *agents.ResumeAgent
	ProjectsAgent *agents.ProjectsAgent
	Embeddings    *agents.EmbeddingGenerator

	Logger *utils.Logger
}

// NewAPI wires the handler layer. s3 may be nil when AWS credentials
// are not configured; resume export then degrades to JSON-only.
func NewAPI(db *sql.DB, llm agents.ModelCaller, jwtService *services.JWTService, s3 *services.S3Service, logger *utils.Logger) *API {
	store := agents.NewStore(db)
	return &API{
		Store:         store,
		Orchestrator:  agents.NewOrchestrator(store, llm, logger.WithComponent("orchestrator")),
		Resumes:       models.NewResumeModel(db),
		Projects:      models.NewProjectModel(db),
		Chat:          models.NewChatMessageModel(db),
		JWT:           jwtService,
		S3:            s3,
		LLM:           llm,
		Reasoning:     agents.NewReasoningAgent(llm),
		SkillGapAgent: agents.NewSkillGapAgent(llm),
		Planner:       agents.NewPlannerAgent(llm),
		Feedback:      agents.NewFeedbackAgent(llm),
		ResumeAgent:   agents.NewResumeAgent(llm),
		ProjectsAgent: agents.NewProjectsAgent(llm),
		Embeddings:    agents.NewEmbeddingGenerator(),
		Logger:        logger.WithComponent("handlers"),
	}
}

// currentUserID reads the authenticated user from the gin context. The
// auth middleware sets it; a missing value means the route was wired
// without the middleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func requireUser(c *gin.Context) (int, bool) {
	id, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
	}
	return id, ok
}
