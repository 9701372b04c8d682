package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/agents"
	"careeragent/models"
)

func embeddingTestRouter() (*gin.Engine, *API) {
	gin.SetMode(gin.TestMode)
	api := &API{Embeddings: agents.NewEmbeddingGenerator()}
	r := gin.New()
	r.POST("/api/embedding", api.Embed)
	r.POST("/api/embedding/similarity", api.Similarity)
	return r, api
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestEmbedEndpoint(t *testing.T) {
	router, api := embeddingTestRouter()

	w := postJSON(t, router, "/api/embedding", gin.H{"text": "golang concurrency"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status    string    `json:"status"`
		Embedding []float64 `json:"embedding"`
		Dimension int       `json:"dimension"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Embedding, api.Embeddings.Dimension())
}

func TestEmbedEndpointRequiresText(t *testing.T) {
	router, _ := embeddingTestRouter()

	w := postJSON(t, router, "/api/embedding", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimilarityEndpoint(t *testing.T) {
	router, _ := embeddingTestRouter()

	w := postJSON(t, router, "/api/embedding/similarity", gin.H{
		"text_a": "backend developer",
		"text_b": "backend developer",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Similarity float64 `json:"similarity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1.0, resp.Similarity, 0.0001)
}

func TestRequireUserRejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/needs-user", func(c *gin.Context) {
		if _, ok := requireUser(c); !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/needs-user", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatSystemPromptIncludesUserContext(t *testing.T) {
	state := &agents.UserState{
		Profile: &models.User{Name: "Alex", CurrentLevel: "intermediate", ReadinessScore: 65},
		PrimaryGoal: &models.CareerGoal{
			TargetRole: "Backend Developer",
		},
		Skills: []models.Skill{
			{SkillName: "Go", Level: "intermediate"},
			{SkillName: "PostgreSQL", Level: "beginner"},
		},
		SkillGaps: []models.SkillGap{
			{SkillName: "Kubernetes", Priority: "high"},
		},
		Plans: []models.LearningPlan{
			{WeekNumber: 2, Title: "API fundamentals", Status: "in_progress"},
		},
		Stats: agents.Stats{TotalApplications: 4, ActiveApplications: 2},
	}

	prompt := chatSystemPrompt(state)

	assert.Contains(t, prompt, "You are chatting with Alex")
	assert.Contains(t, prompt, "Target Role: Backend Developer")
	assert.Contains(t, prompt, "Career Readiness Score: 65%")
	assert.Contains(t, prompt, "Go (intermediate), PostgreSQL (beginner)")
	assert.Contains(t, prompt, "Kubernetes (high priority)")
	assert.Contains(t, prompt, "Week 2: API fundamentals")
	assert.Contains(t, prompt, "4 total, 2 active")
}

func TestChatSystemPromptDefaults(t *testing.T) {
	prompt := chatSystemPrompt(&agents.UserState{})

	assert.Contains(t, prompt, "You are chatting with User")
	assert.Contains(t, prompt, "Target Role: Not set")
	assert.Contains(t, prompt, "Skills: None added yet")
	assert.Contains(t, prompt, "Skill Gaps to Work On: None identified")
	assert.Contains(t, prompt, "Current Learning Plan: No active plan")
}

func TestFeedbackRequestToInput(t *testing.T) {
	req := FeedbackRequest{
		Source:  "rejection",
		Company: "Acme",
		Role:    "Backend Developer",
		Message: "Not enough distributed systems experience",
	}
	skills := []models.Skill{
		{SkillName: "Go"},
		{SkillName: "SQL"},
	}

	input := req.toInput(skills)

	assert.Equal(t, "rejection", input.Source)
	assert.Equal(t, "Go, SQL", input.UserSkills)
	assert.Equal(t, "Acme", input.Company)
}
