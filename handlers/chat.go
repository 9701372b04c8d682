package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careeragent/agents"
	"careeragent/services"
	"careeragent/utils"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendChat answers a free-text question with the user's full career
// context in the system prompt. Both sides of the exchange are
// persisted, plus an interaction memory.
func (a *API) SendChat(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	state, err := a.Orchestrator.Observer().Observe(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load user state", err)
		return
	}

	systemPrompt := chatSystemPrompt(state)

	history, err := a.Chat.History(userID, 20)
	if err != nil {
		a.Logger.Error("chat history load failed", err)
	}

	messages := make([]services.ChatMessage, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, services.ChatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, services.ChatMessage{Role: "user", Content: req.Message})

	if err := a.Chat.Save(userID, "user", req.Message); err != nil {
		a.Logger.Error("chat save failed", err)
	}

	// Last 10 messages are enough context for the model.
	if len(messages) > 10 {
		messages = messages[len(messages)-10:]
	}

	response := a.LLM.Chat(c.Request.Context(), messages, systemPrompt, 0.7, 1500)

	if err := a.Chat.Save(userID, "assistant", response); err != nil {
		a.Logger.Error("chat save failed", err)
	}

	memoryContent := fmt.Sprintf("User asked: %s... AI responded about career guidance.", utils.Truncate(req.Message, 100))
	embedding := a.Embeddings.Generate(memoryContent)
	if _, err := a.Store.Memories.Save(userID, memoryContent, "interaction", map[string]interface{}{"type": "chat"}, embedding); err != nil {
		a.Logger.Error("chat memory save failed", err)
	}

	userContext := gin.H{"name": "User", "target_role": state.TargetRole("Not set"), "readiness_score": 0}
	if state.Profile != nil {
		userContext["name"] = state.Profile.Name
		userContext["readiness_score"] = state.Profile.ReadinessScore
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"response":     response,
		"user_context": userContext,
	})
}

func (a *API) ClearChat(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := a.Chat.Clear(userID); err != nil {
		utils.InternalServerError(c, "Failed to clear chat history", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Chat history cleared"})
}

func (a *API) ChatHistory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	history, err := a.Chat.History(userID, 50)
	if err != nil {
		utils.InternalServerError(c, "Failed to load chat history", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"history": history,
		"count":   len(history),
	})
}

func chatSystemPrompt(state *agents.UserState) string {
	userName := "User"
	currentLevel := "beginner"
	readiness := 0
	if state.Profile != nil {
		if state.Profile.Name != "" {
			userName = state.Profile.Name
		}
		if state.Profile.CurrentLevel != "" {
			currentLevel = state.Profile.CurrentLevel
		}
		readiness = state.Profile.ReadinessScore
	}

	skillsStr := "None added yet"
	if len(state.Skills) > 0 {
		parts := make([]string, 0, 10)
		for i, s := range state.Skills {
			if i >= 10 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", s.SkillName, s.Level))
		}
		skillsStr = strings.Join(parts, ", ")
	}

	gapsStr := "None identified"
	if len(state.SkillGaps) > 0 {
		parts := make([]string, 0, 5)
		for i, g := range state.SkillGaps {
			if i >= 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%s priority)", g.SkillName, g.Priority))
		}
		gapsStr = strings.Join(parts, ", ")
	}

	planInfo := "No active plan"
	for _, p := range state.Plans {
		if p.Status == "pending" || p.Status == "in_progress" {
			planInfo = fmt.Sprintf("Week %d: %s", p.WeekNumber, p.Title)
			break
		}
	}

	return fmt.Sprintf(`You are CareerAI, a friendly and knowledgeable AI career coach assistant. You are chatting with %s.

## User Profile:
- Name: %s
- Target Role: %s
- Current Level: %s
- Career Readiness Score: %d%%
- Skills: %s
- Skill Gaps to Work On: %s
- Current Learning Plan: %s
- Job Applications: %d total, %d active

## Your Capabilities:
- Answer questions about career development, job hunting, and skill building
- Provide personalized advice based on the user's profile and goals
- Help with interview preparation, resume tips, and job search strategies
- Explain technical concepts and learning paths
- Motivate and encourage the user in their career journey

## Guidelines:
- Be conversational, helpful, and encouraging
- Reference the user's specific situation when relevant
- Give actionable advice
- Be concise but thorough
- Use the user's name occasionally to be more personal
- If asked about something you don't have data for, acknowledge it and provide general guidance`,
		userName, userName, state.TargetRole("Not set"), currentLevel, readiness,
		skillsStr, gapsStr, planInfo,
		state.Stats.TotalApplications, state.Stats.ActiveApplications)
}
