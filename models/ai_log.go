package models

import (
	"database/sql"
)

// AIFeedbackLogModel records which model served which agent call. The log
// is write-mostly and read in ops queries, not by the application.
type AIFeedbackLogModel struct {
	DB *sql.DB
}

func NewAIFeedbackLogModel(db *sql.DB) *AIFeedbackLogModel {
	return &AIFeedbackLogModel{DB: db}
}

func (m *AIFeedbackLogModel) Log(userID int, agentName, modelUsed, status, detail string) error {
	query := `
		INSERT INTO ai_feedback_logs (user_id, agent_name, model_used, status, detail)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := m.DB.Exec(query, userID, agentName, modelUsed, status, detail)
	return err
}
