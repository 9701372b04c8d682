package models

import (
	"database/sql"
	"time"
)

type AgentSession struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	EventType   string     `json:"event_type"`
	Status      string     `json:"status"`
	Result      string     `json:"result"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type AgentSessionModel struct {
	DB *sql.DB
}

func NewAgentSessionModel(db *sql.DB) *AgentSessionModel {
	return &AgentSessionModel{DB: db}
}

func (m *AgentSessionModel) Create(userID int, eventType string) (int, error) {
	var id int
	query := `
		INSERT INTO agent_sessions (user_id, event_type, status)
		VALUES ($1, $2, 'running')
		RETURNING id
	`
	err := m.DB.QueryRow(query, userID, eventType).Scan(&id)
	return id, err
}

func (m *AgentSessionModel) Complete(sessionID int, result string) error {
	query := `UPDATE agent_sessions SET status = 'completed', result = $1, completed_at = $2 WHERE id = $3`
	_, err := m.DB.Exec(query, result, time.Now(), sessionID)
	return err
}

func (m *AgentSessionModel) Fail(sessionID int, errMsg string) error {
	query := `UPDATE agent_sessions SET status = 'failed', error = $1, completed_at = $2 WHERE id = $3`
	_, err := m.DB.Exec(query, errMsg, time.Now(), sessionID)
	return err
}

func (m *AgentSessionModel) Recent(userID, limit int) ([]AgentSession, error) {
	query := `
		SELECT id, user_id, event_type, status, result, error, started_at, completed_at
		FROM agent_sessions WHERE user_id = $1 ORDER BY started_at DESC LIMIT $2
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []AgentSession
	for rows.Next() {
		var s AgentSession
		var completedAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.UserID, &s.EventType, &s.Status, &s.Result, &s.Error, &s.StartedAt, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			s.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
