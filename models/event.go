package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type CareerEvent struct {
	ID        int                    `json:"id"`
	UserID    int                    `json:"user_id"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

type CareerEventModel struct {
	DB *sql.DB
}

func NewCareerEventModel(db *sql.DB) *CareerEventModel {
	return &CareerEventModel{DB: db}
}

func (m *CareerEventModel) Log(userID int, eventType string, payload map[string]interface{}) error {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	query := `INSERT INTO career_events (user_id, event_type, payload) VALUES ($1, $2, $3)`
	_, err = m.DB.Exec(query, userID, eventType, string(payloadJSON))
	return err
}

func (m *CareerEventModel) Recent(userID, limit int) ([]CareerEvent, error) {
	query := `
		SELECT id, user_id, event_type, payload, created_at
		FROM career_events WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []CareerEvent
	for rows.Next() {
		var e CareerEvent
		var payload string
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
			e.Payload = map[string]interface{}{}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
