package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type ReadinessRecord struct {
	ID         int                    `json:"id"`
	UserID     int                    `json:"user_id"`
	Score      int                    `json:"score"`
	Breakdown  map[string]interface{} `json:"breakdown"`
	RecordedAt time.Time              `json:"recorded_at"`
}

type ReadinessModel struct {
	DB *sql.DB
}

func NewReadinessModel(db *sql.DB) *ReadinessModel {
	return &ReadinessModel{DB: db}
}

func (m *ReadinessModel) Record(userID, score int, breakdown map[string]interface{}) error {
	if breakdown == nil {
		breakdown = map[string]interface{}{}
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return err
	}
	query := `INSERT INTO career_readiness (user_id, score, breakdown) VALUES ($1, $2, $3)`
	_, err = m.DB.Exec(query, userID, score, string(breakdownJSON))
	return err
}

func (m *ReadinessModel) History(userID, limit int) ([]ReadinessRecord, error) {
	query := `
		SELECT id, user_id, score, breakdown, recorded_at
		FROM career_readiness WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ReadinessRecord
	for rows.Next() {
		var r ReadinessRecord
		var breakdown string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Score, &breakdown, &r.RecordedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(breakdown), &r.Breakdown); err != nil {
			r.Breakdown = map[string]interface{}{}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
