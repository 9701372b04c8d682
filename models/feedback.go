package models

import (
	"database/sql"
	"fmt"
	"sort"
	"time"
)

type Feedback struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	FeedbackType string    `json:"feedback_type"`
	Content      string    `json:"content"`
	Analysis     string    `json:"analysis"`
	CreatedAt    time.Time `json:"created_at"`
}

type FeedbackModel struct {
	DB *sql.DB
}

func NewFeedbackModel(db *sql.DB) *FeedbackModel {
	return &FeedbackModel{DB: db}
}

func (m *FeedbackModel) Create(userID int, feedbackType, content, analysis string) (*Feedback, error) {
	fb := &Feedback{}
	query := `
		INSERT INTO feedback (user_id, feedback_type, content, analysis)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, feedback_type, content, analysis, created_at
	`
	err := m.DB.QueryRow(query, userID, feedbackType, content, analysis).Scan(
		&fb.ID, &fb.UserID, &fb.FeedbackType, &fb.Content, &fb.Analysis, &fb.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func (m *FeedbackModel) ListByUser(userID, limit int) ([]Feedback, error) {
	query := `
		SELECT id, user_id, feedback_type, content, analysis, created_at
		FROM feedback WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Feedback
	for rows.Next() {
		var fb Feedback
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.FeedbackType, &fb.Content, &fb.Analysis, &fb.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	return items, rows.Err()
}

// FlattenAnalysis renders an analysis object into the display string stored
// in the analysis column. The flattening is lossy on purpose: feedback
// history is read back by humans, not machines.
func FlattenAnalysis(analysis map[string]interface{}) string {
	if len(analysis) == 0 {
		return ""
	}

	keys := make([]string, 0, len(analysis))
	for k := range analysis {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		if out != "" {
			out += "; "
		}
		out += fmt.Sprintf("%s: %v", k, analysis[k])
	}
	return out
}
