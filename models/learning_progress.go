package models

import (
	"database/sql"
	"time"
)

type LearningProgress struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	PlanID      int        `json:"plan_id"`
	TaskIndex   int        `json:"task_index"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type LearningProgressModel struct {
	DB *sql.DB
}

func NewLearningProgressModel(db *sql.DB) *LearningProgressModel {
	return &LearningProgressModel{DB: db}
}

func (m *LearningProgressModel) MarkTask(userID, planID, taskIndex int, completed bool) error {
	var completedAt interface{}
	if completed {
		completedAt = time.Now()
	}
	query := `
		INSERT INTO learning_progress (user_id, plan_id, task_index, completed, completed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := m.DB.Exec(query, userID, planID, taskIndex, completed, completedAt)
	return err
}

func (m *LearningProgressModel) ListByUser(userID int) ([]LearningProgress, error) {
	query := `
		SELECT id, user_id, plan_id, task_index, completed, completed_at
		FROM learning_progress WHERE user_id = $1 ORDER BY id
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LearningProgress
	for rows.Next() {
		var p LearningProgress
		var completedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.UserID, &p.PlanID, &p.TaskIndex, &p.Completed, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			p.CompletedAt = &completedAt.Time
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
