package models

import (
	"database/sql"
	"time"
)

type CareerGoal struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	TargetRole string    `json:"target_role"`
	TargetDate string    `json:"target_date"`
	Timeline   string    `json:"timeline"`
	IsPrimary  bool      `json:"is_primary"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type GoalModel struct {
	DB *sql.DB
}

func NewGoalModel(db *sql.DB) *GoalModel {
	return &GoalModel{DB: db}
}

// Create inserts a goal. A primary goal demotes any existing primary first
// so there is at most one per user.
func (m *GoalModel) Create(userID int, targetRole, targetDate, timeline string, isPrimary bool) (*CareerGoal, error) {
	tx, err := m.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if isPrimary {
		if _, err := tx.Exec(`UPDATE career_goals SET is_primary = FALSE WHERE user_id = $1`, userID); err != nil {
			return nil, err
		}
	}

	goal := &CareerGoal{}
	query := `
		INSERT INTO career_goals (user_id, target_role, target_date, timeline, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, target_role, target_date, timeline, is_primary, status, created_at
	`
	err = tx.QueryRow(query, userID, targetRole, targetDate, timeline, isPrimary).Scan(
		&goal.ID, &goal.UserID, &goal.TargetRole, &goal.TargetDate, &goal.Timeline,
		&goal.IsPrimary, &goal.Status, &goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetPrimary returns the user's primary goal, or nil when none is set.
func (m *GoalModel) GetPrimary(userID int) (*CareerGoal, error) {
	goal := &CareerGoal{}
	query := `
		SELECT id, user_id, target_role, target_date, timeline, is_primary, status, created_at
		FROM career_goals
		WHERE user_id = $1 AND is_primary = TRUE AND status = 'active'
		ORDER BY created_at DESC LIMIT 1
	`
	err := m.DB.QueryRow(query, userID).Scan(
		&goal.ID, &goal.UserID, &goal.TargetRole, &goal.TargetDate, &goal.Timeline,
		&goal.IsPrimary, &goal.Status, &goal.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (m *GoalModel) ListByUser(userID int) ([]CareerGoal, error) {
	query := `
		SELECT id, user_id, target_role, target_date, timeline, is_primary, status, created_at
		FROM career_goals WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []CareerGoal
	for rows.Next() {
		var g CareerGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.TargetRole, &g.TargetDate, &g.Timeline, &g.IsPrimary, &g.Status, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (m *GoalModel) UpdateStatus(goalID int, status string) error {
	query := `UPDATE career_goals SET status = $1 WHERE id = $2`
	_, err := m.DB.Exec(query, status, goalID)
	return err
}
