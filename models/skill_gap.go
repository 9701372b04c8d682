package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// LearningResource is one curated or model-suggested learning link.
type LearningResource struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Platform string `json:"platform"`
	Duration string `json:"duration,omitempty"`
}

type SkillGap struct {
	ID                int                `json:"id"`
	UserID            int                `json:"user_id"`
	GoalID            *int               `json:"goal_id"`
	SkillName         string             `json:"skill_name"`
	Priority          string             `json:"priority"`
	CurrentLevel      string             `json:"current_level"`
	TargetLevel       string             `json:"target_level"`
	EstimatedTime     string             `json:"estimated_time"`
	LearningResources []LearningResource `json:"learning_resources"`
	CreatedAt         time.Time          `json:"created_at"`
}

type SkillGapModel struct {
	DB *sql.DB
}

func NewSkillGapModel(db *sql.DB) *SkillGapModel {
	return &SkillGapModel{DB: db}
}

// Replace deletes the stored gaps for the (user, goal) pair and inserts the
// new set in one transaction. After a successful call the stored gaps are
// exactly the given set.
func (m *SkillGapModel) Replace(userID int, goalID *int, gaps []SkillGap) error {
	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if goalID != nil {
		_, err = tx.Exec(`DELETE FROM skill_gaps WHERE user_id = $1 AND goal_id = $2`, userID, *goalID)
	} else {
		_, err = tx.Exec(`DELETE FROM skill_gaps WHERE user_id = $1 AND goal_id IS NULL`, userID)
	}
	if err != nil {
		return err
	}

	query := `
		INSERT INTO skill_gaps (user_id, goal_id, skill_name, priority, current_level, target_level, estimated_time, learning_resources)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, gap := range gaps {
		resources, err := json.Marshal(gap.LearningResources)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, userID, nullableInt(goalID), gap.SkillName, gap.Priority,
			gap.CurrentLevel, gap.TargetLevel, gap.EstimatedTime, string(resources)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (m *SkillGapModel) ListByUser(userID int, goalID *int) ([]SkillGap, error) {
	query := `
		SELECT id, user_id, goal_id, skill_name, priority, current_level, target_level, estimated_time, learning_resources, created_at
		FROM skill_gaps WHERE user_id = $1
	`
	args := []interface{}{userID}
	if goalID != nil {
		query += ` AND goal_id = $2`
		args = append(args, *goalID)
	}
	query += ` ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, skill_name`

	rows, err := m.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gaps []SkillGap
	for rows.Next() {
		var g SkillGap
		var goalID sql.NullInt64
		var resources string
		if err := rows.Scan(&g.ID, &g.UserID, &goalID, &g.SkillName, &g.Priority, &g.CurrentLevel,
			&g.TargetLevel, &g.EstimatedTime, &resources, &g.CreatedAt); err != nil {
			return nil, err
		}
		if goalID.Valid {
			id := int(goalID.Int64)
			g.GoalID = &id
		}
		if err := json.Unmarshal([]byte(resources), &g.LearningResources); err != nil {
			g.LearningResources = nil
		}
		gaps = append(gaps, g)
	}
	return gaps, rows.Err()
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
