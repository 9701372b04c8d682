package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// PlanTask is a single task inside a weekly plan.
type PlanTask struct {
	Task           string `json:"task"`
	Type           string `json:"type"`
	EstimatedHours int    `json:"estimated_hours"`
	Completed      bool   `json:"completed"`
}

type LearningPlan struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	GoalID     *int       `json:"goal_id"`
	WeekNumber int        `json:"week_number"`
	Title      string     `json:"title"`
	FocusArea  string     `json:"focus_area"`
	Tasks      []PlanTask `json:"tasks"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

type PlanModel struct {
	DB *sql.DB
}

func NewPlanModel(db *sql.DB) *PlanModel {
	return &PlanModel{DB: db}
}

// Clear removes all plans for the (user, goal) pair.
func (m *PlanModel) Clear(userID int, goalID *int) error {
	var err error
	if goalID != nil {
		_, err = m.DB.Exec(`DELETE FROM learning_plans WHERE user_id = $1 AND goal_id = $2`, userID, *goalID)
	} else {
		_, err = m.DB.Exec(`DELETE FROM learning_plans WHERE user_id = $1 AND goal_id IS NULL`, userID)
	}
	return err
}

// planConflictClause picks the arbiter matching the partial unique
// indexes: NULL goal_ids never conflict with each other in Postgres, so
// goal-less plans dedupe on (user, week) alone.
func planConflictClause(goalID *int) string {
	if goalID == nil {
		return `ON CONFLICT (user_id, week_number) WHERE goal_id IS NULL`
	}
	return `ON CONFLICT (user_id, goal_id, week_number) WHERE goal_id IS NOT NULL`
}

// Upsert saves a weekly plan, keyed on (user, goal, week_number).
func (m *PlanModel) Upsert(userID int, goalID *int, weekNumber int, title, focusArea string, tasks []PlanTask) (*LearningPlan, error) {
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return nil, err
	}

	plan := &LearningPlan{Tasks: tasks}
	var storedGoalID sql.NullInt64
	var storedTasks string
	query := `
		INSERT INTO learning_plans (user_id, goal_id, week_number, title, focus_area, tasks)
		VALUES ($1, $2, $3, $4, $5, $6)
		` + planConflictClause(goalID) + `
		DO UPDATE SET title = EXCLUDED.title, focus_area = EXCLUDED.focus_area, tasks = EXCLUDED.tasks, status = 'pending'
		RETURNING id, user_id, goal_id, week_number, title, focus_area, tasks, status, created_at
	`
	err = m.DB.QueryRow(query, userID, nullableInt(goalID), weekNumber, title, focusArea, string(tasksJSON)).Scan(
		&plan.ID, &plan.UserID, &storedGoalID, &plan.WeekNumber, &plan.Title, &plan.FocusArea,
		&storedTasks, &plan.Status, &plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if storedGoalID.Valid {
		id := int(storedGoalID.Int64)
		plan.GoalID = &id
	}
	return plan, nil
}

func (m *PlanModel) ListByUser(userID int, goalID *int) ([]LearningPlan, error) {
	query := `
		SELECT id, user_id, goal_id, week_number, title, focus_area, tasks, status, created_at
		FROM learning_plans WHERE user_id = $1
	`
	args := []interface{}{userID}
	if goalID != nil {
		query += ` AND goal_id = $2`
		args = append(args, *goalID)
	}
	query += ` ORDER BY week_number`

	rows, err := m.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []LearningPlan
	for rows.Next() {
		var p LearningPlan
		var storedGoalID sql.NullInt64
		var tasks string
		if err := rows.Scan(&p.ID, &p.UserID, &storedGoalID, &p.WeekNumber, &p.Title, &p.FocusArea, &tasks, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		if storedGoalID.Valid {
			id := int(storedGoalID.Int64)
			p.GoalID = &id
		}
		if err := json.Unmarshal([]byte(tasks), &p.Tasks); err != nil {
			p.Tasks = nil
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (m *PlanModel) UpdateStatus(planID int, status string) error {
	query := `UPDATE learning_plans SET status = $1 WHERE id = $2`
	_, err := m.DB.Exec(query, status, planID)
	return err
}
