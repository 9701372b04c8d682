package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Project struct {
	ID            int                    `json:"id"`
	UserID        int                    `json:"user_id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Technologies  []string               `json:"technologies"`
	Difficulty    string                 `json:"difficulty"`
	EstimatedTime string                 `json:"estimated_time"`
	Status        string                 `json:"status"`
	Details       map[string]interface{} `json:"details"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type ProjectModel struct {
	DB *sql.DB
}

func NewProjectModel(db *sql.DB) *ProjectModel {
	return &ProjectModel{DB: db}
}

func (m *ProjectModel) Create(userID int, p *Project) (*Project, error) {
	tech, err := json.Marshal(p.Technologies)
	if err != nil {
		return nil, err
	}
	if p.Details == nil {
		p.Details = map[string]interface{}{}
	}
	details, err := json.Marshal(p.Details)
	if err != nil {
		return nil, err
	}
	if p.Status == "" {
		p.Status = "suggested"
	}

	created := &Project{Technologies: p.Technologies, Details: p.Details}
	query := `
		INSERT INTO user_projects (user_id, title, description, technologies, difficulty, estimated_time, status, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, title, description, difficulty, estimated_time, status, created_at, updated_at
	`
	err = m.DB.QueryRow(query, userID, p.Title, p.Description, string(tech), p.Difficulty, p.EstimatedTime, p.Status, string(details)).Scan(
		&created.ID, &created.UserID, &created.Title, &created.Description,
		&created.Difficulty, &created.EstimatedTime, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (m *ProjectModel) GetByID(id int) (*Project, error) {
	p := &Project{}
	var tech, details string
	query := `
		SELECT id, user_id, title, description, technologies, difficulty, estimated_time, status, details, created_at, updated_at
		FROM user_projects WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &tech, &p.Difficulty,
		&p.EstimatedTime, &p.Status, &details, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	decodeProjectJSON(p, tech, details)
	return p, nil
}

func (m *ProjectModel) ListByUser(userID int) ([]Project, error) {
	query := `
		SELECT id, user_id, title, description, technologies, difficulty, estimated_time, status, details, created_at, updated_at
		FROM user_projects WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var tech, details string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &tech, &p.Difficulty,
			&p.EstimatedTime, &p.Status, &details, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		decodeProjectJSON(&p, tech, details)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (m *ProjectModel) Update(id, userID int, p *Project) error {
	tech, err := json.Marshal(p.Technologies)
	if err != nil {
		return err
	}
	details, err := json.Marshal(p.Details)
	if err != nil {
		return err
	}
	query := `
		UPDATE user_projects
		SET title = $1, description = $2, technologies = $3, difficulty = $4,
		    estimated_time = $5, status = $6, details = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`
	_, err = m.DB.Exec(query, p.Title, p.Description, string(tech), p.Difficulty,
		p.EstimatedTime, p.Status, string(details), time.Now(), id, userID)
	return err
}

func (m *ProjectModel) Delete(id, userID int) error {
	query := `DELETE FROM user_projects WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}

func decodeProjectJSON(p *Project, tech, details string) {
	if err := json.Unmarshal([]byte(tech), &p.Technologies); err != nil {
		p.Technologies = nil
	}
	if err := json.Unmarshal([]byte(details), &p.Details); err != nil {
		p.Details = map[string]interface{}{}
	}
}
