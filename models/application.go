package models

import (
	"database/sql"
	"time"
)

type Application struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	Notes       string    `json:"notes"`
}

type ApplicationModel struct {
	DB *sql.DB
}

func NewApplicationModel(db *sql.DB) *ApplicationModel {
	return &ApplicationModel{DB: db}
}

func (m *ApplicationModel) Create(userID int, company, role, status, notes string) (*Application, error) {
	if status == "" {
		status = "applied"
	}
	app := &Application{}
	query := `
		INSERT INTO applications (user_id, company, role, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, company, role, status, applied_date, notes
	`
	err := m.DB.QueryRow(query, userID, company, role, status, notes).Scan(
		&app.ID, &app.UserID, &app.Company, &app.Role, &app.Status, &app.AppliedDate, &app.Notes,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (m *ApplicationModel) ListByUser(userID int) ([]Application, error) {
	query := `
		SELECT id, user_id, company, role, status, applied_date, notes
		FROM applications WHERE user_id = $1 ORDER BY applied_date DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.Company, &a.Role, &a.Status, &a.AppliedDate, &a.Notes); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (m *ApplicationModel) UpdateStatus(appID int, status string) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`
	_, err := m.DB.Exec(query, status, appID)
	return err
}
