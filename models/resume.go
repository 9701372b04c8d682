package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// ResumeDocument is the strict resume schema. Everything the resume agent
// returns is normalized into this shape before it reaches a caller.
type ResumeDocument struct {
	Header         ResumeHeader       `json:"header"`
	Contact        ResumeContact      `json:"contact"`
	Summary        string             `json:"summary"`
	Skills         []ResumeSkill      `json:"skills"`
	Projects       []ResumeProject    `json:"projects"`
	Experience     []ResumeExperience `json:"experience"`
	Education      []ResumeEducation  `json:"education"`
	Certifications []string           `json:"certifications"`
}

type ResumeHeader struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type ResumeContact struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
}

type ResumeSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ResumeProject struct {
	Title     string   `json:"title"`
	TechStack []string `json:"tech_stack"`
	Points    []string `json:"points"`
}

type ResumeExperience struct {
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Duration string   `json:"duration"`
	Points   []string `json:"points"`
}

type ResumeEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Details     string `json:"details"`
}

type GeneratedResume struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	RoleType    string          `json:"role_type"`
	Version     int             `json:"version"`
	ResumeData  *ResumeDocument `json:"resume_data"`
	IsActive    bool            `json:"is_active"`
	DocumentURL string          `json:"document_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ResumeModel struct {
	DB *sql.DB
}

func NewResumeModel(db *sql.DB) *ResumeModel {
	return &ResumeModel{DB: db}
}

// Create stores a new resume version. Earlier resumes for the same role
// type are deactivated and the version number continues from the highest
// stored one.
func (m *ResumeModel) Create(userID int, roleType string, doc *ResumeDocument) (*GeneratedResume, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	tx, err := m.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var version int
	err = tx.QueryRow(
		`SELECT COALESCE(MAX(version), 0) + 1 FROM generated_resumes WHERE user_id = $1 AND role_type = $2`,
		userID, roleType,
	).Scan(&version)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		`UPDATE generated_resumes SET is_active = FALSE WHERE user_id = $1 AND role_type = $2`,
		userID, roleType,
	); err != nil {
		return nil, err
	}

	resume := &GeneratedResume{ResumeData: doc}
	query := `
		INSERT INTO generated_resumes (user_id, role_type, version, resume_data, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, user_id, role_type, version, is_active, document_url, created_at
	`
	err = tx.QueryRow(query, userID, roleType, version, string(data)).Scan(
		&resume.ID, &resume.UserID, &resume.RoleType, &resume.Version,
		&resume.IsActive, &resume.DocumentURL, &resume.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return resume, nil
}

func (m *ResumeModel) GetByID(id int) (*GeneratedResume, error) {
	resume := &GeneratedResume{}
	var data string
	query := `
		SELECT id, user_id, role_type, version, resume_data, is_active, document_url, created_at
		FROM generated_resumes WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(
		&resume.ID, &resume.UserID, &resume.RoleType, &resume.Version,
		&data, &resume.IsActive, &resume.DocumentURL, &resume.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc := &ResumeDocument{}
	if err := json.Unmarshal([]byte(data), doc); err == nil {
		resume.ResumeData = doc
	}
	return resume, nil
}

func (m *ResumeModel) ListByUser(userID int) ([]GeneratedResume, error) {
	query := `
		SELECT id, user_id, role_type, version, resume_data, is_active, document_url, created_at
		FROM generated_resumes WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []GeneratedResume
	for rows.Next() {
		var r GeneratedResume
		var data string
		if err := rows.Scan(&r.ID, &r.UserID, &r.RoleType, &r.Version, &data, &r.IsActive, &r.DocumentURL, &r.CreatedAt); err != nil {
			return nil, err
		}
		doc := &ResumeDocument{}
		if err := json.Unmarshal([]byte(data), doc); err == nil {
			r.ResumeData = doc
		}
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

func (m *ResumeModel) SetDocumentURL(id int, url string) error {
	query := `UPDATE generated_resumes SET document_url = $1 WHERE id = $2`
	_, err := m.DB.Exec(query, url, id)
	return err
}

func (m *ResumeModel) Delete(id, userID int) error {
	query := `DELETE FROM generated_resumes WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}
