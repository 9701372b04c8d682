package models

import (
	"database/sql"
	"time"
)

type Skill struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	SkillName       string    `json:"skill_name"`
	Level           string    `json:"level"`
	YearsExperience float64   `json:"years_experience"`
	CreatedAt       time.Time `json:"created_at"`
}

type SkillModel struct {
	DB *sql.DB
}

func NewSkillModel(db *sql.DB) *SkillModel {
	return &SkillModel{DB: db}
}

// Upsert inserts a skill or updates its level when the user already has it.
func (m *SkillModel) Upsert(userID int, skillName, level string, yearsExperience float64) (*Skill, error) {
	skill := &Skill{}
	query := `
		INSERT INTO user_skills (user_id, skill_name, level, years_experience)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, skill_name)
		DO UPDATE SET level = EXCLUDED.level, years_experience = EXCLUDED.years_experience
		RETURNING id, user_id, skill_name, level, years_experience, created_at
	`
	err := m.DB.QueryRow(query, userID, skillName, level, yearsExperience).Scan(
		&skill.ID, &skill.UserID, &skill.SkillName, &skill.Level, &skill.YearsExperience, &skill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (m *SkillModel) ListByUser(userID int) ([]Skill, error) {
	query := `
		SELECT id, user_id, skill_name, level, years_experience, created_at
		FROM user_skills WHERE user_id = $1 ORDER BY skill_name
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Level, &s.YearsExperience, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (m *SkillModel) Delete(userID int, skillName string) error {
	query := `DELETE FROM user_skills WHERE user_id = $1 AND skill_name = $2`
	_, err := m.DB.Exec(query, userID, skillName)
	return err
}
