package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func Connect(host string, port int, user, password, dbname, sslmode string) (*sql.DB, error) {
	// Build connection string
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	// Open database connection
	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	return db, nil
}

// CreateTables creates the schema if it does not exist yet.
func CreateTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL DEFAULT '',
			current_title VARCHAR(255) DEFAULT '',
			current_level VARCHAR(50) DEFAULT 'beginner',
			experience_years INTEGER DEFAULT 0,
			readiness_score INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_skills (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			skill_name VARCHAR(255) NOT NULL,
			level VARCHAR(50) DEFAULT 'beginner',
			years_experience REAL DEFAULT 0,
			created_at TIMESTAMP DEFAULT NOW(),
			UNIQUE (user_id, skill_name)
		)`,
		`CREATE TABLE IF NOT EXISTS career_goals (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			target_role VARCHAR(255) NOT NULL,
			target_date VARCHAR(100) DEFAULT '',
			timeline VARCHAR(100) DEFAULT '3 months',
			is_primary BOOLEAN DEFAULT FALSE,
			status VARCHAR(50) DEFAULT 'active',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS skill_gaps (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			goal_id INTEGER REFERENCES career_goals(id) ON DELETE CASCADE,
			skill_name VARCHAR(255) NOT NULL,
			priority VARCHAR(20) DEFAULT 'medium',
			current_level VARCHAR(50) DEFAULT 'none',
			target_level VARCHAR(50) DEFAULT 'intermediate',
			estimated_time VARCHAR(100) DEFAULT '',
			learning_resources TEXT DEFAULT '[]',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS learning_plans (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			goal_id INTEGER REFERENCES career_goals(id) ON DELETE CASCADE,
			week_number INTEGER NOT NULL,
			title VARCHAR(255) NOT NULL,
			focus_area VARCHAR(255) DEFAULT '',
			tasks TEXT DEFAULT '[]',
			status VARCHAR(50) DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			feedback_type VARCHAR(50) NOT NULL,
			content TEXT NOT NULL,
			analysis TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			company VARCHAR(255) NOT NULL,
			role VARCHAR(255) NOT NULL,
			status VARCHAR(50) DEFAULT 'applied',
			applied_date TIMESTAMP DEFAULT NOW(),
			notes TEXT DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS user_memory (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			memory_type VARCHAR(50) DEFAULT 'interaction',
			metadata TEXT DEFAULT '{}',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS memory_vectors (
			id SERIAL PRIMARY KEY,
			memory_id INTEGER NOT NULL REFERENCES user_memory(id) ON DELETE CASCADE,
			embedding TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS agent_sessions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			event_type VARCHAR(100) NOT NULL,
			status VARCHAR(50) DEFAULT 'running',
			result TEXT DEFAULT '',
			error TEXT DEFAULT '',
			started_at TIMESTAMP DEFAULT NOW(),
			completed_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS ai_feedback_logs (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			agent_name VARCHAR(100) NOT NULL,
			model_used VARCHAR(255) DEFAULT '',
			status VARCHAR(50) DEFAULT '',
			detail TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS career_events (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			event_type VARCHAR(100) NOT NULL,
			payload TEXT DEFAULT '{}',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS learning_progress (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			plan_id INTEGER REFERENCES learning_plans(id) ON DELETE CASCADE,
			task_index INTEGER DEFAULT 0,
			completed BOOLEAN DEFAULT FALSE,
			completed_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS career_readiness (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			score INTEGER NOT NULL,
			breakdown TEXT DEFAULT '{}',
			recorded_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role VARCHAR(20) NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS generated_resumes (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_type VARCHAR(255) NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			resume_data TEXT NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			document_url TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_projects (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			technologies TEXT DEFAULT '[]',
			difficulty VARCHAR(50) DEFAULT 'intermediate',
			estimated_time VARCHAR(100) DEFAULT '',
			status VARCHAR(50) DEFAULT 'suggested',
			details TEXT DEFAULT '{}',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_skills_user ON user_skills(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_skill_gaps_user_goal ON skill_gaps(user_id, goal_id)`,
		`CREATE INDEX IF NOT EXISTS idx_learning_plans_user_goal ON learning_plans(user_id, goal_id)`,
		// Postgres treats NULLs as distinct, so goal-less plans need their
		// own uniqueness guarantee on (user, week).
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_learning_plans_goal_week
			ON learning_plans(user_id, goal_id, week_number) WHERE goal_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_learning_plans_week
			ON learning_plans(user_id, week_number) WHERE goal_id IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_user_memory_user ON user_memory(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages(user_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error creating schema: %v", err)
		}
	}
	return nil
}
