package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Memory struct {
	ID         int                    `json:"id"`
	UserID     int                    `json:"user_id"`
	Content    string                 `json:"content"`
	MemoryType string                 `json:"memory_type"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
}

type MemoryModel struct {
	DB *sql.DB
}

func NewMemoryModel(db *sql.DB) *MemoryModel {
	return &MemoryModel{DB: db}
}

// Save stores a memory row and its embedding vector. Vectors are append
// only; nothing updates or deletes them.
func (m *MemoryModel) Save(userID int, content, memoryType string, metadata map[string]interface{}, embedding []float64) (*Memory, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}

	tx, err := m.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	mem := &Memory{Metadata: metadata}
	query := `
		INSERT INTO user_memory (user_id, content, memory_type, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, content, memory_type, created_at
	`
	err = tx.QueryRow(query, userID, content, memoryType, string(metaJSON)).Scan(
		&mem.ID, &mem.UserID, &mem.Content, &mem.MemoryType, &mem.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(embedding) > 0 {
		embJSON, err := json.Marshal(embedding)
		if err != nil {
			return nil, err
		}
		if _, err := tx.Exec(`INSERT INTO memory_vectors (memory_id, embedding) VALUES ($1, $2)`, mem.ID, string(embJSON)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return mem, nil
}

func (m *MemoryModel) GetByID(id int) (*Memory, error) {
	mem := &Memory{}
	var meta string
	query := `
		SELECT id, user_id, content, memory_type, metadata, created_at
		FROM user_memory WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(&mem.ID, &mem.UserID, &mem.Content, &mem.MemoryType, &meta, &mem.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(meta), &mem.Metadata); err != nil {
		mem.Metadata = map[string]interface{}{}
	}
	return mem, nil
}

// Recent returns the newest memories for the user. Search delegates here:
// the stored embeddings are kept for future ranking but are not consulted,
// recency stands in for relevance.
func (m *MemoryModel) Recent(userID, limit int) ([]Memory, error) {
	query := `
		SELECT id, user_id, content, memory_type, metadata, created_at
		FROM user_memory WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memories []Memory
	for rows.Next() {
		var mem Memory
		var meta string
		if err := rows.Scan(&mem.ID, &mem.UserID, &mem.Content, &mem.MemoryType, &meta, &mem.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(meta), &mem.Metadata); err != nil {
			mem.Metadata = map[string]interface{}{}
		}
		memories = append(memories, mem)
	}
	return memories, rows.Err()
}

// Search returns recent memories regardless of the query text.
func (m *MemoryModel) Search(userID int, query string, limit int) ([]Memory, error) {
	return m.Recent(userID, limit)
}
