package models

import (
	"database/sql"
	"time"
)

type ChatMessageRecord struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessageModel struct {
	DB *sql.DB
}

func NewChatMessageModel(db *sql.DB) *ChatMessageModel {
	return &ChatMessageModel{DB: db}
}

func (m *ChatMessageModel) Save(userID int, role, content string) error {
	query := `INSERT INTO chat_messages (user_id, role, content) VALUES ($1, $2, $3)`
	_, err := m.DB.Exec(query, userID, role, content)
	return err
}

// History returns the newest messages in chronological order.
func (m *ChatMessageModel) History(userID, limit int) ([]ChatMessageRecord, error) {
	query := `
		SELECT id, user_id, role, content, created_at FROM (
			SELECT id, user_id, role, content, created_at
			FROM chat_messages WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
		) recent ORDER BY created_at ASC
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []ChatMessageRecord
	for rows.Next() {
		var msg ChatMessageRecord
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (m *ChatMessageModel) Clear(userID int) error {
	query := `DELETE FROM chat_messages WHERE user_id = $1`
	_, err := m.DB.Exec(query, userID)
	return err
}
