package postgres

import (
	"context"
	"database/sql"

	"lendapi/internal/model"
	"lendapi/internal/repository"
)

const chatMessageColumns = `id, session_id, application_id, role, content, timestamp`

// ChatMessagePostgres is a PostgreSQL implementation of
// repository.ChatMessageRepository.
type ChatMessagePostgres struct {
	db *sql.DB
}

// NewChatMessagePostgres creates a new ChatMessagePostgres repository.
func NewChatMessagePostgres(db *sql.DB) *ChatMessagePostgres {
	return &ChatMessagePostgres{db: db}
}

var _ repository.ChatMessageRepository = (*ChatMessagePostgres)(nil)

// Insert appends one message row.
func (r *ChatMessagePostgres) Insert(ctx context.Context, msg *model.ChatMessage) error {
	const q = `
		INSERT INTO chat_messages (` + chatMessageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	var appID sql.NullString
	if msg.ApplicationID != nil {
		appID = sql.NullString{String: *msg.ApplicationID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, q,
		msg.ID,
		msg.SessionID,
		appID,
		msg.Role,
		msg.Content,
		msg.Timestamp,
	)
	return err
}

// ListBySession returns up to limit messages for a session, oldest first.
func (r *ChatMessagePostgres) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	const q = `
		SELECT ` + chatMessageColumns + `
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY timestamp ASC, id ASC
		LIMIT $2`
	return r.list(ctx, q, sessionID, limit)
}

// ListRecent returns up to limit messages for a session, newest first.
func (r *ChatMessagePostgres) ListRecent(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	const q = `
		SELECT ` + chatMessageColumns + `
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT $2`
	return r.list(ctx, q, sessionID, limit)
}

func (r *ChatMessagePostgres) list(ctx context.Context, query, sessionID string, limit int) ([]model.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]model.ChatMessage, 0)
	for rows.Next() {
		var (
			m     model.ChatMessage
			appID sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.SessionID, &appID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		if appID.Valid {
			m.ApplicationID = &appID.String
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}
