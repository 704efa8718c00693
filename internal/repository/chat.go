package repository

import (
	"context"

	"lendapi/internal/model"
)

// ChatMessageRepository is the persistence contract for chat transcripts.
// Messages are append-only; there is no update or delete.
type ChatMessageRepository interface {
	Insert(ctx context.Context, msg *model.ChatMessage) error
	// ListBySession returns up to limit messages for a session, oldest first.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error)
	// ListRecent returns up to limit messages for a session, newest first.
	ListRecent(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error)
}
