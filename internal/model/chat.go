package model

import "time"

// Chat message roles. Exactly two values exist.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation with the underwriting assistant.
// Messages are append-only: created on every chat turn, never mutated or
// deleted. ApplicationID records which application (if any) was in context
// when the turn happened; history retrieval is scoped by session only.
type ChatMessage struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	ApplicationID *string   `json:"application_id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
}
