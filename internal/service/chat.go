package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lendapi/internal/ai"
	"lendapi/internal/model"
	"lendapi/internal/repository"
)

const (
	chatHistoryLimit    = 10
	chatTranscriptLimit = 100

	systemPromptPreamble = `You are an AI assistant for a commercial lending platform. You help loan officers ` +
		`and underwriters review commercial loan applications. Answer questions about financial analysis, ` +
		`credit risk, covenants, and lending decisions. Be concise and professional. When application data ` +
		`is provided, ground your answers in it rather than speculating.`
)

// ChatResult is the reply to one chat turn.
type ChatResult struct {
	Response  string `json:"response"`
	MessageID string `json:"message_id"`
}

// ChatService defines the conversational use cases.
type ChatService interface {
	// Chat persists the user turn, asks the provider for a reply with the
	// recent session history as context, persists the assistant turn, and
	// returns it. The user turn survives a provider failure.
	Chat(ctx context.Context, sessionID, message string, applicationID *string) (*ChatResult, error)

	// History returns a session's transcript oldest-first.
	History(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
}

type chatService struct {
	msgs     repository.ChatMessageRepository
	apps     repository.ApplicationRepository
	provider ai.Provider
}

// NewChatService constructs a new ChatService.
func NewChatService(msgs repository.ChatMessageRepository, apps repository.ApplicationRepository, provider ai.Provider) ChatService {
	return &chatService{msgs: msgs, apps: apps, provider: provider}
}

func (s *chatService) Chat(ctx context.Context, sessionID, message string, applicationID *string) (*ChatResult, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if message == "" {
		return nil, ErrMessageRequired
	}

	// Persist the user turn before anything can fail downstream.
	userMsg := &model.ChatMessage{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		ApplicationID: applicationID,
		Role:          model.RoleUser,
		Content:       message,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.msgs.Insert(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	system, err := s.systemPrompt(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	history, err := s.recentHistory(ctx, sessionID, userMsg.ID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	reply, err := s.provider.Complete(ctx, system, history, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	assistantMsg := &model.ChatMessage{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		ApplicationID: applicationID,
		Role:          model.RoleAssistant,
		Content:       reply,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.msgs.Insert(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}

	return &ChatResult{Response: reply, MessageID: assistantMsg.ID}, nil
}

// systemPrompt builds the provider system prompt, embedding the full
// application record when an id is given and resolves. Unknown ids are
// ignored so a stale client reference degrades to a generic conversation.
func (s *chatService) systemPrompt(ctx context.Context, applicationID *string) (string, error) {
	if applicationID == nil || *applicationID == "" {
		return systemPromptPreamble, nil
	}
	app, err := s.apps.FindByID(ctx, *applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return systemPromptPreamble, nil
		}
		return "", fmt.Errorf("load application context: %w", err)
	}
	data, err := json.MarshalIndent(app, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode application context: %w", err)
	}
	return systemPromptPreamble + "\n\nCurrent application under review:\n" + string(data), nil
}

// recentHistory returns the last turns of the session oldest-first, excluding
// the just-persisted user message so it is not sent twice.
func (s *chatService) recentHistory(ctx context.Context, sessionID, excludeID string) ([]ai.Message, error) {
	recent, err := s.msgs.ListRecent(ctx, sessionID, chatHistoryLimit)
	if err != nil {
		return nil, err
	}
	history := make([]ai.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].ID == excludeID {
			continue
		}
		history = append(history, ai.Message{Role: recent[i].Role, Content: recent[i].Content})
	}
	return history, nil
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}
	return s.msgs.ListBySession(ctx, sessionID, chatTranscriptLimit)
}
