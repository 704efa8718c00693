package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lendapi/internal/model"
)

type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Insert(ctx context.Context, msg *model.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatMessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockChatMessageRepository) ListRecent(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}
