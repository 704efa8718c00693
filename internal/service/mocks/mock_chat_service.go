package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lendapi/internal/model"
	"lendapi/internal/service"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, sessionID, message string, applicationID *string) (*service.ChatResult, error) {
	args := m.Called(ctx, sessionID, message, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatResult), args.Error(1)
}

func (m *MockChatService) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}
