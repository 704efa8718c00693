package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lendapi/internal/ai"
	"lendapi/internal/model"
	"lendapi/internal/repository/mocks"
)

// stubProvider records the arguments of the last Complete call.
type stubProvider struct {
	system  string
	history []ai.Message
	message string
	reply   string
	err     error
}

func (p *stubProvider) Complete(_ context.Context, system string, history []ai.Message, message string) (string, error) {
	p.system = system
	p.history = history
	p.message = message
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestChatService_Chat(t *testing.T) {
	t.Run("plain turn", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		apps := new(mocks.MockApplicationRepository)
		provider := &stubProvider{reply: "here is my take"}
		svc := NewChatService(msgs, apps, provider)

		var userID string
		msgs.On("Insert", mock.Anything, mock.MatchedBy(func(m *model.ChatMessage) bool {
			if m.Role == model.RoleUser {
				userID = m.ID
				return m.SessionID == "sess-1" && m.Content == "what is the DSCR?" && m.ApplicationID == nil
			}
			return m.Role == model.RoleAssistant && m.Content == "here is my take"
		})).Return(nil).Twice()
		msgs.On("ListRecent", mock.Anything, "sess-1", 10).Return([]model.ChatMessage{}, nil)

		res, err := svc.Chat(context.Background(), "sess-1", "what is the DSCR?", nil)

		require.NoError(t, err)
		assert.Equal(t, "here is my take", res.Response)
		assert.NotEmpty(t, res.MessageID)
		assert.NotEqual(t, userID, res.MessageID)
		assert.Contains(t, provider.system, "commercial lending")
		assert.NotContains(t, provider.system, "Current application under review")
		assert.Equal(t, "what is the DSCR?", provider.message)
		msgs.AssertExpectations(t)
		apps.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("embeds application context", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		apps := new(mocks.MockApplicationRepository)
		provider := &stubProvider{reply: "ok"}
		svc := NewChatService(msgs, apps, provider)

		appID := "app-1"
		app := &model.Application{
			ID:            appID,
			ApplicantName: "Acme Corp",
			ReviewStatus:  model.ReviewStatusPending,
		}
		apps.On("FindByID", mock.Anything, appID).Return(app, nil)
		msgs.On("Insert", mock.Anything, mock.Anything).Return(nil)
		msgs.On("ListRecent", mock.Anything, "sess-1", 10).Return([]model.ChatMessage{}, nil)

		_, err := svc.Chat(context.Background(), "sess-1", "summarize this one", &appID)

		require.NoError(t, err)
		assert.Contains(t, provider.system, "Current application under review")
		assert.Contains(t, provider.system, `"applicant_name": "Acme Corp"`)
	})

	t.Run("unknown application id is ignored", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		apps := new(mocks.MockApplicationRepository)
		provider := &stubProvider{reply: "ok"}
		svc := NewChatService(msgs, apps, provider)

		appID := "ghost"
		apps.On("FindByID", mock.Anything, appID).Return(nil, sql.ErrNoRows)
		msgs.On("Insert", mock.Anything, mock.Anything).Return(nil)
		msgs.On("ListRecent", mock.Anything, "sess-1", 10).Return([]model.ChatMessage{}, nil)

		res, err := svc.Chat(context.Background(), "sess-1", "hello", &appID)

		require.NoError(t, err)
		assert.Equal(t, "ok", res.Response)
		assert.NotContains(t, provider.system, "Current application under review")
	})

	t.Run("history excludes current user turn and is oldest first", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		apps := new(mocks.MockApplicationRepository)
		provider := &stubProvider{reply: "ok"}
		svc := NewChatService(msgs, apps, provider)

		// Newest first, as the repository returns them. The head is the turn
		// that was just persisted; its generated ID is filled in by the
		// Insert hook below.
		recent := []model.ChatMessage{
			{Role: model.RoleUser, Content: "third question"},
			{ID: "m2", Role: model.RoleAssistant, Content: "second answer"},
			{ID: "m1", Role: model.RoleUser, Content: "second question"},
		}
		msgs.On("Insert", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			m := args.Get(1).(*model.ChatMessage)
			if m.Role == model.RoleUser {
				recent[0].ID = m.ID
			}
		})
		msgs.On("ListRecent", mock.Anything, "sess-1", 10).Return(recent, nil)

		_, err := svc.Chat(context.Background(), "sess-1", "third question", nil)

		require.NoError(t, err)
		require.Len(t, provider.history, 2)
		assert.Equal(t, ai.Message{Role: model.RoleUser, Content: "second question"}, provider.history[0])
		assert.Equal(t, ai.Message{Role: model.RoleAssistant, Content: "second answer"}, provider.history[1])
	})

	t.Run("provider failure keeps user turn", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		apps := new(mocks.MockApplicationRepository)
		provider := &stubProvider{err: errors.New("upstream timeout")}
		svc := NewChatService(msgs, apps, provider)

		inserted := 0
		msgs.On("Insert", mock.Anything, mock.MatchedBy(func(m *model.ChatMessage) bool {
			inserted++
			return m.Role == model.RoleUser
		})).Return(nil)
		msgs.On("ListRecent", mock.Anything, "sess-1", 10).Return([]model.ChatMessage{}, nil)

		res, err := svc.Chat(context.Background(), "sess-1", "hello", nil)

		assert.ErrorIs(t, err, ErrProvider)
		assert.Contains(t, err.Error(), "upstream timeout")
		assert.Nil(t, res)
		assert.Equal(t, 1, inserted)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewChatService(new(mocks.MockChatMessageRepository), new(mocks.MockApplicationRepository), &stubProvider{})

		_, err := svc.Chat(context.Background(), "", "hello", nil)
		assert.ErrorIs(t, err, ErrSessionIDRequired)

		_, err = svc.Chat(context.Background(), "sess-1", "", nil)
		assert.ErrorIs(t, err, ErrMessageRequired)
	})
}

func TestChatService_History(t *testing.T) {
	t.Run("returns transcript oldest first", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		svc := NewChatService(msgs, new(mocks.MockApplicationRepository), &stubProvider{})

		transcript := []model.ChatMessage{
			{ID: "m1", Role: model.RoleUser, Content: "q"},
			{ID: "m2", Role: model.RoleAssistant, Content: "a"},
		}
		msgs.On("ListBySession", mock.Anything, "sess-1", 100).Return(transcript, nil)

		got, err := svc.History(context.Background(), "sess-1")

		require.NoError(t, err)
		assert.Equal(t, transcript, got)
	})

	t.Run("unknown session yields empty", func(t *testing.T) {
		msgs := new(mocks.MockChatMessageRepository)
		svc := NewChatService(msgs, new(mocks.MockApplicationRepository), &stubProvider{})

		msgs.On("ListBySession", mock.Anything, "ghost", 100).Return([]model.ChatMessage{}, nil)

		got, err := svc.History(context.Background(), "ghost")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty session id", func(t *testing.T) {
		svc := NewChatService(new(mocks.MockChatMessageRepository), new(mocks.MockApplicationRepository), &stubProvider{})

		_, err := svc.History(context.Background(), "")

		assert.ErrorIs(t, err, ErrSessionIDRequired)
	})
}

func TestSystemPromptIsLendingFocused(t *testing.T) {
	assert.True(t, strings.Contains(systemPromptPreamble, "commercial lending"))
	assert.True(t, strings.Contains(systemPromptPreamble, "underwriters"))
}
