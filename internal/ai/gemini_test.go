package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProvider_Complete(t *testing.T) {
	var captured chatCompletionRequest
	var capturedAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"the answer"}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("test-key", "test-model", srv.URL)

	history := []Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	reply, err := p.Complete(context.Background(), "you are an assistant", history, "new question")

	require.NoError(t, err)
	assert.Equal(t, "the answer", reply)
	assert.Equal(t, "Bearer test-key", capturedAuth)
	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, Message{Role: "system", Content: "you are an assistant"}, captured.Messages[0])
	assert.Equal(t, history[0], captured.Messages[1])
	assert.Equal(t, history[1], captured.Messages[2])
	assert.Equal(t, Message{Role: "user", Content: "new question"}, captured.Messages[3])
}

func TestGeminiProvider_CompleteOmitsEmptySystemPrompt(t *testing.T) {
	var captured chatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("key", "", srv.URL)

	_, err := p.Complete(context.Background(), "", nil, "hello")

	require.NoError(t, err)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestGeminiProvider_CompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "provider 500",
			status:  http.StatusInternalServerError,
			body:    `{"error":"upstream exploded"}`,
			wantErr: "provider returned status 500",
		},
		{
			name:    "provider 401",
			status:  http.StatusUnauthorized,
			body:    `{"error":"bad key"}`,
			wantErr: "provider returned status 401",
		},
		{
			name:    "empty choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "no choices",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewGeminiProvider("key", "", srv.URL)

			reply, err := p.Complete(context.Background(), "sys", nil, "hello")

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, reply)
		})
	}
}

func TestNewGeminiProviderDefaults(t *testing.T) {
	p := NewGeminiProvider("key", "", "")

	assert.Equal(t, defaultGeminiModel, p.model)
	assert.Equal(t, defaultGeminiBaseURL, p.baseURL)
}
