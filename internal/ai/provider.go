// Package ai abstracts the hosted chat completion provider behind a single
// interface so services stay provider-agnostic and tests can inject stubs.
package ai

import "context"

// Message is one prior conversation turn sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider produces one assistant reply from a system prompt, prior turns,
// and the new user message.
type Provider interface {
	Complete(ctx context.Context, system string, history []Message, message string) (string, error)
}
