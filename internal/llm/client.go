// Package llm provides chat clients for the remote sleep predictor.
package llm

import (
	"context"
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a chat model that can stand in for the bundled regression.
type Client interface {
	// Chat returns the model's answer to messages.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON decodes the JSON object found in the answer into result.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}
