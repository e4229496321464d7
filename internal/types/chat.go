//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

// Message roles. RoleAssistant maps to the Gemini "model" role on the wire.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a session transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a user message with a fresh ID and the current time.
func NewUserMessage(text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New().String(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message with a fresh ID and the
// current time.
func NewAssistantMessage(text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New().String(),
		Role:      RoleAssistant,
		Text:      text,
		Timestamp: time.Now(),
	}
}
