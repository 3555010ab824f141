package chat

import "github.com/google/uuid"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Greeting is the assistant's opening message in every new conversation.
const Greeting = "Hi! I'm Kuchu. Scared of the syllabus, or do you need notes?"

// Conversation is an ordered transcript for a single chat session.
// Transcripts live in memory only and are never persisted.
type Conversation struct {
	ID       string
	Email    string
	Messages []Message
}

func NewConversation(email string) *Conversation {
	return &Conversation{
		ID:    uuid.NewString(),
		Email: email,
		Messages: []Message{
			{Role: RoleAssistant, Content: Greeting},
		},
	}
}

func (c *Conversation) Append(role Role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// Snapshot returns a copy whose message slice is independent of the
// original, safe to read after the caller's lock is released.
func (c *Conversation) Snapshot() *Conversation {
	return &Conversation{
		ID:       c.ID,
		Email:    c.Email,
		Messages: append([]Message(nil), c.Messages...),
	}
}
