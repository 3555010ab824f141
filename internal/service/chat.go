// internal/service/chat.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vchartered/backend/internal/activitylog"
	"github.com/vchartered/backend/internal/ai"
	"github.com/vchartered/backend/internal/domain/chat"
)

// ErrConversationNotFound is returned for an unknown or foreign
// conversation ID.
var ErrConversationNotFound = errors.New("conversation not found")

// ChatService runs the Kuchu tutor. Transcripts are per-session, in-memory
// only; a restart forgets every conversation.
type ChatService struct {
	gateway  ai.Gateway
	activity *activitylog.Service

	mu     sync.Mutex
	convos map[string]*chat.Conversation
}

func NewChatService(g ai.Gateway, al *activitylog.Service) *ChatService {
	return &ChatService{
		gateway:  g,
		activity: al,
		convos:   make(map[string]*chat.Conversation),
	}
}

// Send appends the user's turn, asks the model for Kuchu's reply, and
// appends that too. An empty conversationID starts a new conversation.
func (s *ChatService) Send(ctx context.Context, email, conversationID, message string) (*chat.Conversation, error) {
	if message == "" {
		return nil, errors.New("message is required")
	}

	s.mu.Lock()
	var conv *chat.Conversation
	if conversationID == "" {
		conv = chat.NewConversation(email)
		s.convos[conv.ID] = conv
	} else {
		conv = s.convos[conversationID]
	}
	s.mu.Unlock()

	if conv == nil || conv.Email != email {
		return nil, ErrConversationNotFound
	}

	prompt := fmt.Sprintf("Act as Kuchu, a funny and motivating CA study friend. User: %s", message)

	reply, err := s.gateway.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	conv.Append(chat.RoleUser, message)
	conv.Append(chat.RoleAssistant, reply)
	snap := conv.Snapshot()
	s.mu.Unlock()

	s.activity.Log(email, "Chat", "Kuchu")
	return snap, nil
}

// Get returns a snapshot of a user's conversation by ID.
func (s *ChatService) Get(email, conversationID string) (*chat.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.convos[conversationID]
	if conv == nil || conv.Email != email {
		return nil, ErrConversationNotFound
	}
	return conv.Snapshot(), nil
}
