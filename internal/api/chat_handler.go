package api

import (
	"errors"
	"net/http"

	"github.com/vchartered/backend/internal/domain/chat"
	"github.com/vchartered/backend/internal/service"
)

type ChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message"`
}

type ChatMessage struct {
	Role    string `json:"role" example:"assistant"`
	Content string `json:"content"`
}

type ChatResponse struct {
	ConversationID string        `json:"conversation_id"`
	Messages       []ChatMessage `json:"messages"`
}

func toChatResponse(c *chat.Conversation) ChatResponse {
	resp := ChatResponse{
		ConversationID: c.ID,
		Messages:       make([]ChatMessage, len(c.Messages)),
	}
	for i, m := range c.Messages {
		resp.Messages[i] = ChatMessage{Role: string(m.Role), Content: m.Content}
	}
	return resp
}

// sendChat runs one tutor turn, starting a conversation when no ID is given.
// @Summary      Send a message to Kuchu
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body  ChatRequest  true  "Message, with an optional conversation id to continue"
// @Success      200  {object}  ChatResponse
// @Failure      404  {string}  string  "conversation not found"
// @Failure      503  {string}  string  "Service busy"
// @Router       /chat [post]
func (h *Handler) sendChat(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	convo, err := h.chat.Send(r.Context(), id.Email, req.ConversationID, req.Message)
	if h.handleAIError(w, err) {
		return
	}
	if errors.Is(err, service.ErrConversationNotFound) {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, toChatResponse(convo))
}

// getChat returns a conversation transcript.
// @Summary      Read a conversation transcript
// @Tags         chat
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  ChatResponse
// @Failure      404  {string}  string  "conversation not found"
// @Router       /chat/{conversationID} [get]
func (h *Handler) getChat(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	convo, err := h.chat.Get(id.Email, r.PathValue("conversationID"))
	if errors.Is(err, service.ErrConversationNotFound) {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, toChatResponse(convo))
}
