package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/example/booking-assistant/internal/bot"
)

type chatbotRequest struct {
	// SessionID is empty on the first call; the response returns the id to
	// use for the rest of the conversation.
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

type chatbotResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Done      bool   `json:"done"`
}

// Chatbot handles POST /chatbot.
// Without a session_id it opens a new session and returns the greeting.
// With a session_id it delivers the message to that session's collector.
// Done=true means the conversation is over and the id is no longer valid.
func (s *Server) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid_request", "request body must be JSON")
		return
	}

	if req.SessionID == "" {
		id, greeting := s.chat.Open(r.Context())
		writeJSON(w, http.StatusOK, chatbotResponse{SessionID: id.String(), Reply: greeting})
		return
	}

	id, err := uuid.Parse(req.SessionID)
	if err != nil {
		badRequest(w, "invalid_request", "session_id must be a UUID")
		return
	}
	if req.Message == "" {
		badRequest(w, "invalid_request", "message is required for an existing session")
		return
	}

	reply, done, err := s.chat.Message(r.Context(), id, req.Message)
	if err != nil {
		if errors.Is(err, bot.ErrSessionNotFound) {
			notFound(w, "session not found or expired")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal", "chat failure")
		return
	}

	writeJSON(w, http.StatusOK, chatbotResponse{SessionID: id.String(), Reply: reply, Done: done})
}
