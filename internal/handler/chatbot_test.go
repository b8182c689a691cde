package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/booking-assistant/internal/bot"
	"github.com/example/booking-assistant/internal/handler"
)

// mockChat is a test double for handler.ChatServicer.
type mockChat struct {
	open    func(ctx context.Context) (uuid.UUID, string)
	message func(ctx context.Context, id uuid.UUID, input string) (string, bool, error)
}

func (m *mockChat) Open(ctx context.Context) (uuid.UUID, string) { return m.open(ctx) }
func (m *mockChat) Message(ctx context.Context, id uuid.UUID, input string) (string, bool, error) {
	return m.message(ctx, id, input)
}

// compile-time check: mockChat must satisfy handler.ChatServicer.
var _ handler.ChatServicer = (*mockChat)(nil)

func newChatHandler(chat handler.ChatServicer) http.Handler {
	return handler.NewServer(nil, chat).Routes()
}

func TestChatbot_OpensSessionWithoutID(t *testing.T) {
	id := uuid.New()
	chat := &mockChat{
		open: func(context.Context) (uuid.UUID, string) { return id, "Hello! Start date, please." },
	}

	body := jsonBody(t, map[string]string{})
	rec := doRequest(newChatHandler(chat), http.MethodPost, "/chatbot", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, id.String(), resp["session_id"])
	assert.Equal(t, "Hello! Start date, please.", resp["reply"])
	assert.Equal(t, false, resp["done"])
}

func TestChatbot_DeliversMessageToSession(t *testing.T) {
	id := uuid.New()
	chat := &mockChat{
		message: func(_ context.Context, gotID uuid.UUID, input string) (string, bool, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, "2025-03-01T10:00:00", input)
			return "And the end date?", false, nil
		},
	}

	body := jsonBody(t, map[string]string{
		"session_id": id.String(),
		"message":    "2025-03-01T10:00:00",
	})
	rec := doRequest(newChatHandler(chat), http.MethodPost, "/chatbot", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "And the end date?", resp["reply"])
}

func TestChatbot_ReportsDone(t *testing.T) {
	chat := &mockChat{
		message: func(context.Context, uuid.UUID, string) (string, bool, error) {
			return "Your booking has been confirmed! Booking ID: 5.", true, nil
		},
	}

	body := jsonBody(t, map[string]string{
		"session_id": uuid.NewString(),
		"message":    "2025-03-02T10:00:00",
	})
	rec := doRequest(newChatHandler(chat), http.MethodPost, "/chatbot", body)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, true, resp["done"])
}

func TestChatbot_404_UnknownSession(t *testing.T) {
	chat := &mockChat{
		message: func(context.Context, uuid.UUID, string) (string, bool, error) {
			return "", false, bot.ErrSessionNotFound
		},
	}

	body := jsonBody(t, map[string]string{
		"session_id": uuid.NewString(),
		"message":    "hello",
	})
	rec := doRequest(newChatHandler(chat), http.MethodPost, "/chatbot", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatbot_400_BadSessionID(t *testing.T) {
	rec := doRequest(newChatHandler(&mockChat{}), http.MethodPost, "/chatbot",
		jsonBody(t, map[string]string{"session_id": "not-a-uuid", "message": "hi"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatbot_400_MissingMessage(t *testing.T) {
	rec := doRequest(newChatHandler(&mockChat{}), http.MethodPost, "/chatbot",
		jsonBody(t, map[string]string{"session_id": uuid.NewString()}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
