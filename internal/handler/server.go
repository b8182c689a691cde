// Package handler implements the HTTP handlers for the booking API.
// All handlers are methods on Server. Methods are split into concern-specific
// files (booking.go, chatbot.go, health.go) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/example/booking-assistant/internal/domain"
)

// BookingStorer defines the store operations the booking handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without a real store.
type BookingStorer interface {
	Create(from, to time.Time) (domain.Booking, error)
	GetByID(id int64) (domain.Booking, error)
	DeleteByID(id int64)
	ListCurrentQuarter() []domain.Booking
	ListOnDate(point time.Time) ([]domain.Booking, error)
	UnbookOnDate(point time.Time) ([]domain.Booking, error)
}

// ChatServicer defines the conversational operations the chatbot handler
// depends on. Implemented by bot.SessionManager.
type ChatServicer interface {
	Open(ctx context.Context) (uuid.UUID, string)
	Message(ctx context.Context, id uuid.UUID, input string) (reply string, done bool, err error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	store BookingStorer
	chat  ChatServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(store BookingStorer, chat ChatServicer) *Server {
	return &Server{store: store, chat: chat}
}

// Routes returns a router with every API endpoint registered.
// Middleware (request id, logging, CORS, body limits) is wired by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/booking", func(r chi.Router) {
		r.Post("/", s.CreateBooking)
		r.Get("/quarter", s.ListQuarter)
		r.Get("/{id}", s.GetBooking)
		r.Delete("/{id}", s.DeleteBooking)
	})

	r.Get("/booking-on-date/{date}", s.ListOnDate)
	r.Delete("/booking-on-date/{date}", s.UnbookOnDate)

	r.Post("/chatbot", s.Chatbot)

	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — the response is already committed; nothing to do on error.
	json.NewEncoder(w).Encode(v)
}
