package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/example/booking-assistant/internal/calendar"
	"github.com/example/booking-assistant/internal/domain"
)

// createBookingRequest carries the timestamps as strings so parsing failures
// surface as 400s naming the offending value, not as opaque decode errors.
type createBookingRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// detailResponse is the body for operations that report an outcome message
// rather than a resource (delete by id).
type detailResponse struct {
	Detail string `json:"detail"`
}

// CreateBooking handles POST /booking.
// Returns 201 with the stored booking, or 400 when a timestamp is malformed
// or the range is not strictly positive.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid_request", "request body must be JSON with from_date and to_date")
		return
	}

	from, err := calendar.ParseTimestamp(req.FromDate)
	if err != nil {
		badRequest(w, "invalid_timestamp", err.Error())
		return
	}
	to, err := calendar.ParseTimestamp(req.ToDate)
	if err != nil {
		badRequest(w, "invalid_timestamp", err.Error())
		return
	}

	booking, err := s.store.Create(from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			badRequest(w, "invalid_range", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal", "could not create booking")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// GetBooking handles GET /booking/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	booking, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "booking not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal", "could not load booking")
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// DeleteBooking handles DELETE /booking/{id}.
// Deleting an unknown id still reports success: the operation is idempotent
// and the observable outcome (no such booking) is the same either way.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	s.store.DeleteByID(id)

	writeJSON(w, http.StatusOK, detailResponse{Detail: "booking deleted successfully"})
}

// ListQuarter handles GET /booking/quarter.
// Returns the bookings falling entirely inside the current calendar quarter.
// An empty array is a normal response, not a 404.
func (s *Server) ListQuarter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListCurrentQuarter())
}

// ListOnDate handles GET /booking-on-date/{date}.
// Returns every booking whose range contains the date, inclusive on both
// ends. No match is a 404, deliberately different from the quarter listing.
func (s *Server) ListOnDate(w http.ResponseWriter, r *http.Request) {
	point, ok := datePoint(w, r)
	if !ok {
		return
	}

	bookings, err := s.store.ListOnDate(point)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "no bookings found on the given date")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal", "could not list bookings")
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// UnbookOnDate handles DELETE /booking-on-date/{date}.
// Cancels bookings starting exactly at the date and returns the remaining
// table; 404 when nothing started at that date.
func (s *Server) UnbookOnDate(w http.ResponseWriter, r *http.Request) {
	point, ok := datePoint(w, r)
	if !ok {
		return
	}

	remaining, err := s.store.UnbookOnDate(point)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "no booking starts on the given date")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal", "could not unbook")
		return
	}

	writeJSON(w, http.StatusOK, remaining)
}

// bookingID parses the {id} path parameter, writing a 400 on failure.
func bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(w, "invalid_request", "booking id must be an integer")
		return 0, false
	}
	return id, true
}

// datePoint parses the {date} path parameter, writing a 400 on failure.
func datePoint(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	point, err := calendar.ParseTimestamp(chi.URLParam(r, "date"))
	if err != nil {
		badRequest(w, "invalid_timestamp", err.Error())
		return time.Time{}, false
	}
	return point, true
}
