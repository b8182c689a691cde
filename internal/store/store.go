// Package store holds the authoritative in-memory booking table.
//
// The Store owns all booking records exclusively: every operation returns
// copies, and all access to the table and the id counter goes through the
// methods below, serialized by a read-write mutex. There is no persistence;
// abandoning the process discards the table.
package store

import (
	"sync"
	"time"

	"github.com/example/booking-assistant/internal/calendar"
	"github.com/example/booking-assistant/internal/domain"
)

// Clock supplies the current time. Production code uses RealClock; tests pin
// "now" so quarter queries are deterministic.
type Clock interface {
	Now() time.Time
}

// RealClock is the Clock used outside of tests.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Store is the in-memory booking table plus its id-assignment counter.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	nextID   int64
	clock    Clock
}

// New returns an empty Store. IDs start at 1.
func New(clock Clock) *Store {
	return &Store{nextID: 1, clock: clock}
}

// Create validates and stores a new booking.
// Returns domain.ErrInvalidRange unless from is strictly before to; nothing is
// stored on failure. On success the booking receives the next sequential id.
//
// Create performs no overlap check against existing bookings: conflicting
// ranges are accepted. That is a known gap carried over deliberately: adding
// overlap detection would change the contract of every existing caller and
// belongs in a separate, explicit operation.
func (s *Store) Create(from, to time.Time) (domain.Booking, error) {
	if !from.Before(to) {
		return domain.Booking{}, domain.ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := domain.Booking{
		ID:       s.nextID,
		FromDate: from,
		ToDate:   to,
	}
	s.bookings = append(s.bookings, b)
	s.nextID++
	return b, nil
}

// GetByID returns the booking with the given id, or domain.ErrNotFound.
func (s *Store) GetByID(id int64) (domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

// DeleteByID removes the booking with the given id.
// Deleting an id that does not exist is a no-op, not an error: delete reports
// success either way, so repeated deletes are idempotent.
func (s *Store) DeleteByID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
}

// ListCurrentQuarter returns every booking falling entirely inside the
// calendar quarter containing the clock's "now": from_date on or after the
// quarter start and to_date strictly before the quarter end.
// An empty result is success, not an error; the returned slice is never nil.
func (s *Store) ListCurrentQuarter() []domain.Booking {
	qStart, qEnd := calendar.QuarterBounds(s.clock.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Booking{}
	for _, b := range s.bookings {
		if !b.FromDate.Before(qStart) && b.ToDate.Before(qEnd) {
			out = append(out, b)
		}
	}
	return out
}

// ListOnDate returns every booking whose [from_date, to_date] range contains
// point, inclusive on both ends. Unlike the quarter listing, an empty match
// here is domain.ErrNotFound: callers treat "nothing booked on that date" as
// a miss, not an empty page.
func (s *Store) ListOnDate(point time.Time) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Booking
	for _, b := range s.bookings {
		if calendar.Contains(point, b.FromDate, b.ToDate) {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// UnbookOnDate cancels every booking that starts exactly at point. Bookings
// that merely span the point without starting on it are kept. Returns
// domain.ErrNotFound when nothing was removed, otherwise a snapshot of the
// table after deletion.
func (s *Store) UnbookOnDate(point time.Time) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if calendar.Contains(point, b.FromDate, b.ToDate) && b.FromDate.Equal(point) {
			continue
		}
		kept = append(kept, b)
	}
	if len(kept) == len(s.bookings) {
		return nil, domain.ErrNotFound
	}
	s.bookings = kept

	out := make([]domain.Booking, len(kept))
	copy(out, kept)
	return out, nil
}

// Len reports the number of stored bookings. Exposed for tests and the
// health endpoint.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
