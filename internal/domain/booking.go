// Package domain contains the core data types for the booking assistant.
// This package has zero external dependencies and is imported by every other
// internal package (store, bot, handler).
package domain

import "time"

// Booking represents a single reserved time range.
// IDs are assigned by the store, start at 1, increase monotonically, and are
// never reused: deleting a booking does not free its ID for later bookings.
type Booking struct {
	ID       int64     `json:"booking_id"`
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
}
