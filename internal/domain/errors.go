package domain

import "errors"

// ErrNotFound is returned by store operations when the requested booking (or
// any booking matching a given date) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("booking not found")

// ErrInvalidRange is returned by Store.Create when from_date is not strictly
// before to_date. Nothing is stored when this error is returned.
// Handlers should map this to HTTP 400.
var ErrInvalidRange = errors.New("from_date must be earlier than to_date")
