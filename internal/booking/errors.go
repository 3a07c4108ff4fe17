package booking

import "errors"

// Typed, recoverable-by-caller errors. Never panics, never swallowed.
var (
	// ErrUnauthenticated means no caller identity was present for a mutating call
	ErrUnauthenticated = errors.New("login required")
	// ErrInvalidInterval means the reservation interval has end <= start
	ErrInvalidInterval = errors.New("end time must be after start time")
	// ErrAlreadyBooked means the room already has a reservation and overwrite was not requested
	ErrAlreadyBooked = errors.New("room is already booked")
	// ErrForbidden means the caller may not cancel this reservation
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound means no reservation exists for the room
	ErrNotFound = errors.New("no reservation for room")
	// ErrStoreUnavailable means the underlying reservation store failed
	ErrStoreUnavailable = errors.New("reservation store unavailable")
)
