package models

import "time"

// Reservation is a user-made booking for a room over a half-open time
// range. At most one reservation exists per room at any time; the store
// is keyed by room ID. Reservations are never mutated in place.
type Reservation struct {
	RoomID     string    `json:"room_id"`
	HolderID   string    `json:"holder_id"`
	HolderRole Role      `json:"holder_role"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Contains reports whether at falls within [Start, End).
func (r *Reservation) Contains(at time.Time) bool {
	return !at.Before(r.Start) && at.Before(r.End)
}
