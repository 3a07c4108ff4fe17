package models

import "time"

// BusyInterval is a half-open time range [Start, End) during which a room
// is unavailable according to its static schedule.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains reports whether at falls within the interval. The range is
// half-open: at == Start is inside, at == End is not.
func (b BusyInterval) Contains(at time.Time) bool {
	return !at.Before(b.Start) && at.Before(b.End)
}

// Timetable is a room's ordered sequence of busy intervals. It is static
// and never changes at runtime.
type Timetable []BusyInterval

// BusyAt reports whether at falls within any interval of the timetable.
// The interval count per room is small, so a linear scan is fine.
func (t Timetable) BusyAt(at time.Time) bool {
	for _, slot := range t {
		if slot.Contains(at) {
			return true
		}
	}
	return false
}
