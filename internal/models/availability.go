package models

// LiveSignal is the mutable occupancy flag approximating real-time sensor
// truth for a room. The drift simulator is its only writer.
type LiveSignal int

const (
	SignalEmpty LiveSignal = iota
	SignalOccupied
)

// String returns the string representation of a live signal
func (s LiveSignal) String() string {
	if s == SignalOccupied {
		return "occupied"
	}
	return "empty"
}

// Reason identifies the single highest-precedence source that decided an
// availability result.
type Reason string

const (
	ReasonLiveSensorOccupied Reason = "live_sensor_occupied"
	ReasonScheduledClass     Reason = "scheduled_class"
	ReasonBooked             Reason = "booked"
	ReasonFree               Reason = "free"
	ReasonFreeBySchedule     Reason = "free_by_schedule"
)

// Description returns the human-readable form of the reason, matching the
// badge tooltips shown in the UI.
func (r Reason) Description() string {
	switch r {
	case ReasonLiveSensorOccupied:
		return "Live sensor shows occupied"
	case ReasonScheduledClass:
		return "Scheduled class"
	case ReasonBooked:
		return "Booked"
	case ReasonFreeBySchedule:
		return "Free (by schedule)"
	default:
		return "Free"
	}
}

// AvailabilityResult is the derived answer for one room at one instant.
// It is recomputed on every query and never persisted.
type AvailabilityResult struct {
	IsFree bool   `json:"is_free"`
	Reason Reason `json:"reason"`
}
