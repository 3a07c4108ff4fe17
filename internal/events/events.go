// Package events defines the engine's outbound event contract
package events

import "github.com/campustools/roomsense/internal/models"

// Sink receives engine notifications. Consumers decide what to do with
// them (SSE push, logging); the engine only raises them.
type Sink interface {
	// RoomBecameAvailable fires when a room's live signal transitioned
	// from occupied to empty and the room resolved as free
	RoomBecameAvailable(room *models.Room)
	// TickCompleted fires after every simulator tick so live-mode views
	// can decide whether to refresh
	TickCompleted()
}

// Multi fans events out to several sinks in order.
type Multi []Sink

func (m Multi) RoomBecameAvailable(room *models.Room) {
	for _, s := range m {
		s.RoomBecameAvailable(room)
	}
}

func (m Multi) TickCompleted() {
	for _, s := range m {
		s.TickCompleted()
	}
}

// Discard is a sink that drops every event.
type Discard struct{}

func (Discard) RoomBecameAvailable(*models.Room) {}
func (Discard) TickCompleted()                   {}
