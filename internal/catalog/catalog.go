// Package catalog holds the process-wide room catalog: the read-only room
// list plus the mutable live occupancy signals. Constructed once at startup
// and passed by handle to every component.
package catalog

import (
	"sync"

	"github.com/campustools/roomsense/internal/models"
)

// Catalog is the ordered set of rooms and their live signals. Rooms are
// immutable after construction; only the signal table mutates, and only
// the drift simulator writes to it.
type Catalog struct {
	rooms []*models.Room
	byID  map[string]*models.Room

	mu      sync.RWMutex
	signals map[string]models.LiveSignal
}

// New creates a catalog from an ordered room list and optional initial
// signals. Rooms without an initial signal start empty.
func New(rooms []*models.Room, signals map[string]models.LiveSignal) *Catalog {
	c := &Catalog{
		rooms:   rooms,
		byID:    make(map[string]*models.Room, len(rooms)),
		signals: make(map[string]models.LiveSignal, len(rooms)),
	}
	for _, room := range rooms {
		c.byID[room.ID] = room
	}
	for id, sig := range signals {
		if _, ok := c.byID[id]; ok {
			c.signals[id] = sig
		}
	}
	return c
}

// Rooms returns the ordered room list. Callers must not modify it.
func (c *Catalog) Rooms() []*models.Room {
	return c.rooms
}

// Get returns the room with the given ID, or nil if unknown.
func (c *Catalog) Get(roomID string) *models.Room {
	return c.byID[roomID]
}

// Len returns the number of rooms.
func (c *Catalog) Len() int {
	return len(c.rooms)
}

// LiveSignal returns the current occupancy signal for a room. Unknown
// rooms read as empty.
func (c *Catalog) LiveSignal(roomID string) models.LiveSignal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.signals[roomID]
}

// SetLiveSignal updates the occupancy signal for a room and returns the
// previous value.
func (c *Catalog) SetLiveSignal(roomID string, sig models.LiveSignal) models.LiveSignal {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.signals[roomID]
	c.signals[roomID] = sig
	return prev
}
