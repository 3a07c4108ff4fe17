// Package availability resolves whether a room is free at a point in time
// by fusing the static timetable, the reservation store and the live
// occupancy signal.
package availability

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
)

// SignalReader reads a room's current live occupancy signal. The catalog
// implements this.
type SignalReader interface {
	LiveSignal(roomID string) models.LiveSignal
}

// Resolver combines the three sources of truth into one result. It is
// read-only and safe for concurrent use.
type Resolver struct {
	store   repository.Store
	signals SignalReader
}

// NewResolver creates a resolver over the given store and signal source
func NewResolver(store repository.Store, signals SignalReader) *Resolver {
	return &Resolver{
		store:   store,
		signals: signals,
	}
}

// Resolve returns the availability of room at the given instant.
//
// Precedence, highest first: the live signal (when useLive is set), then
// the static timetable, then the reservation. A reservation never makes a
// room look free over a schedule or sensor conflict, but on its own it is
// enough to mark an idle room busy. With useLive false the signal is
// ignored entirely (plan-ahead mode).
//
// Resolve never fails: a room with no timetable entries and no
// reservation is simply free. A store read failure is logged and treated
// as no reservation.
func (r *Resolver) Resolve(ctx context.Context, room *models.Room, at time.Time, useLive bool) models.AvailabilityResult {
	if useLive && r.signals.LiveSignal(room.ID) == models.SignalOccupied {
		return models.AvailabilityResult{IsFree: false, Reason: models.ReasonLiveSensorOccupied}
	}

	if room.Timetable.BusyAt(at) {
		return models.AvailabilityResult{IsFree: false, Reason: models.ReasonScheduledClass}
	}

	res, err := r.store.Get(ctx, room.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("availability: reservation lookup failed for room %s: %v", room.ID, err)
		}
	} else if res.Contains(at) {
		return models.AvailabilityResult{IsFree: false, Reason: models.ReasonBooked}
	}

	if useLive {
		return models.AvailabilityResult{IsFree: true, Reason: models.ReasonFree}
	}
	return models.AvailabilityResult{IsFree: true, Reason: models.ReasonFreeBySchedule}
}
