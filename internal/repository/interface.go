// Package repository defines the reservation store contract
package repository

import (
	"context"
	"errors"

	"github.com/campustools/roomsense/internal/models"
)

// ErrNotFound is returned by Get when no reservation exists for the room.
// All implementations return this same sentinel so callers can match it
// with errors.Is regardless of the configured backend.
var ErrNotFound = errors.New("reservation not found")

// Store is the keyed reservation store: at most one reservation per room.
// Implementations must make each operation atomic per key.
type Store interface {
	// Get returns the reservation for a room, or ErrNotFound
	Get(ctx context.Context, roomID string) (*models.Reservation, error)
	// Set stores the reservation under its room key, replacing any existing one
	Set(ctx context.Context, roomID string, res *models.Reservation) error
	// Remove deletes the reservation for a room, or returns ErrNotFound
	Remove(ctx context.Context, roomID string) error
	// ClearAll removes every reservation; administrative reset only
	ClearAll(ctx context.Context) error
}
