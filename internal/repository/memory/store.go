// Package memory provides an in-memory implementation of the reservation store
package memory

import (
	"context"
	"sync"

	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
)

// Store implements the reservation store with an in-memory map
type Store struct {
	reservations map[string]models.Reservation
	mu           sync.RWMutex
}

// NewStore creates a new in-memory reservation store
func NewStore() *Store {
	return &Store{
		reservations: make(map[string]models.Reservation),
	}
}

// Get returns the reservation for a room
func (s *Store) Get(ctx context.Context, roomID string) (*models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.reservations[roomID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	// Return a copy so callers can't mutate stored state
	out := res
	return &out, nil
}

// Set stores the reservation under its room key
func (s *Store) Set(ctx context.Context, roomID string, res *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations[roomID] = *res
	return nil
}

// Remove deletes the reservation for a room
func (s *Store) Remove(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[roomID]; !ok {
		return repository.ErrNotFound
	}

	delete(s.reservations, roomID)
	return nil
}

// ClearAll removes every reservation
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = make(map[string]models.Reservation)
	return nil
}
