// Package booking manages the reservation lifecycle: create, cancel and
// administrative reset, with validation and authorization.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
	"github.com/campustools/roomsense/internal/utils"
)

// Service wraps the reservation store with the booking rules. A single
// mutex serializes read-modify-write sequences so concurrent book/cancel
// calls on the same room never interleave; expected catalog sizes don't
// justify per-key locking.
type Service struct {
	store repository.Store
	mu    sync.Mutex
}

// NewService creates a booking service over the given store
func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// Book creates a reservation for a room. Booking records intent only: it
// does not check the timetable or live signal, so a room can be booked
// over a busy slot and the resolver will still report the slot as
// scheduled-busy. An existing reservation is rejected unless overwrite is
// set.
func (s *Service) Book(ctx context.Context, roomID string, ident *models.Identity, start, end time.Time, overwrite bool) (*models.Reservation, error) {
	if ident == nil {
		return nil, ErrUnauthenticated
	}
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !overwrite {
		_, err := s.store.Get(ctx, roomID)
		switch {
		case err == nil:
			return nil, ErrAlreadyBooked
		case !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	res := &models.Reservation{
		RoomID:     roomID,
		HolderID:   ident.ID,
		HolderRole: ident.Role,
		Start:      start,
		End:        end,
	}

	if err := s.store.Set(ctx, roomID, res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Printf("booking: room %s booked by %s", utils.SanitizeLogString(roomID), utils.SanitizeLogString(ident.ID))
	return res, nil
}

// Cancel removes the reservation for a room. Only the holder or an admin
// may cancel.
func (s *Service) Cancel(ctx context.Context, roomID string, ident *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.store.Get(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if ident == nil || (ident.ID != res.HolderID && ident.Role != models.RoleAdmin) {
		return ErrForbidden
	}

	if err := s.store.Remove(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Printf("booking: room %s reservation cancelled by %s", utils.SanitizeLogString(roomID), utils.SanitizeLogString(ident.ID))
	return nil
}

// ClearAll removes every reservation. Used by administrative reset flows
// only; authorization is the caller's responsibility.
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Printf("booking: all reservations cleared")
	return nil
}
