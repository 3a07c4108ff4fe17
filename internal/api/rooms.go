package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/campustools/roomsense/internal/availability"
	"github.com/campustools/roomsense/internal/booking"
	"github.com/campustools/roomsense/internal/catalog"
	"github.com/campustools/roomsense/internal/identity"
	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
	"github.com/campustools/roomsense/internal/utils"
)

// RoomStatus is one room annotated with its resolved availability and,
// when present, its current reservation.
type RoomStatus struct {
	Room         *models.Room              `json:"room"`
	Availability models.AvailabilityResult `json:"availability"`
	ReasonText   string                    `json:"reason_text"`
	LiveSignal   string                    `json:"live_signal"`
	Reservation  *models.Reservation       `json:"reservation,omitempty"`
}

// bookRequest is the body for PUT /api/rooms/{id}/reservation
type bookRequest struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Overwrite bool      `json:"overwrite"`
}

// RoomHandler handles HTTP requests for rooms and their reservations
type RoomHandler struct {
	catalog  *catalog.Catalog
	resolver *availability.Resolver
	store    repository.Store
	bookings *booking.Service
	identity *identity.Manager
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(cat *catalog.Catalog, resolver *availability.Resolver, store repository.Store, bookings *booking.Service, idm *identity.Manager) *RoomHandler {
	return &RoomHandler{
		catalog:  cat,
		resolver: resolver,
		store:    store,
		bookings: bookings,
		identity: idm,
	}
}

// ServeHTTP routes room requests by method and path.
// Paths: /api/rooms, /api/rooms/{id}, /api/rooms/{id}/reservation
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")

	var roomID, sub string
	if len(pathParts) >= 4 {
		roomID = pathParts[3]
	}
	if len(pathParts) >= 5 {
		sub = pathParts[4]
	}

	switch {
	case r.Method == http.MethodGet && roomID == "":
		h.listRooms(w, r)
	case r.Method == http.MethodGet && sub == "":
		h.getRoom(w, r, roomID)
	case r.Method == http.MethodPut && sub == "reservation":
		h.bookRoom(w, r, roomID)
	case r.Method == http.MethodDelete && sub == "reservation":
		h.cancelReservation(w, r, roomID)
	default:
		http.NotFound(w, r)
	}
}

// queryInstant parses the at/live query parameters. at defaults to now,
// live defaults to true.
func queryInstant(r *http.Request) (time.Time, bool, error) {
	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, false, errors.New("invalid 'at' timestamp, expected RFC3339")
		}
		at = parsed
	}

	live := true
	if raw := r.URL.Query().Get("live"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return time.Time{}, false, errors.New("invalid 'live' flag")
		}
		live = parsed
	}

	return at, live, nil
}

// status assembles the RoomStatus view for one room
func (h *RoomHandler) status(r *http.Request, room *models.Room, at time.Time, live bool) RoomStatus {
	result := h.resolver.Resolve(r.Context(), room, at, live)

	st := RoomStatus{
		Room:         room,
		Availability: result,
		ReasonText:   result.Reason.Description(),
		LiveSignal:   h.catalog.LiveSignal(room.ID).String(),
	}

	if res, err := h.store.Get(r.Context(), room.ID); err == nil {
		st.Reservation = res
	}

	return st
}

// listRooms handles GET /api/rooms with optional filters: building,
// department, min_capacity and a free-text q
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	at, live, err := queryInstant(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	building := q.Get("building")
	department := q.Get("department")
	query := strings.TrimSpace(q.Get("q"))

	minCapacity := 0
	if raw := q.Get("min_capacity"); raw != "" {
		minCapacity, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'min_capacity'")
			return
		}
	}

	result := make([]RoomStatus, 0)
	for _, room := range h.catalog.Rooms() {
		if building != "" && room.Building != building {
			continue
		}
		if department != "" && room.Department != department {
			continue
		}
		if minCapacity > 0 && room.Capacity < minCapacity {
			continue
		}
		if !room.MatchesQuery(query) {
			continue
		}
		result = append(result, h.status(r, room, at, live))
	}

	writeJSON(w, http.StatusOK, result)
}

// getRoom handles GET /api/rooms/{id}
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	room := h.catalog.Get(roomID)
	if room == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	at, live, err := queryInstant(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.status(r, room, at, live))
}

// bookRoom handles PUT /api/rooms/{id}/reservation
func (h *RoomHandler) bookRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	room := h.catalog.Get(roomID)
	if room == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding booking request: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	ident := h.identity.FromRequest(r)

	res, err := h.bookings.Book(r.Context(), roomID, ident, req.Start, req.End, req.Overwrite)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// cancelReservation handles DELETE /api/rooms/{id}/reservation
func (h *RoomHandler) cancelReservation(w http.ResponseWriter, r *http.Request, roomID string) {
	room := h.catalog.Get(roomID)
	if room == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	ident := h.identity.FromRequest(r)

	if err := h.bookings.Cancel(r.Context(), roomID, ident); err != nil {
		log.Printf("Cancel failed for room %s: %v", utils.SanitizeLogString(roomID), err)
		writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled."})
}
