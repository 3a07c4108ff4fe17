package api

import (
	"net/http"

	"github.com/campustools/roomsense/internal/booking"
	"github.com/campustools/roomsense/internal/identity"
)

// AdminHandler handles administrative reset flows
type AdminHandler struct {
	bookings *booking.Service
	identity *identity.Manager
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(bookings *booking.Service, idm *identity.Manager) *AdminHandler {
	return &AdminHandler{bookings: bookings, identity: idm}
}

// ServeHTTP handles POST /api/admin/reset: clears every reservation.
// Admin role required.
func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/api/admin/reset" {
		http.NotFound(w, r)
		return
	}

	ident := h.identity.FromRequest(r)
	if ident == nil {
		writeError(w, http.StatusUnauthorized, booking.ErrUnauthenticated.Error())
		return
	}
	if !ident.IsAdmin() {
		writeError(w, http.StatusForbidden, booking.ErrForbidden.Error())
		return
	}

	if err := h.bookings.ClearAll(r.Context()); err != nil {
		writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "All bookings cleared."})
}
