package api

import (
	"net/http"

	"github.com/campustools/roomsense/internal/availability"
	"github.com/campustools/roomsense/internal/booking"
	"github.com/campustools/roomsense/internal/catalog"
	"github.com/campustools/roomsense/internal/identity"
	"github.com/campustools/roomsense/internal/repository"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(cat *catalog.Catalog, resolver *availability.Resolver, store repository.Store, bookings *booking.Service, idm *identity.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler)

	// Demo login
	mux.Handle("/api/login", NewLoginHandler(idm))

	// Room and reservation endpoints
	roomHandler := NewRoomHandler(cat, resolver, store, bookings, idm)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Administrative reset
	mux.Handle("/api/admin/reset", NewAdminHandler(bookings, idm))

	return mux
}
