package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campustools/roomsense/internal/booking"
)

// errorResponse is the JSON body for failed requests
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeBookingError maps the engine's typed errors onto HTTP statuses
func writeBookingError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, booking.ErrInvalidInterval):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, booking.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrAlreadyBooked):
		status = http.StatusConflict
	case errors.Is(err, booking.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}
