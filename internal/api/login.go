package api

import (
	"encoding/json"
	"net/http"

	"github.com/campustools/roomsense/internal/identity"
	"github.com/campustools/roomsense/internal/models"
)

// loginRequest is the body for POST /api/login. This is the demo login:
// the caller picks a role and an optional id, no password involved.
type loginRequest struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role"`
}

// loginResponse carries the signed identity token
type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler exchanges a demo identity for a signed token
type LoginHandler struct {
	identity *identity.Manager
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(idm *identity.Manager) *LoginHandler {
	return &LoginHandler{identity: idm}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	if req.Role == "" {
		req.Role = models.RoleGuest
	}

	token, err := h.identity.Issue(req.ID, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
