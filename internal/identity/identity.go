// Package identity supplies caller identities from signed bearer tokens.
// The engine itself never creates or validates identities; handlers pass
// whatever this provider extracts, which may be nothing.
package identity

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/campustools/roomsense/internal/config"
	"github.com/campustools/roomsense/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the JWT claims embedded in a roomsense token.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and validates identity tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates an identity manager from auth configuration
func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue creates a signed token carrying the given identity. An empty id
// falls back to "GUEST", matching the demo login flow.
func (m *Manager) Issue(id string, role models.Role) (string, error) {
	if id == "" {
		id = "GUEST"
	}
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now().UTC()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse validates a token and returns the identity it carries.
func (m *Manager) Parse(tokenStr string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC signatures are acceptable
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", t.Method)
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &models.Identity{ID: claims.Subject, Role: claims.Role}, nil
}

// FromRequest extracts the caller identity from a Bearer token, or nil
// when no valid token is present. Absence is not an error: anonymous
// callers may still query availability.
func (m *Manager) FromRequest(r *http.Request) *models.Identity {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}

	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil
	}

	ident, err := m.Parse(tokenStr)
	if err != nil {
		return nil
	}
	return ident
}
