// Package auth implements administrative login and the HS256 session
// tokens carried in the dashboard's HttpOnly cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
)

// SessionTTL bounds how long a session cookie stays valid.
const SessionTTL = 24 * time.Hour

// SessionManager signs and verifies session tokens with a local secret.
type SessionManager struct {
	secret []byte
}

// NewSessionManager creates a session manager from the configured secret.
func NewSessionManager(secret string) (*SessionManager, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	return &SessionManager{secret: []byte(secret)}, nil
}

// Issue returns a signed session token naming the given admin.
func (m *SessionManager) Issue(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := models.SessionClaims{
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// Verify validates a session token and returns its claims.
func (m *SessionManager) Verify(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(tok *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm confusion
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", tok.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
