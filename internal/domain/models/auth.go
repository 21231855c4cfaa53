package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Admin is the administrative login record. Distinct from User, which is
// the portfolio owner's public profile content.
type Admin struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Identity is the session payload returned by the auth endpoints and
// stored client-side across reloads. Never carries credentials.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// SessionClaims are the claims embedded in the HS256 session cookie.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
