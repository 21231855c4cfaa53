package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// LoginRequest carries administrative login credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthService defines session operations for the admin dashboard
type AuthService interface {
	// Login verifies credentials and returns the identity plus a signed
	// session token to set as a cookie.
	Login(ctx context.Context, req *LoginRequest) (*models.Identity, string, error)
	// Verify validates a session token and returns the identity it names.
	Verify(ctx context.Context, token string) (*models.Identity, error)
}
