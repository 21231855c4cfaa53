package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
)

// authService implements the AuthService interface
type authService struct {
	adminRepo repositories.AdminRepository
	sessions  *SessionManager
	logger    *slog.Logger
}

// NewService creates a new auth service
func NewService(
	adminRepo repositories.AdminRepository,
	sessions *SessionManager,
	logger *slog.Logger,
) services.AuthService {
	return &authService{
		adminRepo: adminRepo,
		sessions:  sessions,
		logger:    logger,
	}
}

// Login verifies credentials and returns the identity plus a session token.
// Unknown usernames and wrong passwords both come back as ErrUnauthorized;
// callers cannot distinguish which check failed.
func (s *authService) Login(ctx context.Context, req *services.LoginRequest) (*models.Identity, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("login failed", "username", req.Username)
		return nil, "", domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed", "username", req.Username)
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.sessions.Issue(admin)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	s.logger.Info("admin logged in", "username", admin.Username)

	identity := &models.Identity{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}
	return identity, token, nil
}

// Verify validates a session token and returns the identity it names.
func (s *authService) Verify(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.sessions.Verify(token)
	if err != nil {
		return nil, err
	}

	return &models.Identity{
		ID:       claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
