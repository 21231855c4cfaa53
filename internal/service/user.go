package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
)

// userService implements the UserService interface
type userService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers retrieves all owner profile records
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies the fields present in the request to the profile
func (s *userService) UpdateUser(ctx context.Context, id string, req *services.UpdateUserRequest) (*models.User, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Title != nil {
		user.Title = strings.TrimSpace(*req.Title)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.GithubURL != nil {
		user.GithubURL = *req.GithubURL
	}
	if req.LinkedIn != nil {
		user.LinkedIn = *req.LinkedIn
	}
	if req.Twitter != nil {
		user.Twitter = *req.Twitter
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
	}
	if req.ResumeURL != nil {
		user.ResumeURL = *req.ResumeURL
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "id", user.ID, "name", user.Name)
	return user, nil
}

func (s *userService) validateUpdate(req *services.UpdateUserRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.Email, validation.NilOrNotEmpty, validation.Length(3, config.MaxEmailLength)),
		validation.Field(&req.Bio, validation.Length(0, config.MaxBioLength)),
		validation.Field(&req.GithubURL, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.LinkedIn, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.Twitter, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.Website, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.ImageURL, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.ResumeURL, validation.Length(0, config.MaxURLLength)),
	)
}
