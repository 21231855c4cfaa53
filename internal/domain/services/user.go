package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// UpdateUserRequest represents a request to update the owner profile.
// Pointer fields distinguish "not sent" from zero values.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Phone     *string `json:"phone"`
	GithubURL *string `json:"github_url"`
	LinkedIn  *string `json:"linkedin_url"`
	Twitter   *string `json:"twitter_url"`
	Website   *string `json:"website_url"`
	ImageURL  *string `json:"image_url"`
	ResumeURL *string `json:"resume_url"`
}

// UserService defines business logic operations for the owner profile
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*models.User, error)
}
