package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Details      string   `json:"details"`
	ImageURL     string   `json:"image_url"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	LiveURL      string   `json:"live_url"`
	SourceURL    string   `json:"source_url"`
	Featured     bool     `json:"featured"`
}

// UpdateProjectRequest represents a request to update a project.
// Pointer fields distinguish "not sent" from zero values.
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Details      *string   `json:"details"`
	ImageURL     *string   `json:"image_url"`
	Technologies *[]string `json:"technologies"`
	Category     *string   `json:"category"`
	LiveURL      *string   `json:"live_url"`
	SourceURL    *string   `json:"source_url"`
	Featured     *bool     `json:"featured"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
