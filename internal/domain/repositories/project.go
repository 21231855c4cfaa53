package repositories

import (
	"context"

	"portfolio/internal/domain/models"
)

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	// List returns all projects ordered by featured first, then newest.
	List(ctx context.Context) ([]models.Project, error)
	// ListFeatured returns only projects with the featured flag set.
	ListFeatured(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) (*models.Project, error)
}
