package repositories

import (
	"context"

	"portfolio/internal/domain/models"
)

// UserRepository persists the portfolio owner's profile record.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	// List returns all profile records. The portfolio has exactly one
	// owner in practice, but the public endpoint is list-shaped.
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// AdminRepository persists administrative login records.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}
