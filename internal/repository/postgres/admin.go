package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresAdminRepository implements the AdminRepository interface
type PostgresAdminRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(config *RepositoryConfig) repositories.AdminRepository {
	return &PostgresAdminRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create stores a new admin login record (seed only)
func (r *PostgresAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Admins)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		admin.Username,
		admin.PasswordHash,
		admin.Role,
	).Scan(&admin.ID, &admin.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("admin '%s' already exists: %w", admin.Username, domain.ErrConflict)
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

// GetByUsername retrieves an admin by username
func (r *PostgresAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := fmt.Sprintf(`
		SELECT id, username, password_hash, role, created_at
		FROM %s
		WHERE username = $1
	`, r.tables.Admins)

	var admin models.Admin
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("admin %s: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by ID
func (r *PostgresAdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	query := fmt.Sprintf(`
		SELECT id, username, password_hash, role, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Admins)

	var admin models.Admin
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("admin %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &admin, nil
}
