package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface for the
// portfolio owner's profile record.
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const userColumns = `id, name, title, email, bio, location, phone, github_url,
	linkedin_url, twitter_url, website_url, image_url, resume_url, created_at, updated_at`

func scanUser(row pgx.Row, u *models.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Title,
		&u.Email,
		&u.Bio,
		&u.Location,
		&u.Phone,
		&u.GithubURL,
		&u.LinkedIn,
		&u.Twitter,
		&u.Website,
		&u.ImageURL,
		&u.ResumeURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

// Create stores a new profile record (seed only; the API never creates users)
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, title, email, bio, location, phone, github_url,
			linkedin_url, twitter_url, website_url, image_url, resume_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.Name,
		user.Title,
		user.Email,
		user.Bio,
		user.Location,
		user.Phone,
		user.GithubURL,
		user.LinkedIn,
		user.Twitter,
		user.Website,
		user.ImageURL,
		user.ResumeURL,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID retrieves a profile record by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND deleted_at IS NULL
	`, userColumns, r.tables.Users)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := scanUser(executor.QueryRow(ctx, query, id), &user)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// List retrieves all profile records
func (r *PostgresUserRepository) List(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE deleted_at IS NULL
		ORDER BY created_at
	`, userColumns, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Update updates all mutable profile fields
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, title = $2, email = $3, bio = $4, location = $5,
			phone = $6, github_url = $7, linkedin_url = $8, twitter_url = $9,
			website_url = $10, image_url = $11, resume_url = $12, updated_at = $13
		WHERE id = $14 AND deleted_at IS NULL
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		user.Name,
		user.Title,
		user.Email,
		user.Bio,
		user.Location,
		user.Phone,
		user.GithubURL,
		user.LinkedIn,
		user.Twitter,
		user.Website,
		user.ImageURL,
		user.ResumeURL,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID, domain.ErrNotFound)
	}

	return nil
}
