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

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const projectColumns = `id, title, description, details, image_url, technologies,
	category, live_url, source_url, featured, created_at, updated_at`

func scanProject(row pgx.Row, p *models.Project) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Details,
		&p.ImageURL,
		&p.Technologies,
		&p.Category,
		&p.LiveURL,
		&p.SourceURL,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// Create creates a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, description, details, image_url, technologies,
			category, live_url, source_url, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.Details,
		project.ImageURL,
		project.Technologies,
		project.Category,
		project.LiveURL,
		project.SourceURL,
		project.Featured,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("project '%s' already exists: %w", project.Title, domain.ErrConflict)
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND deleted_at IS NULL
	`, projectColumns, r.tables.Projects)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := scanProject(executor.QueryRow(ctx, query, id), &project)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// List retrieves all projects, featured first, then newest
func (r *PostgresProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE deleted_at IS NULL
		ORDER BY featured DESC, created_at DESC
	`, projectColumns, r.tables.Projects)

	return r.queryProjects(ctx, query)
}

// ListFeatured retrieves only featured projects, newest first
func (r *PostgresProjectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE featured AND deleted_at IS NULL
		ORDER BY created_at DESC
	`, projectColumns, r.tables.Projects)

	return r.queryProjects(ctx, query)
}

func (r *PostgresProjectRepository) queryProjects(ctx context.Context, query string) ([]models.Project, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		if err := scanProject(rows, &project); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	// Return empty slice instead of nil if no projects
	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Update updates a project's mutable fields and updated_at timestamp
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, details = $3, image_url = $4,
			technologies = $5, category = $6, live_url = $7, source_url = $8,
			featured = $9, updated_at = $10
		WHERE id = $11 AND deleted_at IS NULL
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		project.Title,
		project.Description,
		project.Details,
		project.ImageURL,
		project.Technologies,
		project.Category,
		project.LiveURL,
		project.SourceURL,
		project.Featured,
		project.UpdatedAt,
		project.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("project '%s' already exists: %w", project.Title, domain.ErrConflict)
		}
		return fmt.Errorf("update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete soft-deletes a project by setting deleted_at and returns the deleted project
func (r *PostgresProjectRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING %s
	`, r.tables.Projects, projectColumns)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := scanProject(executor.QueryRow(ctx, query, id), &project)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete project: %w", err)
	}

	return &project, nil
}
