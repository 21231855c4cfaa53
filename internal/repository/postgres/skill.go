package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresSkillRepository implements the SkillRepository interface for
// both skills and their categories.
type PostgresSkillRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(config *RepositoryConfig) repositories.SkillRepository {
	return &PostgresSkillRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// CreateSkill creates a new skill
func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, skill *models.Skill) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (category_id, name, level, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Skills)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		skill.CategoryID,
		skill.Name,
		skill.Level,
		skill.Icon,
		skill.CreatedAt,
		skill.UpdatedAt,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("skill '%s' already exists in category: %w", skill.Name, domain.ErrConflict)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("category %s: %w", skill.CategoryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create skill: %w", err)
	}

	return nil
}

// GetSkillByID retrieves a skill by ID
func (r *PostgresSkillRepository) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	query := fmt.Sprintf(`
		SELECT id, category_id, name, level, icon, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Skills)

	var skill models.Skill
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&skill.ID,
		&skill.CategoryID,
		&skill.Name,
		&skill.Level,
		&skill.Icon,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}

	return &skill, nil
}

// ListSkills retrieves all skills ordered by category, then name
func (r *PostgresSkillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.category_id, s.name, s.level, s.icon, s.created_at, s.updated_at
		FROM %s s
		JOIN %s c ON c.id = s.category_id
		ORDER BY c.display_order, c.name, s.name
	`, r.tables.Skills, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var skill models.Skill
		err := rows.Scan(
			&skill.ID,
			&skill.CategoryID,
			&skill.Name,
			&skill.Level,
			&skill.Icon,
			&skill.CreatedAt,
			&skill.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}

	if skills == nil {
		skills = []models.Skill{}
	}

	return skills, nil
}

// UpdateSkill updates a skill's mutable fields
func (r *PostgresSkillRepository) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET category_id = $1, name = $2, level = $3, icon = $4, updated_at = $5
		WHERE id = $6
	`, r.tables.Skills)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		skill.CategoryID,
		skill.Name,
		skill.Level,
		skill.Icon,
		skill.UpdatedAt,
		skill.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("skill '%s' already exists in category: %w", skill.Name, domain.ErrConflict)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("category %s: %w", skill.CategoryID, domain.ErrNotFound)
		}
		return fmt.Errorf("update skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill %s: %w", skill.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteSkill deletes a skill
func (r *PostgresSkillRepository) DeleteSkill(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Skills)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CreateCategory creates a new skill category
func (r *PostgresSkillRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		category.Name,
		category.DisplayOrder,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("category '%s' already exists: %w", category.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

// GetCategoryByID retrieves a category by ID
func (r *PostgresSkillRepository) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	query := fmt.Sprintf(`
		SELECT id, name, display_order, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Categories)

	var category models.Category
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.DisplayOrder,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

// ListCategories retrieves all categories in display order
func (r *PostgresSkillRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := fmt.Sprintf(`
		SELECT id, name, display_order, created_at, updated_at
		FROM %s
		ORDER BY display_order, name
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.DisplayOrder,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

// UpdateCategory updates a category's name and display order
func (r *PostgresSkillRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, display_order = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		category.Name,
		category.DisplayOrder,
		category.UpdatedAt,
		category.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("category '%s' already exists: %w", category.Name, domain.ErrConflict)
		}
		return fmt.Errorf("update category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", category.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteCategory deletes a category. The skills table references
// categories with ON DELETE RESTRICT, so deletion is rejected while
// dependent skills exist.
func (r *PostgresSkillRepository) DeleteCategory(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return &domain.ConflictError{
				Message:      "category still has skills attached",
				ResourceType: "category",
				ResourceID:   id,
			}
		}
		return fmt.Errorf("delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
