package repositories

import (
	"context"

	"portfolio/internal/domain/models"
)

// SkillRepository persists skills and their categories.
type SkillRepository interface {
	CreateSkill(ctx context.Context, skill *models.Skill) error
	GetSkillByID(ctx context.Context, id string) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	UpdateSkill(ctx context.Context, skill *models.Skill) error
	DeleteSkill(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	// DeleteCategory fails with a conflict error when skills still
	// reference the category.
	DeleteCategory(ctx context.Context, id string) error
}
