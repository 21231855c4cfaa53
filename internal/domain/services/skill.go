package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// CreateSkillRequest represents a request to create a skill
type CreateSkillRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Icon       string `json:"icon"`
}

// UpdateSkillRequest represents a request to update a skill
type UpdateSkillRequest struct {
	CategoryID *string `json:"category_id"`
	Name       *string `json:"name"`
	Level      *int    `json:"level"`
	Icon       *string `json:"icon"`
}

// CategoryRequest carries the mutable category fields for create and update
type CategoryRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// SkillService defines business logic operations for skills and categories
type SkillService interface {
	CreateSkill(ctx context.Context, req *CreateSkillRequest) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	UpdateSkill(ctx context.Context, id string, req *UpdateSkillRequest) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req *CategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
