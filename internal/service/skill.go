package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
)

// skillService implements the SkillService interface
type skillService struct {
	skillRepo repositories.SkillRepository
	logger    *slog.Logger
}

// NewSkillService creates a new skill service
func NewSkillService(
	skillRepo repositories.SkillRepository,
	logger *slog.Logger,
) services.SkillService {
	return &skillService{
		skillRepo: skillRepo,
		logger:    logger,
	}
}

// CreateSkill creates a new skill under a category
func (s *skillService) CreateSkill(ctx context.Context, req *services.CreateSkillRequest) (*models.Skill, error) {
	if err := s.validateCreateSkill(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	skill := &models.Skill{
		CategoryID: req.CategoryID,
		Name:       strings.TrimSpace(req.Name),
		Level:      req.Level,
		Icon:       req.Icon,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.skillRepo.CreateSkill(ctx, skill); err != nil {
		return nil, err
	}

	s.logger.Info("skill created",
		"id", skill.ID,
		"name", skill.Name,
		"category_id", skill.CategoryID,
	)

	return skill, nil
}

// ListSkills retrieves all skills
func (s *skillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skillRepo.ListSkills(ctx)
}

// UpdateSkill applies the fields present in the request to an existing skill
func (s *skillService) UpdateSkill(ctx context.Context, id string, req *services.UpdateSkillRequest) (*models.Skill, error) {
	if err := s.validateUpdateSkill(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	skill, err := s.skillRepo.GetSkillByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		skill.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		skill.Name = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = *req.Icon
	}
	skill.UpdatedAt = time.Now()

	if err := s.skillRepo.UpdateSkill(ctx, skill); err != nil {
		return nil, err
	}

	s.logger.Info("skill updated", "id", skill.ID, "name", skill.Name)
	return skill, nil
}

// DeleteSkill deletes a skill
func (s *skillService) DeleteSkill(ctx context.Context, id string) error {
	if err := s.skillRepo.DeleteSkill(ctx, id); err != nil {
		return err
	}

	s.logger.Info("skill deleted", "id", id)
	return nil
}

// CreateCategory creates a new skill category
func (s *skillService) CreateCategory(ctx context.Context, req *services.CategoryRequest) (*models.Category, error) {
	if err := s.validateCategory(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	category := &models.Category{
		Name:         strings.TrimSpace(req.Name),
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.skillRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "id", category.ID, "name", category.Name)
	return category, nil
}

// ListCategories retrieves all categories
func (s *skillService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.skillRepo.ListCategories(ctx)
}

// UpdateCategory updates a category's name and display order
func (s *skillService) UpdateCategory(ctx context.Context, id string, req *services.CategoryRequest) (*models.Category, error) {
	if err := s.validateCategory(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	category, err := s.skillRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Name)
	category.DisplayOrder = req.DisplayOrder
	category.UpdatedAt = time.Now()

	if err := s.skillRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category updated", "id", category.ID, "name", category.Name)
	return category, nil
}

// DeleteCategory deletes a category. Fails with a conflict while skills
// still reference it; the caller must move or delete those skills first.
func (s *skillService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.skillRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", "id", id)
	return nil
}

func (s *skillService) validateCreateSkill(req *services.CreateSkillRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.CategoryID, validation.Required, is.UUID),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
			validation.By(requireNonBlank("name")),
		),
		validation.Field(&req.Level, validation.Min(0), validation.Max(100)),
	)
}

func (s *skillService) validateUpdateSkill(req *services.UpdateSkillRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.CategoryID, validation.NilOrNotEmpty),
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Level, validation.Min(0), validation.Max(100)),
	)
}

func (s *skillService) validateCategory(req *services.CategoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
			validation.By(requireNonBlank("name")),
		),
		validation.Field(&req.DisplayOrder, validation.Min(0)),
	)
}
