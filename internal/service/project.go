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

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	project := &models.Project{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Details:      req.Details,
		ImageURL:     req.ImageURL,
		Technologies: normalizeTags(req.Technologies),
		Category:     strings.TrimSpace(req.Category),
		LiveURL:      req.LiveURL,
		SourceURL:    req.SourceURL,
		Featured:     req.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"title", project.Title,
		"featured", project.Featured,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects retrieves all projects
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// ListFeaturedProjects retrieves only featured projects
func (s *projectService) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.ListFeatured(ctx)
}

// UpdateProject applies the fields present in the request to an existing project
func (s *projectService) UpdateProject(ctx context.Context, id string, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if req.Details != nil {
		project.Details = *req.Details
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.Technologies != nil {
		project.Technologies = normalizeTags(*req.Technologies)
	}
	if req.Category != nil {
		project.Category = strings.TrimSpace(*req.Category)
	}
	if req.LiveURL != nil {
		project.LiveURL = *req.LiveURL
	}
	if req.SourceURL != nil {
		project.SourceURL = *req.SourceURL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"title", project.Title,
	)

	return project, nil
}

// DeleteProject soft-deletes a project
func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}

// validateCreateRequest validates a create project request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
			validation.By(requireNonBlank("title")),
		),
		validation.Field(&req.Description,
			validation.Required,
			validation.Length(1, config.MaxDescriptionLength),
		),
		validation.Field(&req.Details, validation.Length(0, config.MaxDetailsLength)),
		validation.Field(&req.ImageURL, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.LiveURL, validation.Length(0, config.MaxURLLength), is.URL),
		validation.Field(&req.SourceURL, validation.Length(0, config.MaxURLLength), is.URL),
		validation.Field(&req.Technologies, validation.Length(0, config.MaxTechnologies)),
	)
}

// validateUpdateRequest validates an update project request
func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxTitleLength),
		),
		validation.Field(&req.Description,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxDescriptionLength),
		),
		validation.Field(&req.Details, validation.Length(0, config.MaxDetailsLength)),
		validation.Field(&req.LiveURL, validation.Length(0, config.MaxURLLength)),
		validation.Field(&req.SourceURL, validation.Length(0, config.MaxURLLength)),
	)
}

// requireNonBlank rejects values that are empty after trimming
func requireNonBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", field)
		}
		if strings.TrimSpace(str) == "" {
			return fmt.Errorf("%s cannot be blank", field)
		}
		return nil
	}
}

// normalizeTags trims tags and drops empties, preserving order
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
