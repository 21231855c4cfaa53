package store

import (
	"context"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

const (
	msgFetchSkills     = "Failed to fetch skills"
	msgFetchCategories = "Failed to fetch categories"
	msgSaveSkill       = "Failed to save skill"
	msgDeleteSkill     = "Failed to delete skill"
	msgSaveCategory    = "Failed to save category"
	msgDeleteCategory  = "Failed to delete category"
)

// SkillStore caches skills and their categories. The two collections are
// fetched from separate endpoints but mutate together: skill mutations
// reconcile the skill list, category mutations reconcile both.
type SkillStore struct {
	client     *Client
	skills     collection[models.Skill]
	categories collection[models.Category]
}

// NewSkillStore creates a skill store backed by the given client.
func NewSkillStore(client *Client) *SkillStore {
	return &SkillStore{client: client}
}

// Snapshot returns the current skill-list state.
func (s *SkillStore) Snapshot() State[models.Skill] {
	return s.skills.Snapshot()
}

// CategoriesSnapshot returns the current category-list state.
func (s *SkillStore) CategoriesSnapshot() State[models.Category] {
	return s.categories.Snapshot()
}

// FetchAll loads every skill.
func (s *SkillStore) FetchAll(ctx context.Context) error {
	return s.skills.fetch(ctx, msgFetchSkills, func(ctx context.Context) ([]models.Skill, error) {
		var skills []models.Skill
		if err := s.client.Get(ctx, "/skills", &skills); err != nil {
			return nil, err
		}
		return skills, nil
	})
}

// FetchCategories loads every category.
func (s *SkillStore) FetchCategories(ctx context.Context) error {
	return s.categories.fetch(ctx, msgFetchCategories, func(ctx context.Context) ([]models.Category, error) {
		var categories []models.Category
		if err := s.client.Get(ctx, "/skills/categories", &categories); err != nil {
			return nil, err
		}
		return categories, nil
	})
}

// CreateSkill adds a skill, then reconciles with one full skill fetch.
func (s *SkillStore) CreateSkill(ctx context.Context, req *services.CreateSkillRequest) error {
	if err := s.client.Post(ctx, "/admin/skill", req, nil); err != nil {
		s.skills.fail(msgSaveSkill)
		return err
	}
	s.skills.invalidate()
	return s.FetchAll(ctx)
}

// UpdateSkill edits a skill, then reconciles with one full skill fetch.
func (s *SkillStore) UpdateSkill(ctx context.Context, id string, req *services.UpdateSkillRequest) error {
	if err := s.client.Put(ctx, "/admin/skill/"+id, req, nil); err != nil {
		s.skills.fail(msgSaveSkill)
		return err
	}
	s.skills.invalidate()
	return s.FetchAll(ctx)
}

// DeleteSkill removes a skill, then reconciles with one full skill fetch.
func (s *SkillStore) DeleteSkill(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/admin/skill/"+id); err != nil {
		s.skills.fail(msgDeleteSkill)
		return err
	}
	s.skills.invalidate()
	return s.FetchAll(ctx)
}

// CreateCategory adds a category and reconciles the category list.
func (s *SkillStore) CreateCategory(ctx context.Context, req *services.CategoryRequest) error {
	if err := s.client.Post(ctx, "/admin/category", req, nil); err != nil {
		s.categories.fail(msgSaveCategory)
		return err
	}
	s.categories.invalidate()
	return s.FetchCategories(ctx)
}

// UpdateCategory edits a category and reconciles the category list.
func (s *SkillStore) UpdateCategory(ctx context.Context, id string, req *services.CategoryRequest) error {
	if err := s.client.Put(ctx, "/admin/category/"+id, req, nil); err != nil {
		s.categories.fail(msgSaveCategory)
		return err
	}
	s.categories.invalidate()
	return s.FetchCategories(ctx)
}

// DeleteCategory removes a category. The backend rejects deletion while
// skills still reference the category; the conflict surfaces as the
// store's fixed error string.
func (s *SkillStore) DeleteCategory(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/admin/category/"+id); err != nil {
		s.categories.fail(msgDeleteCategory)
		return err
	}
	s.categories.invalidate()
	return s.FetchCategories(ctx)
}
