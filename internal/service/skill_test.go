package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

type fakeSkillRepo struct {
	skills     map[string]*models.Skill
	categories map[string]*models.Category
	nextID     int
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{
		skills:     make(map[string]*models.Skill),
		categories: make(map[string]*models.Category),
	}
}

func (f *fakeSkillRepo) CreateSkill(ctx context.Context, skill *models.Skill) error {
	if _, ok := f.categories[skill.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	f.nextID++
	skill.ID = "s" + strconv.Itoa(f.nextID)
	copied := *skill
	f.skills[skill.ID] = &copied
	return nil
}

func (f *fakeSkillRepo) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	skill, ok := f.skills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *skill
	return &copied, nil
}

func (f *fakeSkillRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(f.skills))
	for _, s := range f.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSkillRepo) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	if _, ok := f.skills[skill.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *skill
	f.skills[skill.ID] = &copied
	return nil
}

func (f *fakeSkillRepo) DeleteSkill(ctx context.Context, id string) error {
	if _, ok := f.skills[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeSkillRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	f.nextID++
	// UUID-shaped ids keep skill validation happy
	category.ID = "00000000-0000-0000-0000-00000000000" + strconv.Itoa(f.nextID)
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeSkillRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeSkillRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeSkillRepo) UpdateCategory(ctx context.Context, category *models.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeSkillRepo) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, skill := range f.skills {
		if skill.CategoryID == id {
			return &domain.ConflictError{
				Message:      "category still has skills attached",
				ResourceType: "category",
				ResourceID:   id,
			}
		}
	}
	delete(f.categories, id)
	return nil
}

func seedCategory(t *testing.T, svc services.SkillService) *models.Category {
	t.Helper()
	category, err := svc.CreateCategory(context.Background(), &services.CategoryRequest{
		Name:         "Backend",
		DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	return category
}

func TestCreateSkillValidation(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), testLogger())
	category := seedCategory(t, svc)

	tests := []struct {
		name    string
		req     *services.CreateSkillRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  &services.CreateSkillRequest{CategoryID: category.ID, Name: "Go", Level: 88},
		},
		{
			name:    "missing category",
			req:     &services.CreateSkillRequest{Name: "Go", Level: 88},
			wantErr: true,
		},
		{
			name:    "category id not a uuid",
			req:     &services.CreateSkillRequest{CategoryID: "not-a-uuid", Name: "Go"},
			wantErr: true,
		},
		{
			name:    "level over 100",
			req:     &services.CreateSkillRequest{CategoryID: category.ID, Name: "Go", Level: 101},
			wantErr: true,
		},
		{
			name:    "blank name",
			req:     &services.CreateSkillRequest{CategoryID: category.ID, Name: "  "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSkill(context.Background(), tt.req)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateSkillMergesFields(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), testLogger())
	category := seedCategory(t, svc)

	created, err := svc.CreateSkill(context.Background(), &services.CreateSkillRequest{
		CategoryID: category.ID,
		Name:       "Go",
		Level:      80,
		Icon:       "go",
	})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	level := 95
	updated, err := svc.UpdateSkill(context.Background(), created.ID, &services.UpdateSkillRequest{Level: &level})
	if err != nil {
		t.Fatalf("UpdateSkill: %v", err)
	}

	if updated.Level != 95 {
		t.Errorf("expected level updated, got %d", updated.Level)
	}
	if updated.Name != "Go" || updated.Icon != "go" {
		t.Errorf("unsent fields must be untouched, got %+v", updated)
	}
}

func TestDeleteCategoryWithSkillsConflicts(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(), testLogger())
	category := seedCategory(t, svc)

	skill, err := svc.CreateSkill(context.Background(), &services.CreateSkillRequest{
		CategoryID: category.ID,
		Name:       "Go",
		Level:      88,
	})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	err = svc.DeleteCategory(context.Background(), category.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict while skills remain, got %v", err)
	}

	// After the skill is gone the category can be deleted.
	if err := svc.DeleteSkill(context.Background(), skill.ID); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("DeleteCategory after skills removed: %v", err)
	}
}
