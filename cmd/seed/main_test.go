package main

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestSeedDataParses(t *testing.T) {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		t.Fatalf("unmarshal embedded seed data: %v", err)
	}

	if data.User.Name == "" || data.User.Email == "" {
		t.Errorf("expected owner profile in seed data, got %+v", data.User)
	}
	if len(data.Categories) == 0 {
		t.Fatal("expected at least one category")
	}
	for _, c := range data.Categories {
		if len(c.Skills) == 0 {
			t.Errorf("category %q has no skills", c.Name)
		}
	}
	if len(data.Projects) == 0 {
		t.Fatal("expected at least one project")
	}
}

// Seeded entities must carry real timestamps: the repositories bind
// created_at/updated_at explicitly, so a zero time would be stored as-is
// instead of falling back to the column default.
func TestBuildersSetTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	user := buildUser(seedUser{Name: "Ada", Email: "ada@example.com"}, now)
	if !user.CreatedAt.Equal(now) || !user.UpdatedAt.Equal(now) {
		t.Errorf("user timestamps not set: created=%v updated=%v", user.CreatedAt, user.UpdatedAt)
	}

	category := buildCategory(seedCategory{Name: "Backend", DisplayOrder: 2}, now)
	if !category.CreatedAt.Equal(now) || !category.UpdatedAt.Equal(now) {
		t.Errorf("category timestamps not set: created=%v updated=%v", category.CreatedAt, category.UpdatedAt)
	}
	if category.Name != "Backend" || category.DisplayOrder != 2 {
		t.Errorf("category fields not mapped: %+v", category)
	}

	skill := buildSkill("c1", seedSkill{Name: "Go", Level: 88, Icon: "go"}, now)
	if skill.CreatedAt.IsZero() || skill.UpdatedAt.IsZero() {
		t.Errorf("skill timestamps not set: %+v", skill)
	}
	if skill.CategoryID != "c1" || skill.Level != 88 {
		t.Errorf("skill fields not mapped: %+v", skill)
	}

	project := buildProject(seedProject{
		Title:        "Realtime Dashboard",
		Description:  "d",
		Technologies: []string{"Go"},
		Featured:     true,
	}, now)
	if project.CreatedAt.IsZero() || project.UpdatedAt.IsZero() {
		t.Errorf("project timestamps not set: %+v", project)
	}
	if !project.Featured || project.Title != "Realtime Dashboard" {
		t.Errorf("project fields not mapped: %+v", project)
	}
}
