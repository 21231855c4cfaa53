package store

import (
	"context"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

const (
	msgFetchProjects = "Failed to fetch projects"
	msgFetchFeatured = "Failed to fetch featured projects"
	msgFetchProject  = "Failed to fetch project"
	msgCreateProject = "Failed to create project"
	msgUpdateProject = "Failed to update project"
	msgDeleteProject = "Failed to delete project"
)

// ProjectStore caches the project list for the public grid and the admin
// dashboard. Featured projects live in their own collection because the
// landing page fetches them independently of the full list.
type ProjectStore struct {
	client   *Client
	all      collection[models.Project]
	featured collection[models.Project]
}

// NewProjectStore creates a project store backed by the given client.
func NewProjectStore(client *Client) *ProjectStore {
	return &ProjectStore{client: client}
}

// Snapshot returns the current full-list state.
func (s *ProjectStore) Snapshot() State[models.Project] {
	return s.all.Snapshot()
}

// FeaturedSnapshot returns the current featured-list state.
func (s *ProjectStore) FeaturedSnapshot() State[models.Project] {
	return s.featured.Snapshot()
}

// FetchAll loads every project.
func (s *ProjectStore) FetchAll(ctx context.Context) error {
	return s.all.fetch(ctx, msgFetchProjects, func(ctx context.Context) ([]models.Project, error) {
		var projects []models.Project
		if err := s.client.Get(ctx, "/projects", &projects); err != nil {
			return nil, err
		}
		return projects, nil
	})
}

// FetchFeatured loads only featured projects.
func (s *ProjectStore) FetchFeatured(ctx context.Context) error {
	return s.featured.fetch(ctx, msgFetchFeatured, func(ctx context.Context) ([]models.Project, error) {
		var projects []models.Project
		if err := s.client.Get(ctx, "/projects/featured-projects", &projects); err != nil {
			return nil, err
		}
		return projects, nil
	})
}

// FetchOne loads a single project by id. It does not touch the cached
// list; the detail page owns the result.
func (s *ProjectStore) FetchOne(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := s.client.Get(ctx, "/projects/"+id, &project); err != nil {
		s.all.fail(msgFetchProject)
		return nil, err
	}
	return &project, nil
}

// Create submits a new project, then reconciles with one full fetch. The
// created entity in the response is discarded; the follow-up fetch is the
// source of truth.
func (s *ProjectStore) Create(ctx context.Context, req *services.CreateProjectRequest) error {
	if err := s.client.Post(ctx, "/projects/create", req, nil); err != nil {
		s.all.fail(msgCreateProject)
		return err
	}
	s.all.invalidate()
	return s.FetchAll(ctx)
}

// Update edits a project, then reconciles with one full fetch.
func (s *ProjectStore) Update(ctx context.Context, id string, req *services.UpdateProjectRequest) error {
	if err := s.client.Put(ctx, "/projects/"+id, req, nil); err != nil {
		s.all.fail(msgUpdateProject)
		return err
	}
	s.all.invalidate()
	return s.FetchAll(ctx)
}

// Delete removes a project, then reconciles with one full fetch.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/projects/"+id); err != nil {
		s.all.fail(msgDeleteProject)
		return err
	}
	s.all.invalidate()
	return s.FetchAll(ctx)
}
