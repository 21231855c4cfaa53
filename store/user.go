package store

import (
	"context"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

const (
	msgFetchUsers = "Failed to fetch user data"
	msgUpdateUser = "Failed to update profile"
)

// UserStore caches the portfolio owner's public profile. This is the
// profile shown on the site, not the logged-in admin identity; that
// lives in AuthStore.
type UserStore struct {
	client *Client
	users  collection[models.User]
}

// NewUserStore creates a user store backed by the given client.
func NewUserStore(client *Client) *UserStore {
	return &UserStore{client: client}
}

// Snapshot returns the current profile-list state.
func (s *UserStore) Snapshot() State[models.User] {
	return s.users.Snapshot()
}

// FetchAll loads the profile records.
func (s *UserStore) FetchAll(ctx context.Context) error {
	return s.users.fetch(ctx, msgFetchUsers, func(ctx context.Context) ([]models.User, error) {
		var users []models.User
		if err := s.client.Get(ctx, "/users", &users); err != nil {
			return nil, err
		}
		return users, nil
	})
}

// Update edits the profile, then reconciles with one full fetch.
func (s *UserStore) Update(ctx context.Context, id string, req *services.UpdateUserRequest) error {
	if err := s.client.Put(ctx, "/admin/user/"+id, req, nil); err != nil {
		s.users.fail(msgUpdateUser)
		return err
	}
	s.users.invalidate()
	return s.FetchAll(ctx)
}
