package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"portfolio/internal/domain/models"
)

const msgLoginFailed = "Invalid username or password"

// AuthStore tracks the logged-in administrative identity. Only the
// identity survives restarts, written to a small session file; credentials
// and the session cookie itself are never persisted.
type AuthStore struct {
	client      *Client
	sessionPath string

	mu       sync.Mutex
	identity *models.Identity
	loading  bool
	err      string
}

// AuthState is a point-in-time snapshot of the session store.
type AuthState struct {
	Identity  *models.Identity
	IsLoading bool
	Err       string
}

// NewAuthStore creates an auth store. sessionPath names the file the
// identity is persisted to; an empty path disables persistence. A saved
// identity from a previous run is loaded eagerly so the UI can render the
// username before CheckAuth revalidates the session.
func NewAuthStore(client *Client, sessionPath string) *AuthStore {
	s := &AuthStore{
		client:      client,
		sessionPath: sessionPath,
	}
	s.identity = loadIdentity(sessionPath)
	return s
}

// Snapshot returns the current session state.
func (s *AuthStore) Snapshot() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	var identity *models.Identity
	if s.identity != nil {
		copied := *s.identity
		identity = &copied
	}
	return AuthState{
		Identity:  identity,
		IsLoading: s.loading,
		Err:       s.err,
	}
}

// Login authenticates and stores the returned identity. It reports
// success as a boolean; a wrong password and an unreachable server both
// come back false with the same generic error string. On failure any
// previous identity is cleared.
func (s *AuthStore) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	body := map[string]string{"username": username, "password": password}
	var identity models.Identity
	err := s.client.Post(ctx, "/auth/login", body, &identity)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.identity = nil
		s.err = msgLoginFailed
		removeIdentity(s.sessionPath)
		return false
	}

	s.identity = &identity
	s.err = ""
	saveIdentity(s.sessionPath, &identity)
	return true
}

// Logout ends the session and clears the stored identity. The identity is
// cleared even when the request fails; the cookie may outlive it but the
// local session is gone either way.
func (s *AuthStore) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/auth/logout", nil, nil)

	s.mu.Lock()
	s.identity = nil
	s.err = ""
	s.mu.Unlock()
	removeIdentity(s.sessionPath)
	return err
}

// CheckAuth validates the session cookie with the backend. A negative
// answer clears any identity loaded from the session file, so a stale
// file never keeps admin routes open.
func (s *AuthStore) CheckAuth(ctx context.Context) bool {
	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := s.client.Get(ctx, "/auth/check-auth", &resp); err != nil {
		return false
	}

	if !resp.Authenticated {
		s.mu.Lock()
		s.identity = nil
		s.mu.Unlock()
		removeIdentity(s.sessionPath)
	}
	return resp.Authenticated
}

// FetchIdentity refreshes the full identity, including role, from the
// backend and stores it.
func (s *AuthStore) FetchIdentity(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	if err := s.client.Get(ctx, "/auth/user-data", &identity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.identity = &identity
	s.mu.Unlock()
	saveIdentity(s.sessionPath, &identity)
	return &identity, nil
}

// Session-file helpers. Failures are deliberately silent: persistence is
// a convenience, not a correctness requirement.

func loadIdentity(path string) *models.Identity {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil
	}
	return &identity
}

func saveIdentity(path string, identity *models.Identity) {
	if path == "" {
		return
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o700)
	_ = os.WriteFile(path, raw, 0o600)
}

func removeIdentity(path string) {
	if path != "" {
		_ = os.Remove(path)
	}
}
