package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newTestService(t *testing.T) services.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeAdminRepo{admins: map[string]*models.Admin{
		"admin": {ID: "a1", Username: "admin", PasswordHash: string(hash), Role: "admin"},
	}}

	sessions, err := NewSessionManager("test-secret")
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return NewService(repo, sessions, slog.New(slog.DiscardHandler))
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"success", "admin", "correct horse", nil},
		{"wrong password", "admin", "battery staple", domain.ErrUnauthorized},
		{"unknown user", "nobody", "correct horse", domain.ErrUnauthorized},
		{"empty credentials", "", "", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, token, err := svc.Login(context.Background(), &services.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if identity.Username != "admin" || identity.Role != "admin" {
				t.Errorf("unexpected identity %+v", identity)
			}
			if token == "" {
				t.Error("expected a session token")
			}
		})
	}
}

func TestLoginThenVerify(t *testing.T) {
	svc := newTestService(t)

	_, token, err := svc.Login(context.Background(), &services.LoginRequest{
		Username: "admin",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	identity, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.ID != "a1" || identity.Username != "admin" {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(context.Background(), tt.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	admin := &models.Admin{ID: "a1", Username: "admin", Role: "admin"}

	other, err := NewSessionManager("different-secret")
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	token, err := other.Issue(admin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc := newTestService(t)
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}

func TestSessionManagerRoundTrip(t *testing.T) {
	sessions, err := NewSessionManager("test-secret")
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	token, err := sessions.Issue(&models.Admin{ID: "a1", Username: "admin", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "a1" || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if until := time.Until(claims.ExpiresAt.Time); until <= 0 || until > SessionTTL {
		t.Errorf("unexpected expiry %v", claims.ExpiresAt.Time)
	}
}

func TestNewSessionManagerRequiresSecret(t *testing.T) {
	if _, err := NewSessionManager(""); err == nil {
		t.Error("expected error for empty secret")
	}
}
