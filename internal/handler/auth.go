package handler

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
	"portfolio/internal/service/auth"
)

// AuthHandler handles session HTTP requests
type AuthHandler struct {
	authService services.AuthService
	cookieName  string
	secure      bool
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService, cookieName string, secure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
		secure:      secure,
		logger:      logger,
	}
}

// Login creates an administrative session
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, auth.SessionTTL))
	httputil.RespondJSON(w, http.StatusOK, identity)
}

// Logout terminates the session by expiring the cookie
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -time.Hour))
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CheckAuth reports whether the request carries a valid session.
// Always responds 200; route guards read the boolean.
// GET /auth/check-auth
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if _, err := h.authService.Verify(r.Context(), cookie.Value); err == nil {
			authenticated = true
		}
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
}

// User returns the bare session identity
// GET /auth/user
func (h *AuthHandler) User(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"id":       identity.ID,
		"username": identity.Username,
	})
}

// UserData returns the session identity including role
// GET /auth/user-data
func (h *AuthHandler) UserData(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, httputil.GetIdentity(r))
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
