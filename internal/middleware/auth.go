package middleware

import (
	"net/http"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// RequireSession wraps handlers that are admin-only. It reads the session
// cookie, verifies it, and stores the identity in the request context.
// Unauthenticated requests get 401 without reaching the handler.
func RequireSession(authService services.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity, err := authService.Verify(r.Context(), cookie.Value)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, identity))
		})
	}
}
