package httputil

import (
	"context"
	"net/http"

	"portfolio/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// WithIdentity adds the authenticated session identity to the request context
func WithIdentity(r *http.Request, identity *models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the session identity from context, nil if absent
func GetIdentity(r *http.Request) *models.Identity {
	identity, _ := r.Context().Value(identityKey).(*models.Identity)
	return identity
}
