package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"portfolio/internal/httputil"
	"portfolio/internal/mailer"
)

// VerifyHandler handles the email-verification flow: issue a signed token,
// mail it out, and confirm it when the link is followed.
type VerifyHandler struct {
	issuer   *mailer.TokenIssuer
	notifier mailer.Notifier
	logger   *slog.Logger
}

// NewVerifyHandler creates a new verification handler
func NewVerifyHandler(issuer *mailer.TokenIssuer, notifier mailer.Notifier, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{
		issuer:   issuer,
		notifier: notifier,
		logger:   logger,
	}
}

type sendVerificationRequest struct {
	Email string `json:"email"`
}

// SendVerification issues a verification token and mails it
// POST /auth/send-verification
func (h *VerifyHandler) SendVerification(w http.ResponseWriter, r *http.Request) {
	var req sendVerificationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil || req.Email == "" {
		httputil.RespondError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.issuer.Issue(req.Email)
	if err != nil {
		h.logger.Error("issue verification token", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	body := fmt.Sprintf("Follow this link to verify your address:\n\n/auth/verify-email?token=%s\n", token)
	if err := h.notifier.Notify("Verify your email address", body); err != nil {
		h.logger.Warn("verification mail failed", "email", req.Email, "error", err)
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

// VerifyEmail confirms a verification token
// GET /auth/verify-email?token=...
func (h *VerifyHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httputil.RespondError(w, http.StatusBadRequest, "token is required")
		return
	}

	email, err := h.issuer.Verify(token)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	h.logger.Info("email verified", "email", email)
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"verified": true,
		"email":    email,
	})
}
