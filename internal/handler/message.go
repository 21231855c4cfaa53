package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// MessageHandler handles contact-message HTTP requests
type MessageHandler struct {
	messageService services.MessageService
	logger         *slog.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService services.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// SubmitContact accepts a public contact-form submission
// POST /message/contact
func (h *MessageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req services.ContactRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.messageService.SubmitContact(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, message)
}

// ListMessages retrieves all messages for the admin dashboard
// GET /message
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.ListMessages(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}

// flagRequest optionally carries an explicit flag value; absent means true,
// so PUT /message/{id}/read with an empty body marks the message read.
type flagRequest struct {
	Value *bool `json:"value"`
}

// MarkRead sets the read flag
// PUT /message/{id}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, models.FlagRead)
}

// MarkStarred sets the starred flag
// PUT /message/{id}/star
func (h *MessageHandler) MarkStarred(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, models.FlagStarred)
}

// MarkArchived sets the archived flag
// PUT /message/{id}/archive
func (h *MessageHandler) MarkArchived(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, models.FlagArchived)
}

func (h *MessageHandler) setFlag(w http.ResponseWriter, r *http.Request, flag models.MessageFlag) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value := true
	if r.ContentLength > 0 {
		var req flagRequest
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Value != nil {
			value = *req.Value
		}
	}

	message, err := h.messageService.SetFlag(r.Context(), id, flag, value)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, message)
}

// DeleteMessage removes a message
// DELETE /message/{id}
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.messageService.DeleteMessage(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
