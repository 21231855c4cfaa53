package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// ContactRequest is a public contact-form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MessageService defines business logic operations for contact messages
type MessageService interface {
	// SubmitContact stores a contact-form submission and notifies the
	// portfolio owner by mail (best effort).
	SubmitContact(ctx context.Context, req *ContactRequest) (*models.Message, error)
	ListMessages(ctx context.Context) ([]models.Message, error)
	SetFlag(ctx context.Context, id string, flag models.MessageFlag, value bool) (*models.Message, error)
	DeleteMessage(ctx context.Context, id string) error
}
