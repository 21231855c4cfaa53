package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
	"portfolio/internal/mailer"
)

// messageService implements the MessageService interface
type messageService struct {
	messageRepo repositories.MessageRepository
	notifier    mailer.Notifier
	logger      *slog.Logger
}

// NewMessageService creates a new message service
func NewMessageService(
	messageRepo repositories.MessageRepository,
	notifier mailer.Notifier,
	logger *slog.Logger,
) services.MessageService {
	return &messageService{
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// SubmitContact stores a contact-form submission and notifies the owner
func (s *messageService) SubmitContact(ctx context.Context, req *services.ContactRequest) (*models.Message, error) {
	if err := s.validateContact(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	message := &models.Message{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Body:      strings.TrimSpace(req.Body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("contact message received",
		"id", message.ID,
		"from", message.Email,
	)

	// Best effort: a mail failure must not fail the submission
	subject := fmt.Sprintf("New contact message from %s", message.Name)
	body := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s",
		message.Name, message.Email, message.Subject, message.Body)
	if err := s.notifier.Notify(subject, body); err != nil {
		s.logger.Warn("contact notification failed", "id", message.ID, "error", err)
	}

	return message, nil
}

// ListMessages retrieves all messages, newest first
func (s *messageService) ListMessages(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.List(ctx)
}

// SetFlag toggles one of the read/starred/archived flags
func (s *messageService) SetFlag(ctx context.Context, id string, flag models.MessageFlag, value bool) (*models.Message, error) {
	if !flag.Valid() {
		return nil, fmt.Errorf("%w: unknown flag %q", domain.ErrValidation, flag)
	}

	message, err := s.messageRepo.SetFlag(ctx, id, flag, value)
	if err != nil {
		return nil, err
	}

	s.logger.Info("message flagged",
		"id", id,
		"flag", string(flag),
		"value", value,
	)

	return message, nil
}

// DeleteMessage removes a message permanently
func (s *messageService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("message deleted", "id", id)
	return nil
}

func (s *messageService) validateContact(req *services.ContactRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Email,
			validation.Required,
			validation.Length(3, config.MaxEmailLength),
			is.Email,
		),
		validation.Field(&req.Subject, validation.Length(0, config.MaxSubjectLength)),
		validation.Field(&req.Body,
			validation.Required,
			validation.By(requireNonBlank("body")),
		),
	)
}
