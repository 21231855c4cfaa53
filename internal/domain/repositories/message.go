package repositories

import (
	"context"

	"portfolio/internal/domain/models"
)

// MessageRepository persists contact-form submissions.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	// List returns all messages, newest first.
	List(ctx context.Context) ([]models.Message, error)
	// SetFlag toggles one of the read/starred/archived flags.
	SetFlag(ctx context.Context, id string, flag models.MessageFlag, value bool) (*models.Message, error)
	Delete(ctx context.Context, id string) error
}
