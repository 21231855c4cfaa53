package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresMessageRepository implements the MessageRepository interface
type PostgresMessageRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(config *RepositoryConfig) repositories.MessageRepository {
	return &PostgresMessageRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const messageColumns = `id, name, email, subject, body, read, starred, archived, created_at, updated_at`

func scanMessage(row pgx.Row, m *models.Message) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Body,
		&m.Read,
		&m.Starred,
		&m.Archived,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

// Create stores a new contact-form submission
func (r *PostgresMessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, subject, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Messages)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		message.Name,
		message.Email,
		message.Subject,
		message.Body,
		message.CreatedAt,
		message.UpdatedAt,
	).Scan(&message.ID, &message.CreatedAt, &message.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// GetByID retrieves a message by ID
func (r *PostgresMessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, messageColumns, r.tables.Messages)

	var message models.Message
	executor := GetExecutor(ctx, r.pool)
	err := scanMessage(executor.QueryRow(ctx, query, id), &message)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get message: %w", err)
	}

	return &message, nil
}

// List retrieves all messages, newest first
func (r *PostgresMessageRepository) List(ctx context.Context) ([]models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY created_at DESC
	`, messageColumns, r.tables.Messages)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var message models.Message
		if err := scanMessage(rows, &message); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// SetFlag toggles one of the read/starred/archived flags and returns the
// updated message. The flag name is validated by the caller; it is mapped
// through a fixed switch here so no request value reaches the SQL text.
func (r *PostgresMessageRepository) SetFlag(ctx context.Context, id string, flag models.MessageFlag, value bool) (*models.Message, error) {
	var column string
	switch flag {
	case models.FlagRead:
		column = "read"
	case models.FlagStarred:
		column = "starred"
	case models.FlagArchived:
		column = "archived"
	default:
		return nil, fmt.Errorf("unknown message flag %q: %w", flag, domain.ErrValidation)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, r.tables.Messages, column, messageColumns)

	var message models.Message
	executor := GetExecutor(ctx, r.pool)
	err := scanMessage(executor.QueryRow(ctx, query, value, id), &message)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("flag message: %w", err)
	}

	return &message, nil
}

// Delete removes a message permanently
func (r *PostgresMessageRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Messages)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
