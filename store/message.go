package store

import (
	"context"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

const (
	msgFetchMessages = "Failed to fetch messages"
	msgSendMessage   = "Failed to send message"
	msgFlagMessage   = "Failed to update message"
	msgDeleteMessage = "Failed to delete message"
)

// MessageStore caches contact messages for the admin inbox and submits
// the public contact form.
type MessageStore struct {
	client *Client
	inbox  collection[models.Message]
}

// NewMessageStore creates a message store backed by the given client.
func NewMessageStore(client *Client) *MessageStore {
	return &MessageStore{client: client}
}

// Snapshot returns the current inbox state.
func (s *MessageStore) Snapshot() State[models.Message] {
	return s.inbox.Snapshot()
}

// FetchAll loads every message.
func (s *MessageStore) FetchAll(ctx context.Context) error {
	return s.inbox.fetch(ctx, msgFetchMessages, func(ctx context.Context) ([]models.Message, error) {
		var messages []models.Message
		if err := s.client.Get(ctx, "/message", &messages); err != nil {
			return nil, err
		}
		return messages, nil
	})
}

// SubmitContact sends the public contact form. It reports success as a
// boolean because the public page has no inbox to reconcile; the caller
// only decides whether to reset the form.
func (s *MessageStore) SubmitContact(ctx context.Context, req *services.ContactRequest) bool {
	if err := s.client.Post(ctx, "/message/contact", req, nil); err != nil {
		s.inbox.fail(msgSendMessage)
		return false
	}
	return true
}

// MarkRead flags a message as read, then reconciles the inbox.
func (s *MessageStore) MarkRead(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, "read")
}

// MarkStarred flags a message as starred, then reconciles the inbox.
func (s *MessageStore) MarkStarred(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, "star")
}

// MarkArchived flags a message as archived, then reconciles the inbox.
func (s *MessageStore) MarkArchived(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, "archive")
}

func (s *MessageStore) setFlag(ctx context.Context, id, action string) error {
	if err := s.client.Put(ctx, "/message/"+id+"/"+action, nil, nil); err != nil {
		s.inbox.fail(msgFlagMessage)
		return err
	}
	s.inbox.invalidate()
	return s.FetchAll(ctx)
}

// Delete removes a message, then reconciles the inbox.
func (s *MessageStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/message/"+id); err != nil {
		s.inbox.fail(msgDeleteMessage)
		return err
	}
	s.inbox.invalidate()
	return s.FetchAll(ctx)
}
