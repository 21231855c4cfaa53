package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

type fakeMessageRepo struct {
	messages map[string]*models.Message
	nextID   int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*models.Message)}
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	f.nextID++
	message.ID = "m" + strconv.Itoa(f.nextID)
	copied := *message
	f.messages[message.ID] = &copied
	return nil
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id string) (*models.Message, error) {
	message, ok := f.messages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *message
	return &copied, nil
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]models.Message, error) {
	out := make([]models.Message, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMessageRepo) SetFlag(ctx context.Context, id string, flag models.MessageFlag, value bool) (*models.Message, error) {
	message, ok := f.messages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	switch flag {
	case models.FlagRead:
		message.Read = value
	case models.FlagStarred:
		message.Starred = value
	case models.FlagArchived:
		message.Archived = value
	}
	copied := *message
	return &copied, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.messages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

// fakeNotifier records notifications and can be told to fail.
type fakeNotifier struct {
	calls []string
	err   error
}

func (f *fakeNotifier) Notify(subject, body string) error {
	f.calls = append(f.calls, subject)
	return f.err
}

func TestSubmitContactValidation(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo(), &fakeNotifier{}, testLogger())

	tests := []struct {
		name    string
		req     *services.ContactRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: &services.ContactRequest{
				Name:  "Visitor",
				Email: "visitor@example.com",
				Body:  "Hello there",
			},
		},
		{
			name: "missing name",
			req: &services.ContactRequest{
				Email: "visitor@example.com",
				Body:  "Hello",
			},
			wantErr: true,
		},
		{
			name: "bad email",
			req: &services.ContactRequest{
				Name:  "Visitor",
				Email: "not-an-email",
				Body:  "Hello",
			},
			wantErr: true,
		},
		{
			name: "blank body",
			req: &services.ContactRequest{
				Name:  "Visitor",
				Email: "visitor@example.com",
				Body:  "   ",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitContact(context.Background(), tt.req)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSubmitContactNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewMessageService(newFakeMessageRepo(), notifier, testLogger())

	message, err := svc.SubmitContact(context.Background(), &services.ContactRequest{
		Name:  "  Visitor  ",
		Email: "visitor@example.com",
		Body:  "Hello",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}

	if message.Name != "Visitor" {
		t.Errorf("expected trimmed name, got %q", message.Name)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.calls))
	}
}

// A mail failure must not fail the submission.
func TestSubmitContactSurvivesNotifyFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, notifier, testLogger())

	message, err := svc.SubmitContact(context.Background(), &services.ContactRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
		Body:  "Hello",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), message.ID); err != nil {
		t.Errorf("expected message persisted despite mail failure: %v", err)
	}
}

func TestSetFlag(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, &fakeNotifier{}, testLogger())

	created, err := svc.SubmitContact(context.Background(), &services.ContactRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
		Body:  "Hello",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}

	message, err := svc.SetFlag(context.Background(), created.ID, models.FlagStarred, true)
	if err != nil {
		t.Fatalf("SetFlag: %v", err)
	}
	if !message.Starred {
		t.Error("expected message starred")
	}

	if _, err := svc.SetFlag(context.Background(), created.ID, models.MessageFlag("bogus"), true); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for unknown flag, got %v", err)
	}
	if _, err := svc.SetFlag(context.Background(), "missing", models.FlagRead, true); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
