package models

import "time"

// Message is a contact-form submission. Created by the public site,
// flagged and deleted from the admin dashboard.
type Message struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject,omitempty" db:"subject"`
	Body      string    `json:"body" db:"body"`
	Read      bool      `json:"read" db:"read"`
	Starred   bool      `json:"starred" db:"starred"`
	Archived  bool      `json:"archived" db:"archived"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MessageFlag names a toggleable message flag.
type MessageFlag string

const (
	FlagRead     MessageFlag = "read"
	FlagStarred  MessageFlag = "starred"
	FlagArchived MessageFlag = "archived"
)

// Valid reports whether the flag is one of the known tri-state flags.
func (f MessageFlag) Valid() bool {
	switch f {
	case FlagRead, FlagStarred, FlagArchived:
		return true
	}
	return false
}
