package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("message not found")

// ErrNotConfigured is returned when the database connection string is
// missing and no store access is possible.
var ErrNotConfigured = errors.New("Server Configuration Error: DATABASE_URL is missing.")

var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrInvalidID     = errors.New("Invalid id")
	ErrInvalidStatus = errors.New("Invalid status. Use: new, read, contacted")
)

// Moderation statuses. These are flat labels: any status may move to any
// other via the update operation, there is no transition graph.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusContacted = "contacted"
)

// ListLimit caps how many messages the list operation returns.
const ListLimit = 200

// ValidStatus reports whether s is one of the allowed moderation statuses.
// Callers are expected to lowercase s first.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusRead, StatusContacted:
		return true
	}
	return false
}

// ContactMessage represents a single contact-form inquiry.
// The projecttype JSON key is lowercase because the column name is
// folded by Postgres and the admin frontend reads it that way.
type ContactMessage struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ProjectType string    `json:"projecttype"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitContactRequest represents a contact form submission
type SubmitContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message" validate:"required"`
}

// ContactRepository defines the persistence interface for contact messages
type ContactRepository interface {
	// EnsureSchema provisions the contact_messages table. Safe to call
	// any number of times, including concurrently.
	EnsureSchema(ctx context.Context) error
	// Insert appends a new row with status "new" and populates the
	// store-assigned id and created_at on msg.
	Insert(ctx context.Context, msg *ContactMessage) error
	// List returns the most recent messages, newest first, capped at ListLimit.
	List(ctx context.Context) ([]*ContactMessage, error)
	// UpdateStatus sets the status of the row with the given id and
	// returns the updated row. Returns ErrNotFound when no row matches.
	UpdateStatus(ctx context.Context, id int64, status string) (*ContactMessage, error)
}

// ContactUsecase defines the contact-message lifecycle operations
type ContactUsecase interface {
	// Submit validates and persists a new inquiry.
	Submit(ctx context.Context, req *SubmitContactRequest) error
	// ListMessages returns the most recent inquiries for moderation.
	ListMessages(ctx context.Context) ([]*ContactMessage, error)
	// UpdateStatus moves an inquiry to a new moderation status. A nil
	// message with a nil error means no row matched the id.
	UpdateStatus(ctx context.Context, id float64, status string) (*ContactMessage, error)
}
