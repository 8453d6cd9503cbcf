package postgres

import (
	"context"
	"errors"
	"go-firesafety-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// EnsureSchema provisions the contact_messages table. Both statements use
// IF NOT EXISTS semantics, so concurrent cold starts and repeated runs
// are safe without any migration coordination.
func (r *contactRepo) EnsureSchema(ctx context.Context) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name TEXT,
			email TEXT,
			phone TEXT,
			projecttype TEXT,
			message TEXT,
			status TEXT DEFAULT 'new',
			created_at TIMESTAMPTZ DEFAULT now()
		)`

	if _, err := r.db.Exec(ctx, createTable); err != nil {
		return err
	}

	// Deployments that predate moderation lack the status column.
	_, err := r.db.Exec(ctx,
		`ALTER TABLE contact_messages ADD COLUMN IF NOT EXISTS status TEXT DEFAULT 'new'`)
	return err
}

// Insert appends a new inquiry row. Optional fields are stored as NULL
// when empty so the admin view can tell "not provided" from blank input.
func (r *contactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, projecttype, message, status)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.ProjectType, msg.Message, msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// List returns the most recently created messages, newest first, capped
// at domain.ListLimit. There is no pagination beyond the fixed cap.
func (r *contactRepo) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(projecttype, ''), COALESCE(message, ''), status, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, domain.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Phone, &m.ProjectType,
			&m.Message, &m.Status, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// UpdateStatus sets the status of one row and returns the updated row.
// A single-row UPDATE is atomic at the store, so concurrent updates to
// the same id are last-write-wins.
func (r *contactRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactMessage, error) {
	query := `
		UPDATE contact_messages
		SET status = $1
		WHERE id = $2
		RETURNING id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, ''),
		          COALESCE(projecttype, ''), COALESCE(message, ''), status, created_at`

	var m domain.ContactMessage
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.ProjectType,
		&m.Message, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
