package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore is the canonical user store, one row per provider
// subject in the users table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindBySubject(ctx context.Context, subject string) (*User, error) {
	return s.findOne(ctx, `
		SELECT id, provider_subject, display_name, COALESCE(email, '')
		FROM users
		WHERE provider_subject = $1
	`, subject)
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.findOne(ctx, `
		SELECT id, provider_subject, display_name, COALESCE(email, '')
		FROM users
		WHERE id = $1
	`, id)
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.ProviderSubject,
		&u.DisplayName,
		&u.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: query: %w", err)
	}
	return &u, nil
}

// Create inserts and commits a new user row. An empty email is stored
// as NULL so the partial unique index only applies where an email
// exists.
func (s *PostgresStore) Create(ctx context.Context, subject, name, email string) (*User, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (provider_subject, display_name, email)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id
	`, subject, name, email).Scan(&id)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("subject %q: %w", subject, ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("user: insert: %w", err)
	}

	return &User{
		ID:              id,
		ProviderSubject: subject,
		DisplayName:     name,
		Email:           email,
	}, nil
}

// unique_violation
const pqUniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
