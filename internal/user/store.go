package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate is a uniqueness violation on provider_subject or
	// email. Callers racing on the same subject recover by re-fetching.
	ErrDuplicate = errors.New("user already exists")
)

// Store persists the mapping from provider subjects to local users.
// Implementations must enforce uniqueness of provider_subject and of
// email where present; that constraint is the only concurrency control
// this system relies on.
type Store interface {
	FindBySubject(ctx context.Context, subject string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, subject, name, email string) (*User, error)
}
