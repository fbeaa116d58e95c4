package resolver

import (
	"context"
	"errors"

	"github.com/fahmidl/app-sso/internal/auth"
	"github.com/fahmidl/app-sso/internal/user"
)

// StoreResolver reconciles identities against the user store.
// First write wins: claims never update an existing row, even when the
// provider now reports a different name or email.
type StoreResolver struct {
	store user.Store
}

func New(store user.Store) *StoreResolver {
	return &StoreResolver{store: store}
}

func (r *StoreResolver) Resolve(ctx context.Context, identity *auth.Identity) (int64, error) {
	if identity == nil || identity.Subject == "" {
		return 0, errors.New("resolver: identity missing subject")
	}

	u, err := r.store.FindBySubject(ctx, identity.Subject)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return 0, err
	}

	created, err := r.store.Create(ctx, identity.Subject, identity.Name, identity.Email)
	if err == nil {
		return created.ID, nil
	}
	if !errors.Is(err, user.ErrDuplicate) {
		return 0, err
	}

	// Lost a concurrent-create race: the winner's row is authoritative.
	u, ferr := r.store.FindBySubject(ctx, identity.Subject)
	if ferr == nil {
		return u.ID, nil
	}
	if errors.Is(ferr, user.ErrNotFound) {
		// The duplicate was the email, held by a different subject.
		return 0, err
	}
	return 0, ferr
}
