package resolver

import (
	"context"

	"github.com/fahmidl/app-sso/internal/auth"
)

// Resolver determines which local user an external identity belongs to.
// It is the only place where identity-to-user mapping logic lives.
type Resolver interface {
	Resolve(ctx context.Context, identity *auth.Identity) (userID int64, err error)
}
