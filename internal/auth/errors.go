package auth

import (
	"errors"
	"fmt"
)

// Login flow errors
var (
	// ErrTokenValidation covers every verification failure on the callback
	// path: signature, audience, expiry, or nonce mismatch. The flow aborts
	// and the session is never mutated.
	ErrTokenValidation = errors.New("token validation failed")

	// ErrProviderUnavailable is a network failure or timeout talking to the
	// provider's token endpoint or key set.
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// ErrNoPendingLogin is a callback with no matching login attempt in the
	// session. It is a token validation failure by definition: there is no
	// nonce the token could match.
	ErrNoPendingLogin = fmt.Errorf("no pending login: %w", ErrTokenValidation)
)
