package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// Session is the server-side state referenced by the session cookie.
// Anonymous sessions (UserID zero) are valid: one is created as soon as
// a login flow starts, to hold the nonce.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id,omitempty"` // references users.id, 0 while anonymous
	Nonce     string    `json:"nonce,omitempty"`   // pending login nonce, single use
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session references a local user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// Store defines how sessions are persisted between requests.
// Implementations must support concurrent access from independent
// requests.
type Store interface {
	// Save writes the session, overwriting any previous state.
	Save(ctx context.Context, s Session) error
	// Get returns the session or (nil, nil) when absent or expired.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// GenerateID returns a cryptographically secure session identifier.
// 32 bytes = 256 bits of entropy.
func GenerateID() (string, error) {
	const size = 32

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
