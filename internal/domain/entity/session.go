package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived dashboard session. It is used to
// obtain a new access token after the old one expires, without requiring
// credentials again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the account it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When the session becomes invalid.
	CreatedAt time.Time // When the session was created (sign-in time).
}

// Expired reports whether the session is past its expiry at the given time.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// SessionState is the resolved state of a session check.
type SessionState struct {
	Authenticated bool  `json:"authenticated"` // True only when a valid session maps to a live account.
	User          *User `json:"user"`          // Nil when Authenticated is false.
}
