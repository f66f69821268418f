// Package session tracks which requests originate from an authenticated
// identity. A session maps an opaque ID (carried in a cookie) to a user ID.
package session

import (
	"context"
	"time"
)

const (
	// TTL is how long a session stays valid without being recreated.
	TTL = 24 * time.Hour
	// CookieName is the cookie carrying the session ID.
	CookieName = "session_id"
)

// Store persists session-ID → user-ID mappings.
type Store interface {
	// Create stores a new session for the user and returns its ID.
	Create(ctx context.Context, userID uint) (string, error)
	// Get returns the user ID for a session, or 0 if the session does not
	// exist or has expired.
	Get(ctx context.Context, sessionID string) (uint, error)
	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
