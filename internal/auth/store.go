package auth

import (
	"context"
	"time"
)

// RevocationStore remembers logged-out session ids until they expire.
type RevocationStore interface {
	// Revoke marks tokenID as revoked for ttl.
	Revoke(context context.Context, tokenID string, ttl time.Duration) error
	// IsRevoked reports whether tokenID was revoked.
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
