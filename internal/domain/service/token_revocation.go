package service

import (
	"context"
	"time"
)

// TokenRevocationStore remembers tokens that were logged out before they
// expired. Entries only need to live until the token's own expiry.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
