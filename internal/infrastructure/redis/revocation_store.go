package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	"github.com/oksasatya/go-ddd-todo/pkg/helpers"
)

const revokedKeyPrefix = "auth:revoked:"

// RevocationStore keeps logged out token ids in redis until the token would
// have expired anyway.
type RevocationStore struct {
	rdb goredis.Cmdable
	now func() time.Time
}

func NewRevocationStore(rdb goredis.Cmdable) *RevocationStore {
	return &RevocationStore{rdb: rdb, now: time.Now}
}

type revocation struct {
	RevokedAt string `json:"revoked_at"`
	Until     string `json:"until"`
}

func revokedKey(tokenID string) string { return revokedKeyPrefix + tokenID }

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	now := s.now()
	ttl := until.Sub(now)
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	entry := revocation{
		RevokedAt: now.UTC().Format(time.RFC3339Nano),
		Until:     until.UTC().Format(time.RFC3339Nano),
	}
	if err := helpers.RedisSetJSON(ctx, s.rdb, revokedKey(tokenID), entry, ttl); err != nil {
		return fmt.Errorf("store revocation: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var entry revocation
	found, err := helpers.RedisGetJSON(ctx, s.rdb, revokedKey(tokenID), &entry)
	if err != nil {
		return false, fmt.Errorf("load revocation: %w", err)
	}
	return found, nil
}

var _ service.TokenRevocationStore = (*RevocationStore)(nil)
