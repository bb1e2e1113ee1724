package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minRevokeTTL = time.Minute

// TokenRevoker is a Redis-backed denylist of tokens invalidated before
// their natural expiry (logout). Keys carry a TTL matching the token's
// remaining validity, so entries clean themselves up.
// Key format: revoked:<sha256(token)>
type TokenRevoker struct {
	client *redis.Client
}

// NewTokenRevoker creates a TokenRevoker wrapping the given Redis client.
func NewTokenRevoker(client *redis.Client) *TokenRevoker {
	return &TokenRevoker{client: client}
}

// Revoke denylists the token until `until`. Already-expired tokens still get
// a short TTL so the entry outlives clock skew between verifier and store.
func (t *TokenRevoker) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl < minRevokeTTL {
		ttl = minRevokeTTL
	}
	if err := t.client.Set(ctx, t.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been denylisted.
func (t *TokenRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (t *TokenRevoker) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
