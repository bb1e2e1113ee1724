package ports

import (
	"context"
	"time"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token alongside the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenVerifier resolves a bearer token to the user identity it encodes.
// Verification fails with domain.ErrTokenExpired past expiry and
// domain.ErrTokenInvalid for signature or payload problems.
type TokenVerifier interface {
	Verify(token string) (userID string, expiresAt time.Time, err error)
}

// TokenRevoker is a denylist of tokens invalidated before their natural
// expiry (logout). Entries may be dropped once `until` has passed.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
