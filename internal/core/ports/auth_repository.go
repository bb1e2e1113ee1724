package ports

import (
	"context"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
