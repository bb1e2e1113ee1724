package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Token verification failures. Expired is distinct from invalid so clients
// can prompt a re-login specifically.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenRevoked = errors.New("token revoked")

// User models an authenticated author.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
