package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies signed, time-limited bearer tokens
// binding a request to a user identity. Tokens are HS256 JWTs carrying
// {user_id, exp}.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for userID expiring ttl from now.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify resolves a token to the user identity it encodes, along with its
// expiry. Fails with domain.ErrTokenExpired past expiration and
// domain.ErrTokenInvalid for any signature or payload problem.
func (s *TokenService) Verify(token string) (string, time.Time, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", time.Time{}, domain.ErrTokenExpired
		}
		return "", time.Time{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", time.Time{}, domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", time.Time{}, domain.ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, domain.ErrTokenInvalid
	}

	return userID, exp.Time, nil
}
