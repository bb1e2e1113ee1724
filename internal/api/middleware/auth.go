package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bit-milind42/Blog-Editor/internal/api/metrics"
	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
	"github.com/bit-milind42/Blog-Editor/internal/core/ports"
)

// Context keys set by the auth middleware.
const (
	CtxUserID        = "user_id"
	CtxToken         = "token"
	CtxTokenExpires  = "token_expires_at"
	CtxAuthenticated = "authenticated"
)

// Auth rejects requests without a fully valid bearer token and injects the
// resolved user identity into the echo context. Expired tokens fail with a
// message distinct from other invalid tokens so clients can prompt re-login.
// revoker may be nil, in which case the revocation check is skipped.
func Auth(tokens ports.TokenVerifier, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c)
			if err != nil {
				return err
			}

			userID, expiresAt, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthFailuresTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), raw)
				if err != nil {
					return err
				}
				if revoked {
					metrics.AuthFailuresTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Token revoked")
				}
			}

			c.Set(CtxUserID, userID)
			c.Set(CtxToken, raw)
			c.Set(CtxTokenExpires, expiresAt)

			return next(c)
		}
	}
}

// OptionalAuth performs the same extraction and verification as Auth but
// never rejects: any failure marks the request unauthenticated and proceeds.
func OptionalAuth(tokens ports.TokenVerifier, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CtxAuthenticated, false)

			raw, err := extractToken(c)
			if err != nil {
				return next(c)
			}

			userID, expiresAt, err := tokens.Verify(raw)
			if err != nil {
				return next(c)
			}

			if revoker != nil {
				if revoked, err := revoker.IsRevoked(c.Request().Context(), raw); err != nil || revoked {
					return next(c)
				}
			}

			c.Set(CtxAuthenticated, true)
			c.Set(CtxUserID, userID)
			c.Set(CtxToken, raw)
			c.Set(CtxTokenExpires, expiresAt)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
		return "", echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		metrics.AuthFailuresTotal.WithLabelValues("bad_format").Inc()
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format")
	}

	return parts[1], nil
}
