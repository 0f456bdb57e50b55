package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var sessionSigningMethod = jwt.SigningMethodHS256

// SessionConfig holds the shared secret session tokens are signed with.
type SessionConfig struct {
	Secret string
	Issuer string
}

// SessionClaims identifies the dispatcher behind a request.
type SessionClaims struct {
	jwt.RegisteredClaims
}

const sessionKey = "session"

// MintSessionToken issues a signed session token for subject.
func MintSessionToken(cfg SessionConfig, now time.Time, subject string, ttl time.Duration) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("session secret is required")
	}
	if ttl <= 0 {
		return "", errors.New("session ttl must be positive")
	}

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(sessionSigningMethod, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken verifies signature, issuer and expiry of tokenString.
func ParseSessionToken(cfg SessionConfig, tokenString string) (*SessionClaims, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session secret is required")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{sessionSigningMethod.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if token.Method != sessionSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		opts...,
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RequireSession rejects requests without a valid bearer session token
// before any handler runs.
func RequireSession(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return fmt.Errorf("%w: missing bearer token", errs.ErrUnauthorized)
			}

			claims, err := ParseSessionToken(cfg, strings.TrimSpace(token))
			if err != nil {
				return fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
			}

			c.Set(sessionKey, claims)
			return next(c)
		}
	}
}

// SessionFrom returns the claims RequireSession stored on c.
func SessionFrom(c echo.Context) (*SessionClaims, bool) {
	claims, ok := c.Get(sessionKey).(*SessionClaims)
	return claims, ok
}
