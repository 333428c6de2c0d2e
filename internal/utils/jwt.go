package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotBearerToken is returned when an Authorization value does not carry a
// bearer token.
var ErrNotBearerToken = errors.New("authorization value is not a bearer token")

// ParseBearerToken extracts the raw token from an "Authorization: Bearer ..."
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	value := strings.TrimSpace(authorizationHeader)
	if value == "" {
		return "", ErrNotBearerToken
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(value, prefix) {
		return "", ErrNotBearerToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(value, prefix))
	if token == "" {
		return "", ErrNotBearerToken
	}

	return token, nil
}

// TokenExpiry reads the "exp" claim of a JWT without verifying its signature.
// The client holds server-issued tokens it cannot verify locally; the expiry
// claim alone is enough to skip a doomed network round-trip.
//
// Returns the expiry time, or an error if the string is not a JWT or carries
// no expiry claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()

	var claims jwt.RegisteredClaims
	_, _, err := parser.ParseUnverified(tokenString, &claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token carries no expiry claim")
	}

	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether tokenString is a JWT whose expiry claim is in
// the past. Opaque (non-JWT) tokens and tokens without an expiry claim report
// false: the server remains the authority on their validity.
func TokenExpired(tokenString string) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return exp.Before(time.Now())
}
