package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"pteguide_backend/internals/constants"
)

var ErrInvalidEditToken = errors.New("edit token is missing, invalid or expired")

// IssueEditToken mints the time-boxed capability a session holds after the
// passcode check. The capability is its own signed token rather than a bare
// session flag, so it expires on its own and survives nothing beyond its TTL.
func IssueEditToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   constants.EditScope,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyEditToken checks signature, expiry and scope.
func VerifyEditToken(secret, token string) error {
	if token == "" {
		return ErrInvalidEditToken
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidEditToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject != constants.EditScope {
		return ErrInvalidEditToken
	}
	return nil
}
