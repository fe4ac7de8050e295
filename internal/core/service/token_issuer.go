package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// DefaultTokenTTL is the session lifetime. There is no refresh flow: when a
// token expires the user authenticates again.
const DefaultTokenTTL = 30 * 24 * time.Hour

// TokenIssuer mints and verifies HS256 session tokens carrying the subject
// user id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token with the subject id and an absolute expiry.
func (t *TokenIssuer) Issue(subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": subjectID,
		"exp":     time.Now().Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, returning the embedded subject id.
// Expiry maps to domain.ErrTokenExpired; every other failure (signature,
// structure, wrong algorithm, missing subject) maps to domain.ErrTokenMalformed.
func (t *TokenIssuer) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenMalformed
	}
	if !parsed.Valid {
		return "", domain.ErrTokenMalformed
	}

	subject, _ := claims["user_id"].(string)
	if subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return subject, nil
}
