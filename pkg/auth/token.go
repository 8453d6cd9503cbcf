package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("auth: admin secret not configured")
	ErrInvalidToken  = errors.New("auth: invalid token")
)

const tokenSubject = "moderator"

// Credential is the injected capability that guards the moderation
// surface. It wraps the shared operator secret and the key used to sign
// short-lived session tokens, so handlers never compare literals
// themselves.
type Credential struct {
	secret     []byte
	signingKey []byte
	ttl        time.Duration
}

// NewCredential builds a Credential. signingKey may be empty, in which
// case tokens are signed with a key derived from the secret itself.
func NewCredential(secret, signingKey string, ttl time.Duration) *Credential {
	if signingKey == "" {
		signingKey = secret + ".session"
	}
	return &Credential{
		secret:     []byte(secret),
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Configured reports whether an operator secret is present.
func (c *Credential) Configured() bool {
	return len(c.secret) > 0
}

// Match compares a presented secret in constant time.
func (c *Credential) Match(presented string) bool {
	if !c.Configured() {
		return false
	}
	return subtle.ConstantTimeCompare(c.secret, []byte(presented)) == 1
}

// IssueToken exchanges a verified secret for a short-lived HS256 session
// token. Callers must check Match first.
func (c *Credential) IssueToken(now time.Time) (string, time.Time, error) {
	if !c.Configured() {
		return "", time.Time{}, ErrNotConfigured
	}

	expiresAt := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// VerifyToken checks a session token's signature, expiry and subject.
func (c *Credential) VerifyToken(tokenString string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return c.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != tokenSubject {
		return ErrInvalidToken
	}
	return nil
}
