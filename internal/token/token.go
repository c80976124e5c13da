// Package token issues and verifies the bearer tokens that authenticate
// privileged RPCs. Tokens are signed JWTs carried in call metadata, never
// persisted server-side.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = time.Hour

// Claims is the identity a token is bound to.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager builds a Manager around the signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: DefaultTTL, now: time.Now}
}

// Issue signs a fresh token bound to name and email.
func (m *Manager) Issue(name, email string) (string, error) {
	now := m.now()
	claims := Claims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Subject:   email,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
// Expired, malformed, and wrongly-signed tokens all fail.
func (m *Manager) Verify(signed string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(signed, claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	return claims, nil
}
