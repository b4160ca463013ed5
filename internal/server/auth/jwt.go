// Package auth issues and verifies the signed session tokens handed out at
// login. Tokens are HS256 JWTs carrying the user's identity claims.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL    = time.Hour
	DefaultIssuer = "authgate"
)

// Claims is the token payload: registered claims plus the user's profile
// fields. Subject carries the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	Now    func() time.Time
}

// TokenManager is immutable after construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

func NewTokenManager(cfg TokenConfig) (*TokenManager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	m := &TokenManager{secret: secret, ttl: cfg.TTL, issuer: cfg.Issuer, now: cfg.Now}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(cfg.Now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(cfg.Issuer),
	)
	return m, nil
}

// Issue signs c, stamping iat, exp and iss from the manager's clock and
// settings. Identical claims at the same instant yield the same token.
func (m *TokenManager) Issue(c Claims) (string, error) {
	now := m.now()
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	c.Issuer = m.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}

// Verify reports whether token is authentic and unexpired. All failure causes
// collapse into false.
func (m *TokenManager) Verify(token string) (Claims, bool) {
	claims := Claims{}
	parsed, err := m.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return Claims{}, false
	}
	return claims, true
}

// TTL returns the lifetime given to issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}
