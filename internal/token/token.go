// Package token issues and verifies the signed bearer tokens that carry a
// user's id and status between requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the source contract: tokens expire 24 hours after issue.
const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type Config struct {
	Secret string
	TTL    time.Duration
}

// Claims carries the authenticated identity. Status doubles as the role label
// checked by the role gates.
type Claims struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Manager{cfg: cfg}
}

// Issue signs a token for the given subject. Stateless; nothing is persisted.
func (m *Manager) Issue(subjectID, status string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:     subjectID,
		Status: status,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(m.cfg.Secret))
}

// Verify checks signature and expiry and returns the decoded claims.
// Expired tokens surface ErrExpiredToken; every other failure, including a
// non-HMAC signing method, is ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
