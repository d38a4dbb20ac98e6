package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"linkboard-api/internal/config"
	"linkboard-api/internal/domain"
)

// TokenIssuer signs session tokens carrying the user's claims
type TokenIssuer interface {
	IssueToken(user *domain.User) (string, error)
}

// jwtTokenIssuer issues HS256 session tokens
type jwtTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer from JWT config
func NewTokenIssuer(cfg config.JWTConfig) TokenIssuer {
	return &jwtTokenIssuer{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// IssueToken signs a session token for the user. Claims carry the
// user's identity and type; a profile update issues a fresh token so
// the claims never go stale.
func (i *jwtTokenIssuer) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"name":      user.Name,
		"user_type": string(user.UserType),
		"iat":       now.Unix(),
		"exp":       now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
