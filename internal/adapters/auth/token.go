package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"trainingdash/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

type jwtSessions struct {
	secret []byte
}

// NewJWTSessions returns a TokenIssuer/TokenVerifier pair backed by HS256
// JWTs signed with the session secret. The subject claim carries the email.
func NewJWTSessions(secret string) *jwtSessions {
	return &jwtSessions{secret: []byte(secret)}
}

var (
	_ domain.TokenIssuer   = (*jwtSessions)(nil)
	_ domain.TokenVerifier = (*jwtSessions)(nil)
)

func (s *jwtSessions) Issue(p domain.Principal, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Name:    p.Name,
		Picture: p.Picture,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSessions) Verify(token string) (domain.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("invalid session token: %w", err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return domain.Principal{}, fmt.Errorf("invalid session token claims")
	}
	return domain.Principal{
		Email:   claims.Subject,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}
