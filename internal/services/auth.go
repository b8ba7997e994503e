package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"trainingdash/internal/domain"
)

type authService struct {
	provider    domain.IdentityProvider
	tokens      domain.TokenIssuer
	staffDomain string
	sessionTTL  time.Duration
}

// NewAuthService creates an AuthService that delegates identity to the OAuth
// provider and admits only emails under the staff domain suffix.
func NewAuthService(provider domain.IdentityProvider, tokens domain.TokenIssuer, staffDomain string, sessionTTL time.Duration) domain.AuthService {
	return &authService{
		provider:    provider,
		tokens:      tokens,
		staffDomain: strings.TrimPrefix(strings.ToLower(staffDomain), "@"),
		sessionTTL:  sessionTTL,
	}
}

func (s *authService) BeginLogin() (string, string, error) {
	state, err := randomState()
	if err != nil {
		return "", "", fmt.Errorf("generate login state: %w", err)
	}
	return s.provider.AuthCodeURL(state), state, nil
}

func (s *authService) CompleteLogin(ctx context.Context, code string) (string, domain.Principal, error) {
	principal, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return "", domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !s.isStaff(principal.Email) {
		return "", domain.Principal{}, fmt.Errorf("%w: email %q is outside the staff domain", domain.ErrAccessDenied, principal.Email)
	}
	token, err := s.tokens.Issue(principal, s.sessionTTL)
	if err != nil {
		return "", domain.Principal{}, fmt.Errorf("issue session token: %w", err)
	}
	return token, principal, nil
}

func (s *authService) isStaff(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), "@"+s.staffDomain)
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
