package domain

import (
	"context"
	"time"
)

// Principal is the authenticated staff member for the current request.
// It is threaded through request contexts, never held as process state.
// swagger:model Principal
type Principal struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// TokenIssuer issues session tokens for an authenticated principal.
type TokenIssuer interface {
	Issue(p Principal, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the principal.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

// IdentityProvider is the external OAuth collaborator. AuthCodeURL returns
// the consent-page redirect for a state nonce; Exchange turns a callback
// code into the authenticated profile.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (Principal, error)
}

// AuthService completes the sign-in flow and enforces the staff-domain policy.
type AuthService interface {
	BeginLogin() (authURL, state string, err error)
	CompleteLogin(ctx context.Context, code string) (token string, p Principal, err error)
}
