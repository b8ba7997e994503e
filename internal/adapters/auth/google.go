package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"trainingdash/internal/domain"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleConfig holds the OAuth client settings.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type googleProvider struct {
	oauth *oauth2.Config
}

// NewGoogleProvider returns an IdentityProvider backed by Google OAuth.
func NewGoogleProvider(cfg GoogleConfig) domain.IdentityProvider {
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

func (g *googleProvider) Exchange(ctx context.Context, code string) (domain.Principal, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	resp, err := g.oauth.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Principal{}, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.Principal{}, fmt.Errorf("decode userinfo: %w", err)
	}
	return domain.Principal{Email: info.Email, Name: info.Name, Picture: info.Picture}, nil
}
