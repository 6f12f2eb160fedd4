package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"kartikay_signage/internal/config"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is what we keep from a Google sign-in.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleAuthenticator runs the OAuth authorization-code flow against Google
// and resolves the signed-in profile.
type GoogleAuthenticator struct {
	cfg *oauth2.Config

	// userinfoURL is swapped out in tests.
	userinfoURL string
}

func NewGoogleAuthenticator(cfg config.OAuth) *GoogleAuthenticator {
	return &GoogleAuthenticator{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userinfoURL: userinfoURL,
	}
}

// LoginURL builds the consent-screen redirect for a CSRF state value.
func (g *GoogleAuthenticator) LoginURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

// Exchange trades the callback code for tokens and fetches the profile.
func (g *GoogleAuthenticator) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	resp, err := g.cfg.Client(ctx, token).Get(g.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}
	return &profile, nil
}
