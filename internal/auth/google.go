package auth

import (
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultScopes mirror what the agent backend requests: mail and calendar
// access for the workspace tools.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.compose",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/calendar.events",
}

// Config holds the Google OAuth client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// GoogleProvider builds consent URLs for the Google OAuth flow.
type GoogleProvider struct {
	oauth *oauth2.Config
}

// NewGoogleProvider creates a provider from client credentials. Scopes
// default to the agent's workspace scopes.
func NewGoogleProvider(cfg Config) (*GoogleProvider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client id is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect url is required")
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}, nil
}

// AuthCodeURL returns the consent URL for the given anti-forgery state.
// Offline access is requested so the backend can refresh tokens without
// another hand-off.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}
