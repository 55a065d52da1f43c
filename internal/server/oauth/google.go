// Package oauth implements the Google authorization-code + PKCE exchange used
// for federated sign-in. The flow is linear and single-pass: build the
// authorization URL, exchange the returned code, fetch the profile.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/Decolo/translate-note-web/internal/common"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// Config carries the provider credentials plus optional endpoint overrides
// (used in tests; the zero values mean Google's public endpoints).
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	AuthURL     string
	TokenURL    string
	UserinfoURL string
}

// Userinfo is the subset of the OpenID userinfo response the server uses.
type Userinfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleClient performs the server side of the PKCE flow.
type GoogleClient struct {
	cfg         *oauth2.Config
	userinfoURL string
}

// NewGoogleClient validates the credential set and builds the client.
func NewGoogleClient(c Config) (*GoogleClient, error) {
	if c.ClientID == "" || c.ClientSecret == "" || c.RedirectURL == "" {
		return nil, fmt.Errorf("%w: Google OAuth credentials", common.ErrNotConfigured)
	}

	authURL := c.AuthURL
	if authURL == "" {
		authURL = googleAuthURL
	}
	tokenURL := c.TokenURL
	if tokenURL == "" {
		tokenURL = googleTokenURL
	}
	userinfoURL := c.UserinfoURL
	if userinfoURL == "" {
		userinfoURL = googleUserinfoURL
	}

	return &GoogleClient{
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		userinfoURL: userinfoURL,
	}, nil
}

// GenerateState returns a random anti-CSRF state token.
func GenerateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateVerifier returns a fresh PKCE code verifier.
func GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthCodeURL builds the provider authorization URL carrying the state and
// the S256 challenge derived from verifier.
func (g *GoogleClient) AuthCodeURL(state, verifier string) string {
	return g.cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.S256ChallengeOption(verifier),
	)
}

// Exchange trades the authorization code plus verifier for tokens.
func (g *GoogleClient) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	token, err := g.cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: exchanging authorization code: %v", common.ErrUpstream, err)
	}
	return token, nil
}

// FetchUserinfo retrieves the profile with the freshly-issued access token.
func (g *GoogleClient) FetchUserinfo(ctx context.Context, token *oauth2.Token) (*Userinfo, error) {
	client := g.cfg.Client(ctx, token)

	resp, err := client.Get(g.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching userinfo: %v", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned %s", common.ErrUpstream, resp.Status)
	}

	var info Userinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decoding userinfo: %v", common.ErrUpstream, err)
	}
	return &info, nil
}
