// Package config loads server configuration from the process environment.
// Required values are validated once at startup so a misconfigured process
// refuses to boot instead of failing on the first request.
package config

import (
	"errors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings for the translate-note server.
//
// Provider API keys and Google OAuth credentials are optional: the features
// that need them report a configuration error when invoked without them.
type Config struct {
	Env     string `env:"APP_ENV" env-default:"local"`
	Address string `env:"HTTP_ADDRESS" env-default:":8080"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`

	SessionCookieName      string        `env:"SESSION_COOKIE_NAME" env-default:"tn_session"`
	SessionTTL             time.Duration `env:"SESSION_TTL" env-default:"720h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" env-default:"1h"`

	OAuthStateTTL      time.Duration `env:"OAUTH_STATE_TTL" env-default:"10m"`
	GoogleClientID     string        `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `env:"GOOGLE_REDIRECT_URI"`

	DeepSeekAPIKey string `env:"DEEPSEEK_API_KEY"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
}

var (
	ErrMissingDatabaseDSN   = errors.New("config: DATABASE_DSN is required")
	ErrPartialGoogleConfig  = errors.New("config: GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URI must be set together")
	ErrNonPositiveSessTTL   = errors.New("config: SESSION_TTL must be positive")
	ErrNonPositiveStateTTL  = errors.New("config: OAUTH_STATE_TTL must be positive")
)

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants Load relies on. Exposed for tests.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return ErrMissingDatabaseDSN
	}
	if c.SessionTTL <= 0 {
		return ErrNonPositiveSessTTL
	}
	if c.OAuthStateTTL <= 0 {
		return ErrNonPositiveStateTTL
	}

	// Google OAuth is optional, but a partial credential set is always a
	// deployment mistake.
	set := 0
	for _, v := range []string{c.GoogleClientID, c.GoogleClientSecret, c.GoogleRedirectURI} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return ErrPartialGoogleConfig
	}
	return nil
}

// GoogleOAuthConfigured reports whether the Google sign-in flow can run.
func (c *Config) GoogleOAuthConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURI != ""
}

// IsProduction controls the Secure flag on cookies.
func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}
