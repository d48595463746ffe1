package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names read outside the GOLF_ prefix scheme.
const (
	envConfigFile     = "GOLF_CONFIG"
	envPrefix         = "GOLF_"
	envGoogleCredsB64 = "GOOGLE_CREDENTIALS_B64"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GOLF_CONFIG is set
//  3. env (prefix GOLF_)
//
// GOOGLE_CREDENTIALS_B64 fills credentials_b64 when nothing else set it.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// GOLF_SHEET_ID -> sheet_id; underscores are kept to match koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.CredentialsB64 == "" {
		cfg.CredentialsB64 = os.Getenv(envGoogleCredsB64)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would make the service unusable. A missing
// sheet id is not checked here; it is reported per request.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LiveTimeoutMS <= 0:
		return fmt.Errorf("%w: live_timeout_ms must be positive", ErrInvalidConfig)
	case strings.TrimSpace(c.LiveFeedURL) == "":
		return fmt.Errorf("%w: live_feed_url must not be empty", ErrInvalidConfig)
	case c.TournamentRow < 0 || c.HeaderRow < 0 || c.NameCol < 0:
		return fmt.Errorf("%w: sheet layout coordinates must not be negative", ErrInvalidConfig)
	case c.HeaderRow >= c.DataStartRow || c.TournamentRow >= c.DataStartRow:
		return fmt.Errorf("%w: header and tournament rows must precede data_start_row", ErrInvalidConfig)
	}
	return nil
}
