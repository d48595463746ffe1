// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and GOLF_* env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"time"
)

// DefaultLiveFeedURL is the ESPN PGA Tour scoreboard.
const DefaultLiveFeedURL = "https://site.api.espn.com/apis/site/v2/sports/golf/pga/scoreboard"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json records.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":5001".
	Addr string `koanf:"addr"`

	// SheetID identifies the roster spreadsheet. Empty is allowed at load
	// time; standings requests then fail with a configuration error.
	SheetID string `koanf:"sheet_id"`

	// Credentials is the path to a service-account JSON file.
	Credentials string `koanf:"credentials"`

	// CredentialsB64 holds base64 service-account JSON and wins over the file.
	CredentialsB64 string `koanf:"credentials_b64"`

	// SheetName is the worksheet holding the standings grid.
	SheetName string `koanf:"sheet_name"`

	// Zero-based grid coordinates of the standings layout.
	TournamentRow int `koanf:"tournament_row"`
	HeaderRow     int `koanf:"header_row"`
	DataStartRow  int `koanf:"data_start_row"`
	NameCol       int `koanf:"name_col"`

	// LiveFeedURL is the live leaderboard endpoint.
	LiveFeedURL string `koanf:"live_feed_url"`

	// LiveTimeoutMS bounds a single live leaderboard call.
	LiveTimeoutMS int `koanf:"live_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":5001",
		Credentials:   "credentials.json",
		SheetName:     "2026 Standings",
		TournamentRow: 3,
		HeaderRow:     4,
		DataStartRow:  6,
		NameCol:       13,
		LiveFeedURL:   DefaultLiveFeedURL,
		LiveTimeoutMS: 10_000,
	}
}

// LiveTimeout returns LiveTimeoutMS as a duration.
func (c *Config) LiveTimeout() time.Duration {
	return time.Duration(c.LiveTimeoutMS) * time.Millisecond
}
