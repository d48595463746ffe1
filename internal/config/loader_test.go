package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/fairway/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":5001")
				convey.So(cfg.SheetID, convey.ShouldEqual, "")
				convey.So(cfg.LiveTimeoutMS, convey.ShouldEqual, 10_000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GOLF_ADDR", ":8080")
			_ = os.Setenv("GOLF_SHEET_ID", "sheet-abc")
			_ = os.Setenv("GOLF_CREDENTIALS", "/secrets/sa.json")
			_ = os.Setenv("GOLF_LIVE_TIMEOUT_MS", "2500")
			_ = os.Setenv("GOLF_NAME_COL", "14")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SheetID, convey.ShouldEqual, "sheet-abc")
				convey.So(cfg.Credentials, convey.ShouldEqual, "/secrets/sa.json")
				convey.So(cfg.LiveTimeoutMS, convey.ShouldEqual, 2500)
				convey.So(cfg.NameCol, convey.ShouldEqual, 14)
			})
		})

		convey.Convey("When base64 credentials come from the cloud variable", func() {
			_ = os.Setenv("GOOGLE_CREDENTIALS_B64", "e30=")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then they should fill credentials_b64", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.CredentialsB64, convey.ShouldEqual, "e30=")
			})
		})

		convey.Convey("When both base64 variables are set", func() {
			_ = os.Setenv("GOOGLE_CREDENTIALS_B64", "e30=")
			_ = os.Setenv("GOLF_CREDENTIALS_B64", "eyJhIjoxfQ==")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the prefixed one should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.CredentialsB64, convey.ShouldEqual, "eyJhIjoxfQ==")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
sheet_id: "from-file"
sheet_name: "2027 Standings"
log_format: json
live_timeout_ms: 4000
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("GOLF_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.SheetID, convey.ShouldEqual, "from-file")
				convey.So(cfg.SheetName, convey.ShouldEqual, "2027 Standings")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.LiveTimeoutMS, convey.ShouldEqual, 4000)
				convey.So(cfg.HeaderRow, convey.ShouldEqual, 4) // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
sheet_id: "from-file"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("GOLF_CONFIG", tmpFile)
			_ = os.Setenv("GOLF_SHEET_ID", "from-env")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.SheetID, convey.ShouldEqual, "from-env")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("GOLF_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("GOLF_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("GOLF_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("GOLF_LIVE_TIMEOUT_MS", "soon")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("Given configs with broken values", t, func() {
		cases := []struct {
			name   string
			mutate func(c *config.Config)
		}{
			{"zero timeout", func(c *config.Config) { c.LiveTimeoutMS = 0 }},
			{"empty feed", func(c *config.Config) { c.LiveFeedURL = " " }},
			{"negative column", func(c *config.Config) { c.NameCol = -1 }},
			{"header after data", func(c *config.Config) { c.HeaderRow = 7 }},
			{"tournament on data", func(c *config.Config) { c.TournamentRow = 6 }},
		}

		for _, tc := range cases {
			cfg := config.New()
			tc.mutate(cfg)

			convey.Convey("Then "+tc.name+" should be rejected", func() {
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"GOLF_CONFIG",
		"GOLF_ADDR",
		"GOLF_SHEET_ID",
		"GOLF_CREDENTIALS",
		"GOLF_CREDENTIALS_B64",
		"GOOGLE_CREDENTIALS_B64",
		"GOLF_LIVE_TIMEOUT_MS",
		"GOLF_NAME_COL",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "fairway-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
