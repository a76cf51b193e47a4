package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
youtube:
  api_key: "test-key"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.YouTube.MaxSearchResults != 50 {
		t.Errorf("MaxSearchResults = %d, want 50", cfg.YouTube.MaxSearchResults)
	}
	if cfg.Analysis.Timezone != "UTC" || cfg.Analysis.MinSignalViews != 100 || cfg.Analysis.MaxCorpusSize != 100 {
		t.Errorf("analysis defaults = %+v", cfg.Analysis)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Watchlist.Schedule == "" || cfg.Watchlist.DataDir != "data" {
		t.Errorf("watchlist defaults = %+v", cfg.Watchlist)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9000\n")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.YouTube.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.YouTube.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000 from file", cfg.Server.Port)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		path := writeConfigFile(t, "server:\n  port: 8080\n")
		t.Setenv("CONFIG_FILE", path)
		t.Setenv("YOUTUBE_API_KEY", "")

		if _, err := Load(); err == nil {
			t.Error("expected an error when no API key is configured")
		}
	})

	t.Run("BadTimezone", func(t *testing.T) {
		path := writeConfigFile(t, `
youtube:
  api_key: "k"
analysis:
  timezone: "Mars/Olympus"
`)
		t.Setenv("CONFIG_FILE", path)

		if _, err := Load(); err == nil {
			t.Error("expected an error for an unknown timezone")
		}
	})

	t.Run("WatchlistNeedsEmailCreds", func(t *testing.T) {
		path := writeConfigFile(t, `
youtube:
  api_key: "k"
watchlist:
  enabled: true
`)
		t.Setenv("CONFIG_FILE", path)
		t.Setenv("EMAIL_USERNAME", "")
		t.Setenv("EMAIL_PASSWORD", "")

		if _, err := Load(); err == nil {
			t.Error("expected an error when the watchlist digest has no email credentials")
		}
	})
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	cfg.Analysis.Timezone = "America/New_York"

	loc := cfg.Location()
	if loc.String() != "America/New_York" {
		t.Errorf("Location = %v", loc)
	}

	cfg.Analysis.Timezone = "not-a-zone"
	if cfg.Location() != time.UTC {
		t.Error("invalid timezone should fall back to UTC")
	}
}
