package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube    YouTubeConfig    `yaml:"youtube"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	AI         AIConfig         `yaml:"ai"`
	Email      EmailConfig      `yaml:"email"`
	Server     ServerConfig     `yaml:"server"`
	Watchlist  WatchlistConfig  `yaml:"watchlist"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

type YouTubeConfig struct {
	APIKey           string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	MaxSearchResults int64  `yaml:"max_search_results"`
}

type AnalysisConfig struct {
	Timezone               string `yaml:"timezone"`
	MinSignalViews         int64  `yaml:"min_signal_views"`
	MaxCorpusSize          int    `yaml:"max_corpus_size"`
	RankRelatedByFrequency bool   `yaml:"rank_related_by_frequency"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type WatchlistConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
	DataDir  string `yaml:"data_dir"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Email.Username == "" {
		cfg.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if cfg.Email.Password == "" {
		cfg.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}

	cfg.ApplyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in every optional knob. Exported so tests can build a
// minimal Config without going through a config file.
func (c *Config) ApplyDefaults() {
	if c.YouTube.MaxSearchResults == 0 {
		c.YouTube.MaxSearchResults = 50
	}
	if c.Analysis.Timezone == "" {
		c.Analysis.Timezone = "UTC"
	}
	if c.Analysis.MinSignalViews == 0 {
		c.Analysis.MinSignalViews = 100
	}
	if c.Analysis.MaxCorpusSize == 0 {
		c.Analysis.MaxCorpusSize = 100
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Watchlist.Schedule == "" {
		c.Watchlist.Schedule = "0 0 9 * * *" // Daily at 9 AM
	}
	if c.Watchlist.DataDir == "" {
		c.Watchlist.DataDir = "data"
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8081
	}
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	if _, err := time.LoadLocation(c.Analysis.Timezone); err != nil {
		return fmt.Errorf("invalid analysis timezone %q: %w", c.Analysis.Timezone, err)
	}
	if c.Watchlist.Enabled {
		if c.Email.Username == "" {
			return fmt.Errorf("email username is required for the watchlist digest (set EMAIL_USERNAME or email.username)")
		}
		if c.Email.Password == "" {
			return fmt.Errorf("email password is required for the watchlist digest (set EMAIL_PASSWORD or email.password)")
		}
	}
	return nil
}

// Location resolves the analysis reference timezone. The upload heatmap must
// use one fixed zone for every item or the bucket counts stop matching the
// corpus size.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Analysis.Timezone)
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}
