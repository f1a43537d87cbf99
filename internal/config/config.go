// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every knob the ingestion run reads. The API key is required
// up front: a missing credential is a configuration error, never a retry.
type Config struct {
	APIKey      string `envconfig:"BALLDONTLIE_API_KEY" required:"true"`
	BaseURL     string `envconfig:"BALLDONTLIE_BASE_URL" default:"https://api.balldontlie.io/v1"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	StageDir    string `envconfig:"STAGE_DIR" default:"stage"`

	Season         int `envconfig:"SEASON" default:"2023"`
	TeamsPerPage   int `envconfig:"TEAMS_PER_PAGE" default:"100"`
	PlayersPerPage int `envconfig:"PLAYERS_PER_PAGE" default:"100"`
	GamesPerPage   int `envconfig:"GAMES_PER_PAGE" default:"25"`
	// MaxPlayers caps how many distinct players one run keeps; 0 = unlimited.
	MaxPlayers int `envconfig:"MAX_PLAYERS" default:"400"`

	FetchDelay        time.Duration `envconfig:"FETCH_DELAY" default:"250ms"`
	GamesFetchDelay   time.Duration `envconfig:"GAMES_FETCH_DELAY" default:"1.5s"`
	RateLimitCooldown time.Duration `envconfig:"RATE_LIMIT_COOLDOWN" default:"10s"`
	RateLimitRetries  int           `envconfig:"RATE_LIMIT_RETRIES" default:"10"`

	BatchSize int `envconfig:"BATCH_SIZE" default:"500"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// ErrDatabaseURLRequired is returned when a load stage runs without a store DSN.
var ErrDatabaseURLRequired = errors.New("config: DATABASE_URL is required when loading to the store")

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.clamp()
	return &cfg, nil
}

// RequireDatabaseURL validates the DSN is present for load stages.
func (c *Config) RequireDatabaseURL() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLRequired
	}
	return nil
}

func (c *Config) clamp() {
	if c.TeamsPerPage <= 0 {
		c.TeamsPerPage = 100
	}
	if c.PlayersPerPage <= 0 {
		c.PlayersPerPage = 100
	}
	if c.GamesPerPage <= 0 {
		c.GamesPerPage = 25
	}
	if c.MaxPlayers < 0 {
		c.MaxPlayers = 0
	}
	if c.RateLimitRetries <= 0 {
		c.RateLimitRetries = 10
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 500
	}
}
