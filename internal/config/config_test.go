package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("BALLDONTLIE_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected missing API key to fail Load")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BALLDONTLIE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected Load to succeed, got %v", err)
	}
	if cfg.BaseURL != "https://api.balldontlie.io/v1" {
		t.Fatalf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.Season != 2023 || cfg.GamesPerPage != 25 || cfg.BatchSize != 500 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GamesFetchDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected games delay %v", cfg.GamesFetchDelay)
	}
	if cfg.RateLimitCooldown != 10*time.Second {
		t.Fatalf("unexpected cooldown %v", cfg.RateLimitCooldown)
	}
}

func TestLoadOverridesAndClamps(t *testing.T) {
	t.Setenv("BALLDONTLIE_API_KEY", "test-key")
	t.Setenv("SEASON", "2021")
	t.Setenv("BATCH_SIZE", "-5")
	t.Setenv("MAX_PLAYERS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected Load to succeed, got %v", err)
	}
	if cfg.Season != 2021 {
		t.Fatalf("expected season override, got %d", cfg.Season)
	}
	if cfg.BatchSize != 500 {
		t.Fatalf("expected non-positive batch size clamped, got %d", cfg.BatchSize)
	}
	if cfg.MaxPlayers != 0 {
		t.Fatalf("expected unlimited players allowed, got %d", cfg.MaxPlayers)
	}
}

func TestRequireDatabaseURL(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireDatabaseURL(); !errors.Is(err, ErrDatabaseURLRequired) {
		t.Fatalf("expected ErrDatabaseURLRequired, got %v", err)
	}
	cfg.DatabaseURL = "postgres://localhost/nba"
	if err := cfg.RequireDatabaseURL(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
