package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is loaded from environment variables (with .env support in main).
// Each draft format has its own sheet coordinates; only the configured
// format's coordinates are required.
type Config struct {
	DiscordToken  string
	SpreadsheetID string

	DraftFormat  string // "snake" or "auction"
	SnakeGID     string
	SnakeRange   string
	AuctionGID   string
	AuctionRange string

	DraftCacheTTL time.Duration
	CommandPrefix string
	LogLevel      string
}

func Load() (*Config, error) {
	ttl := 60 * time.Second
	if d := os.Getenv("DRAFT_CACHE_TTL_SECONDS"); d != "" {
		seconds, err := strconv.Atoi(d)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid DRAFT_CACHE_TTL_SECONDS: %q", d)
		}
		ttl = time.Duration(seconds) * time.Second
	}

	cfg := &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		SpreadsheetID: os.Getenv("GOOGLE_SHEETS_ID"),
		DraftFormat:   getEnvOrDefault("DRAFT_FORMAT", "snake"),
		SnakeGID:      os.Getenv("SNAKE_SHEET_GID"),
		SnakeRange:    os.Getenv("SNAKE_SHEET_RANGE"),
		AuctionGID:    os.Getenv("AUCTION_SHEET_GID"),
		AuctionRange:  os.Getenv("AUCTION_SHEET_RANGE"),
		DraftCacheTTL: ttl,
		CommandPrefix: getEnvOrDefault("COMMAND_PREFIX", "!"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate catches configuration mistakes at startup so they never surface
// as runtime parse errors
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SHEETS_ID is required")
	}

	switch c.DraftFormat {
	case "snake":
		if c.SnakeGID == "" {
			return fmt.Errorf("DRAFT_FORMAT is snake but SNAKE_SHEET_GID is not set")
		}
	case "auction":
		if c.AuctionGID == "" {
			return fmt.Errorf("DRAFT_FORMAT is auction but AUCTION_SHEET_GID is not set")
		}
	default:
		return fmt.Errorf("unrecognized DRAFT_FORMAT %q (want \"snake\" or \"auction\")", c.DraftFormat)
	}

	return nil
}

// SheetGID returns the configured format's sheet tab id
func (c *Config) SheetGID() string {
	if c.DraftFormat == "auction" {
		return c.AuctionGID
	}
	return c.SnakeGID
}

// SheetRange returns the configured format's cell range (may be empty for
// the whole tab)
func (c *Config) SheetRange() string {
	if c.DraftFormat == "auction" {
		return c.AuctionRange
	}
	return c.SnakeRange
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
