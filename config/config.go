package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken      string
	DiscordGuildID    string
	AnnounceChannelID string

	// Database configuration
	DatabaseURL string

	// Optional redis-backed session store; sessions live in memory when unset
	SessionsRedisURL string

	// Game configuration
	StartingBalance int64
	MinStake        int64
	DailyBonus      int64
	WeeklyBonus     int64

	// Discord IDs allowed to use admin commands
	AdminDiscordIDs []int64

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	mu       sync.Mutex
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		loaded, err := load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		instance = loaded
	}
	return instance
}

// SetTestConfig replaces the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:     "test",
		StartingBalance: 100,
		MinStake:        10,
		DailyBonus:      50,
		WeeklyBonus:     200,
	}
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID:    os.Getenv("DISCORD_GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SessionsRedisURL: os.Getenv("SESSIONS_REDIS_URL"),

		// Game settings with defaults
		StartingBalance: 100,
		MinStake:        10,
		DailyBonus:      50,
		WeeklyBonus:     200,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsed, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsed
		}
	}
	if stake := os.Getenv("MIN_STAKE"); stake != "" {
		if parsed, err := strconv.ParseInt(stake, 10, 64); err == nil {
			config.MinStake = parsed
		}
	}
	if bonus := os.Getenv("DAILY_BONUS"); bonus != "" {
		if parsed, err := strconv.ParseInt(bonus, 10, 64); err == nil {
			config.DailyBonus = parsed
		}
	}
	if bonus := os.Getenv("WEEKLY_BONUS"); bonus != "" {
		if parsed, err := strconv.ParseInt(bonus, 10, 64); err == nil {
			config.WeeklyBonus = parsed
		}
	}

	// Parse admin Discord IDs
	if adminIDs := os.Getenv("ADMIN_DISCORD_IDS"); adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			idStr = strings.TrimSpace(idStr)
			if idStr == "" {
				continue
			}
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
				config.AdminDiscordIDs = append(config.AdminDiscordIDs, id)
			}
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// IsAdmin reports whether the given Discord ID is on the admin allow list
func (c *Config) IsAdmin(discordID int64) bool {
	for _, id := range c.AdminDiscordIDs {
		if id == discordID {
			return true
		}
	}
	return false
}
