package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Defaults for the optional knobs. The team defaults follow the bot's
// fixed audience: Los Angeles Lakers, balldontlie team id 14.
const (
	defaultTeamName   = "Los Angeles Lakers"
	defaultFallbackID = 14
	defaultGamesTTL   = 300 * time.Second
	defaultRosterTTL  = 600 * time.Second
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	getEnvSeconds := func(key string, fallback time.Duration) time.Duration {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			return fallback
		}
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			log.Warn("Ignoring invalid duration value", "key", key, "value", value)
			return fallback
		}
		return time.Duration(secs) * time.Second
	}

	fallbackID := defaultFallbackID
	if raw, ok := os.LookupEnv("FALLBACK_TEAM_ID"); ok && raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Error: FALLBACK_TEAM_ID must be numeric, got %q", raw)
		}
		fallbackID = id
	}

	cfg := Config{
		Port: getEnv("PORT"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		NBA: NBAConfig{
			APIKey:  getEnv("NBA_API_KEY"),
			BaseURL: getEnvOr("NBA_API_BASE_URL", ""),
			Season:  getEnvOr("ROSTER_SEASON", ""),
		},
		Team: TeamConfig{
			Name:       getEnvOr("TEAM_NAME", defaultTeamName),
			FallbackID: fallbackID,
		},
		Caches: CacheConfig{
			GamesTTL:  getEnvSeconds("GAMES_CACHE_TTL", defaultGamesTTL),
			RosterTTL: getEnvSeconds("ROSTER_CACHE_TTL", defaultRosterTTL),
		},
	}
	return cfg
}
