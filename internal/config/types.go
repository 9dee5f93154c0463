package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port   string
	Slack  SlackConfig
	NBA    NBAConfig
	Team   TeamConfig
	Caches CacheConfig
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type NBAConfig struct {
	APIKey  string
	BaseURL string
	// Season in the stats provider's "2024-25" form. Empty means derive
	// it from the current date at startup.
	Season string
}

// TeamConfig pins the bot to a single team.
type TeamConfig struct {
	Name       string
	FallbackID int
}

type CacheConfig struct {
	GamesTTL  time.Duration
	RosterTTL time.Duration
}
