package config

import (
	"os"
	"time"
)

// Retry and pacing policy for the Torn API. These are the canonical values;
// tests substitute smaller ones through the Config fields.
const (
	DefaultMaxAttempts    = 5
	DefaultBaseWait       = 60 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultFeedDelay      = 10 * time.Second
)

type Config struct {
	APIKey       string
	APIBaseURL   string
	APIComment   string
	DatabasePath string
	LogFile      string

	// Fetcher policy
	MaxAttempts    int
	BaseWait       time.Duration
	RequestTimeout time.Duration

	// Pause between feeds that hit the network, to stay under the
	// upstream per-key rate limit.
	FeedDelay time.Duration
}

func Load() *Config {
	return &Config{
		APIKey:       getEnv("API_KEY", ""),
		APIBaseURL:   getEnv("TORN_API_URL", "https://api.torn.com"),
		APIComment:   "tornticker",
		DatabasePath: getEnv("DATABASE_PATH", "data/tornticker.db"),
		LogFile:      getEnv("LOG_FILE", "logs/tornticker.log"),

		MaxAttempts:    DefaultMaxAttempts,
		BaseWait:       DefaultBaseWait,
		RequestTimeout: DefaultRequestTimeout,
		FeedDelay:      DefaultFeedDelay,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
