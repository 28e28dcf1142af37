package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DiscordToken     string
	DiscordChannelID string
	UpdateInterval   time.Duration
	NWSUserAgent     string
	NWSArea          string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	RequestTimeout time.Duration
	FetchPacing    time.Duration
	MaxChunkLen    int
	RunOnce        bool

	// Kafka bulletin mirror configuration.
	KafkaBrokers       []string
	KafkaMirrorTopic   string
	KafkaMirrorEnabled bool
}

// Load reads configuration from environment variables, applying defaults
// where unset. Required values (the bot token and destination channel) fail
// fast with a descriptive error.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	intervalMin, err := parsePositiveInt("UPDATE_INTERVAL_MIN", 240)
	if err != nil {
		return nil, err
	}

	requestTimeout, err := parseDuration("REQUEST_TIMEOUT", 25*time.Second)
	if err != nil {
		return nil, err
	}

	pacing, err := parseDuration("FETCH_PACING", 150*time.Millisecond)
	if err != nil {
		return nil, err
	}

	maxChunkLen, err := parsePositiveInt("MAX_CHUNK_LEN", 1900)
	if err != nil {
		return nil, err
	}
	if maxChunkLen > 2000 {
		return nil, errors.New("MAX_CHUNK_LEN exceeds Discord's 2000-character message limit")
	}

	runOnce := false
	if v := os.Getenv("RUN_ONCE"); v != "" {
		runOnce, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RUN_ONCE: %q", v)
		}
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}
	mirrorEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_MIRROR_ENABLED"); v != "" {
		mirrorEnabled = v == "true"
	}

	cfg := &Config{
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		UpdateInterval:   time.Duration(intervalMin) * time.Minute,
		NWSUserAgent:     sharedcfg.EnvOrDefault("NWS_USER_AGENT", "UOC-WeatherBot (contact: admin@example.com)"),
		NWSArea:          sharedcfg.EnvOrDefault("NWS_AREA", "UT"),

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		RequestTimeout: requestTimeout,
		FetchPacing:    pacing,
		MaxChunkLen:    maxChunkLen,
		RunOnce:        runOnce,

		KafkaBrokers:       brokers,
		KafkaMirrorTopic:   sharedcfg.EnvOrDefault("KAFKA_MIRROR_TOPIC", "weather-bulletins"),
		KafkaMirrorEnabled: mirrorEnabled,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	// Bot tokens are three dot-separated base64 segments; catching a pasted
	// client secret or OAuth token here beats a cryptic 401 at runtime.
	if strings.Count(c.DiscordToken, ".") != 2 || c.DiscordToken == ".." {
		return errors.New("DISCORD_TOKEN missing or malformed (use the Bot Token)")
	}
	if c.DiscordChannelID == "" {
		return errors.New("DISCORD_CHANNEL_ID is required (destination channel snowflake)")
	}
	for _, r := range c.DiscordChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("DISCORD_CHANNEL_ID must be numeric, got %q", c.DiscordChannelID)
		}
	}
	if c.NWSUserAgent == "" {
		return errors.New("NWS_USER_AGENT must not be empty: the NWS API requires a descriptive client identifier")
	}
	if c.KafkaMirrorEnabled && len(c.KafkaBrokers) == 0 {
		return errors.New("KAFKA_MIRROR_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if c.KafkaMirrorEnabled && c.KafkaMirrorTopic == "" {
		return errors.New("KAFKA_MIRROR_TOPIC must not be empty when the mirror is enabled")
	}
	return nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}
