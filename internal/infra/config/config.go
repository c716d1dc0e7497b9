package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PreferencesMemory = "memory"
	PreferencesMongo  = "mongo"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                string
	HTTPAddr           string
	ListingAPIURL      string
	ListingAPITimeout  time.Duration
	ListingCacheTTL    time.Duration
	SessionTTL         time.Duration
	SessionCapacity    uint64
	PreferencesBackend string
	MongoURI           string
	MongoDB            string
	KafkaBrokers       []string
	KafkaTopicPrefix   string
	OutboxPollInterval time.Duration
	RetryBackoff       []time.Duration
	CORSOrigins        []string
	SecureCookies      bool
}

// Defaults is the configuration used when the environment is empty.
func Defaults() Config {
	return Config{
		Env:                "dev",
		HTTPAddr:           ":8080",
		ListingAPIURL:      "https://airbnb-clone-backend-mauve.vercel.app/api",
		ListingAPITimeout:  10 * time.Second,
		ListingCacheTTL:    time.Minute,
		SessionTTL:         30 * time.Minute,
		SessionCapacity:    10000,
		PreferencesBackend: PreferencesMemory,
		MongoDB:            "stayfront",
		OutboxPollInterval: 500 * time.Millisecond,
		RetryBackoff:       []time.Duration{time.Second, 5 * time.Second, 30 * time.Second},
		CORSOrigins:        []string{"*"},
	}
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	def := Defaults()
	cfg := Config{
		Env:                getEnv("APP_ENV", def.Env),
		HTTPAddr:           getEnv("HTTP_ADDR", def.HTTPAddr),
		ListingAPIURL:      strings.TrimRight(getEnv("LISTING_API_URL", def.ListingAPIURL), "/"),
		PreferencesBackend: strings.ToLower(getEnv("PREFERENCES_BACKEND", def.PreferencesBackend)),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDB:            getEnv("MONGO_DB", def.MongoDB),
		KafkaBrokers:       splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopicPrefix:   getEnv("KAFKA_TOPIC_PREFIX", ""),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.ListingAPITimeout, err = parseDurationEnv("LISTING_API_TIMEOUT", def.ListingAPITimeout); err != nil {
		return Config{}, err
	}
	if cfg.ListingCacheTTL, err = parseDurationEnv("LISTING_CACHE_TTL", def.ListingCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", def.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.SessionCapacity, err = parseUintEnv("SESSION_CAPACITY", def.SessionCapacity); err != nil {
		return Config{}, err
	}
	if cfg.OutboxPollInterval, err = parseDurationEnv("OUTBOX_POLL_INTERVAL", def.OutboxPollInterval); err != nil {
		return Config{}, err
	}
	if cfg.SecureCookies, err = parseBoolEnv("SECURE_COOKIES", false); err != nil {
		return Config{}, err
	}

	retryStr := getEnv("RETRY_BACKOFF", "1s,5s,30s")
	for _, raw := range strings.Split(retryStr, ",") {
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETRY_BACKOFF component %q: %w", raw, err)
		}
		cfg.RetryBackoff = append(cfg.RetryBackoff, d)
	}

	switch cfg.PreferencesBackend {
	case PreferencesMemory:
	case PreferencesMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required for the mongo preferences backend")
		}
	default:
		return Config{}, fmt.Errorf("invalid PREFERENCES_BACKEND %q", cfg.PreferencesBackend)
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("KAFKA_BROKERS needs MONGO_URI for the outbox")
	}
	if cfg.SessionCapacity == 0 {
		return Config{}, fmt.Errorf("SESSION_CAPACITY must be positive")
	}
	if cfg.ListingAPITimeout <= 0 {
		return Config{}, fmt.Errorf("LISTING_API_TIMEOUT must be positive")
	}
	return cfg, nil
}

// Publishing reports whether events go through the Mongo outbox to Kafka.
func (c Config) Publishing() bool {
	return len(c.KafkaBrokers) > 0 && c.MongoURI != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseUintEnv(key string, def uint64) (uint64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", key, err)
	}
	return n, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
