package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_ADDR", "LISTING_API_URL", "LISTING_API_TIMEOUT", "PREFERENCES_BACKEND", "MONGO_URI", "KAFKA_BROKERS", "RETRY_BACKOFF", "CORS_ORIGINS", "SECURE_COOKIES", "SESSION_CAPACITY"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListingAPITimeout != 10*time.Second || cfg.PreferencesBackend != PreferencesMemory {
		t.Fatalf("cfg=%+v", cfg)
	}
	if len(cfg.RetryBackoff) != 3 || cfg.Publishing() || cfg.SessionCapacity != 10000 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTING_API_URL", "http://api.local/")
	t.Setenv("LISTING_API_TIMEOUT", "2s")
	t.Setenv("PREFERENCES_BACKEND", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("SECURE_COOKIES", "yes")
	t.Setenv("SESSION_CAPACITY", "250")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListingAPIURL != "http://api.local" || cfg.ListingAPITimeout != 2*time.Second {
		t.Fatalf("cfg=%+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" || !cfg.Publishing() || !cfg.SecureCookies || cfg.SessionCapacity != 250 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"LISTING_API_TIMEOUT": "soon",
		"SECURE_COOKIES":      "maybe",
		"PREFERENCES_BACKEND": "redis",
		"RETRY_BACKOFF":       "1s,x",
		"SESSION_CAPACITY":    "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("MONGO_URI", "")
			t.Setenv("KAFKA_BROKERS", "")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%q accepted", key, value)
			}
		})
	}
}
