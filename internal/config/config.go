package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gathr/backend/internal/i18n"
)

const (
	AppName    = "Gathr"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	LogLevel  string
	LogFormat string
	NodeID    int64

	// Locales is the configured locale set. Targets for an entity are
	// every member except its original language.
	Locales []string

	// Guard limits.
	MaxTextLength int
	MaxRetries    int
	Cooldown      time.Duration

	// Translator port.
	TranslateTimeout time.Duration
	RateLimit        int

	// Background sweep.
	SweepInterval time.Duration
	PendingTTL    time.Duration
}

func Load() Config {
	addr := envString("GATHR_ADDR", ":8080")
	dataDir := envString("GATHR_DATA_DIR", "./data")
	path := os.Getenv("GATHR_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "gathr.db")
	}

	locales := i18n.Locales
	if raw := os.Getenv("GATHR_LOCALES"); raw != "" {
		locales = splitLocales(raw)
	}

	return Config{
		Addr:             addr,
		DBPath:           filepath.Clean(path),
		DataDir:          filepath.Clean(dataDir),
		LogLevel:         envString("GATHR_LOG_LEVEL", "info"),
		LogFormat:        envString("GATHR_LOG_FORMAT", "text"),
		NodeID:           envInt64("GATHR_NODE_ID", 1),
		Locales:          locales,
		MaxTextLength:    envInt("GATHR_MAX_TEXT_LENGTH", 1000),
		MaxRetries:       envInt("GATHR_MAX_RETRIES", 3),
		Cooldown:         envDuration("GATHR_COOLDOWN_MS", 60*time.Second),
		TranslateTimeout: envDuration("GATHR_TRANSLATE_TIMEOUT_MS", 30*time.Second),
		RateLimit:        envInt("GATHR_RATE_LIMIT", 10),
		SweepInterval:    envDuration("GATHR_SWEEP_INTERVAL_MS", 5*time.Minute),
		PendingTTL:       envDuration("GATHR_PENDING_TTL_MS", 10*time.Minute),
	}
}

func splitLocales(raw string) []string {
	parts := strings.Split(raw, ",")
	locales := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			locales = append(locales, tag)
		}
	}
	if len(locales) == 0 {
		return i18n.Locales
	}
	return locales
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
