package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. Every value has a safe default so the service runs
// with zero configuration.
type Config struct {
	Port            string        // HTTP port to listen on
	LogLevel        string        // zap level name (debug, info, warn, error)
	Greeting        string        // name used in the root greeting payload
	ShutdownTimeout time.Duration // grace period for in-flight requests on shutdown
}

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultGreeting        = "DevOps Learner"
	defaultShutdownTimeout = 10 * time.Second
)

// Load reads configuration from the environment, first loading a .env file
// when one is present. A missing or malformed variable falls back to its
// default rather than failing: the sample service must start unconfigured.
func Load() Config {
	// Ignore the error: a missing .env file is the normal case outside
	// local development.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        getEnv("LOG_LEVEL", defaultLogLevel),
		Greeting:        getEnv("GREETING", defaultGreeting),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getDuration parses the variable as a Go duration ("10s") or, for
// convenience, a bare number of seconds ("10").
func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
