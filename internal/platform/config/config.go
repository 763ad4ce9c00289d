package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the frogger server.
type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	MaxLaneLength   int
	ShutdownTimeout time.Duration
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and then builds a Config from it. A missing .env file
// is not an error; its absence is reported through envErr so callers can
// log it once a logger exists.
func Load(paths ...string) (cfg Config, envErr error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	envErr = godotenv.Load(paths...)

	return Config{
		Port:            GetEnv("PORT", "8080"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		LogFormat:       GetEnv("LOG_FORMAT", "json"),
		MaxLaneLength:   GetEnvInt("MAX_LANE_LENGTH", 64),
		ShutdownTimeout: time.Duration(GetEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}, envErr
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// GetEnv returns the value of the environment variable named by key, or fallback
// if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by key,
// or fallback if the variable is unset, empty, or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}
