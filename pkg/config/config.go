package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	ListenAddr string // REST server listen address
	DBPath     string // pebble directory for stored mazes
	LogLevel   string // debug, info, warn, error
	LogJSON    bool   // JSON structured logs instead of text
	Workers    int    // worker goroutines for experiment runs
}

// Load reads a .env file if present and fills Config from the environment.
// Unset variables fall back to defaults; flags in cmd/ may override the result.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		ListenAddr: getEnvWithDefault("LABYRINTHX_LISTEN_ADDR", ":5000"),
		DBPath:     getEnvWithDefault("LABYRINTHX_DB_PATH", "labyrinthxDB"),
		LogLevel:   getEnvWithDefault("LABYRINTHX_LOG_LEVEL", "info"),
		LogJSON:    getEnvAsBoolWithDefault("LABYRINTHX_LOG_JSON", false),
		Workers:    getEnvAsIntWithDefault("LABYRINTHX_WORKERS", 4),
	}
}

// SlogLevel level slog dari LogLevel, nilai tidak dikenal jadi info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a boolean, using %t: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
