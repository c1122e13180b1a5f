package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	PassChar        rune   // Default character for passes
	WallChar        rune   // Default character for walls
	MaxBytes        int64  // Grid allocation ceiling per maze
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr       string // Address of the Redis cache, empty disables caching
	RedisPassword   string // Password for Redis
	CacheTTLSeconds int    // TTL of cached mazes
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		PassChar:        mustGetEnvAsChar("MAZE_PASS_CHAR", ' '),
		WallChar:        mustGetEnvAsChar("MAZE_WALL_CHAR", '#'),
		MaxBytes:        int64(getEnvAsIntWithDefault("MAZE_MAX_BYTES", 256<<20)),
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
	}
}

// ParseChar converts a single-character string into a rune.
func ParseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("invalid character %q", s)
	}
	return r, nil
}

// mustGetEnvAsChar retrieves an environment variable as a single character or logs a fatal error if it is not one.
func mustGetEnvAsChar(key string, defaultValue rune) rune {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	r, err := ParseChar(value)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s: %v", key, err)
	}
	return r
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
