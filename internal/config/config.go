// Package config handles configuration loading for the cycling API.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// minSecretLength is the minimum accepted length for the JWT signing key.
const minSecretLength = 32

// Config holds all configuration for the cycling API.
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	JWTSecret       string
	JWTAlgorithm    string
	JWTAccessExpiry time.Duration
	StatsCacheTTL   time.Duration
	AllowedOrigins  []string
	Port            string
	Environment     string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first, matching the original deployment layout.
// A missing or undersized JWT secret aborts startup: issuing tokens with a
// weak key is not a recoverable condition.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          getEnvRequired("DB_HOST"),
		DBPort:          getEnvRequired("DB_PORT"),
		DBUser:          getEnvRequired("DB_USER"),
		DBPassword:      getEnvRequired("DB_PASSWORD"),
		DBName:          getEnvRequired("DB_NAME"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnvRequired("JWT_SECRET"),
		JWTAlgorithm:    getEnv("JWT_ALGORITHM", "HS256"),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "30m"), 30*time.Minute),
		StatsCacheTTL:   parseDuration(getEnv("STATS_CACHE_TTL", "60s"), 60*time.Second),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8501")),
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}

	if len(cfg.JWTSecret) < minSecretLength {
		log.Fatalf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
