// Package config provides configuration management for the application
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// StoreConfig selects the reservation store backend
type StoreConfig struct {
	// Backend is one of "memory", "redis", "postgres"
	Backend string
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for reservations (0 means no expiration)
	ReservationTTL time.Duration
}

// PostgresConfig holds Postgres configuration
type PostgresConfig struct {
	DSN string
}

// SimulatorConfig holds signal drift simulator configuration
type SimulatorConfig struct {
	Enabled bool
	// Interval between ticks
	Interval time.Duration
	// SampleSize is how many rooms a tick may touch
	SampleSize int
	// FlipProbability is the chance a sampled room's signal flips
	FlipProbability float64
	// Seed for the random source; 0 means seed from the clock
	Seed int64
}

// AuthConfig holds identity token configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Config is the full application configuration
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Simulator SimulatorConfig
	Auth      AuthConfig
}

// Load reads configuration from an optional .env file and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env file: %v", err)
	}

	return &Config{
		Server:    GetServerConfig(),
		Store:     GetStoreConfig(),
		Redis:     GetRedisConfig(),
		Postgres:  GetPostgresConfig(),
		Simulator: GetSimulatorConfig(),
		Auth:      GetAuthConfig(),
	}
}

// GetServerConfig loads HTTP server configuration from environment variables
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnv("PORT", "8080"),
	}
}

// GetStoreConfig loads store selection from environment variables
func GetStoreConfig() StoreConfig {
	return StoreConfig{
		Backend: getEnv("STORE_BACKEND", "memory"),
	}
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours)
	ttlHours := getEnvInt("REDIS_RESERVATION_TTL_HOURS", 168) // Default 7 days

	return RedisConfig{
		URI:            getEnv("REDIS_URI", ""),
		Host:           getEnv("REDIS_HOST", "localhost"),
		Port:           getEnv("REDIS_PORT", "6379"),
		Username:       getEnv("REDIS_USERNAME", ""),
		Password:       getEnv("REDIS_PASSWORD", ""),
		DB:             getEnvInt("REDIS_DB", 0),
		KeyPrefix:      getEnv("REDIS_KEY_PREFIX", "roomsense:"),
		ReservationTTL: time.Duration(ttlHours) * time.Hour,
	}
}

// GetPostgresConfig loads Postgres configuration from environment variables
func GetPostgresConfig() PostgresConfig {
	return PostgresConfig{
		DSN: getEnv("POSTGRES_DSN", ""),
	}
}

// GetSimulatorConfig loads simulator configuration from environment variables
func GetSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		Enabled:         getEnvBool("SIMULATOR_ENABLED", true),
		Interval:        getEnvDuration("SIMULATOR_INTERVAL", 20*time.Second),
		SampleSize:      getEnvInt("SIMULATOR_SAMPLE_SIZE", 5),
		FlipProbability: getEnvFloat("SIMULATOR_FLIP_PROBABILITY", 0.4),
		Seed:            int64(getEnvInt("SIMULATOR_SEED", 0)),
	}
}

// GetAuthConfig loads identity token configuration from environment variables
func GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret: getEnv("JWT_SECRET", "roomsense-dev-secret"),
		TokenTTL:  getEnvDuration("JWT_TOKEN_TTL", 12*time.Hour),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvInt retrieves an integer environment variable
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvFloat retrieves a float environment variable
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getEnvDuration retrieves a duration environment variable (e.g. "20s", "1h")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
