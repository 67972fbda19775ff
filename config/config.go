package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"debt-projection/repository"
)

const (
	BackendDir   = "dir"
	BackendRedis = "redis"
)

// Config is the service configuration.
type Config struct {
	Port           string
	StorageBackend string
	DataDir        string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ContainerName  string
	Blobs          repository.BlobNames

	RateLimitCapacity int
	RateLimitWindow   time.Duration
	LoadTimeout       time.Duration
	LogLevel          string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:              getenv("PORT", "8080"),
		StorageBackend:    strings.ToLower(getenv("STORAGE_BACKEND", BackendDir)),
		DataDir:           getenv("DATA_DIR", "data"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		ContainerName:     getenv("CONTAINER_NAME", "files"),
		RateLimitCapacity: 60,
		RateLimitWindow:   time.Minute,
		LoadTimeout:       30 * time.Second,
		LogLevel:          strings.ToLower(getenv("LOG_LEVEL", "info")),
	}

	defaults := repository.DefaultBlobNames()
	config.Blobs = repository.BlobNames{
		Loans:    getenv("LOANS_BLOB", defaults.Loans),
		Cards:    getenv("CARDS_BLOB", defaults.Cards),
		Payments: getenv("PAYMENTS_BLOB", defaults.Payments),
		Credit:   getenv("CREDIT_BLOB", defaults.Credit),
		Cashflow: getenv("CASHFLOW_BLOB", defaults.Cashflow),
		Offers:   getenv("OFFERS_BLOB", defaults.Offers),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB has invalid format: %v", err)
		}
		config.RedisDB = parsed
	}

	if raw := os.Getenv("RATE_LIMIT_CAPACITY"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("RATE_LIMIT_CAPACITY must be a non-negative integer, got %q", raw)
		}
		config.RateLimitCapacity = parsed
	}

	if raw := os.Getenv("RATE_LIMIT_WINDOW"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration, got %q", raw)
		}
		config.RateLimitWindow = parsed
	}

	if raw := os.Getenv("LOAD_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("LOAD_TIMEOUT must be a positive duration, got %q", raw)
		}
		config.LoadTimeout = parsed
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendDir:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR environment variable is required for the dir backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR environment variable is required for the redis backend")
		}
		if c.ContainerName == "" {
			return fmt.Errorf("CONTAINER_NAME environment variable is required for the redis backend")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendDir, BackendRedis, c.StorageBackend)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
