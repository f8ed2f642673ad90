package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Authority (dashboard backend) configuration
	AuthorityBaseURL    string
	AuthorityTimeout    time.Duration
	AuthorityMaxRetries int
	AuthorityRetryBase  time.Duration

	// Import session configuration
	SessionIdleTTL       time.Duration
	SessionSweepInterval time.Duration
	MaxBatchSize         int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		AuthorityBaseURL:     getEnv("AUTHORITY_BASE_URL", "http://localhost:9000"),
		AuthorityTimeout:     getEnvDuration("AUTHORITY_TIMEOUT", 15*time.Second),
		AuthorityMaxRetries:  getEnvInt("AUTHORITY_MAX_RETRIES", 3),
		AuthorityRetryBase:   getEnvDuration("AUTHORITY_RETRY_BASE", 250*time.Millisecond),
		SessionIdleTTL:       getEnvDuration("SESSION_IDLE_TTL", 30*time.Minute),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		MaxBatchSize:         getEnvInt("MAX_BATCH_SIZE", 500),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.AuthorityBaseURL == "" {
		return fmt.Errorf("AUTHORITY_BASE_URL is required")
	}
	if c.AuthorityMaxRetries < 0 {
		return fmt.Errorf("AUTHORITY_MAX_RETRIES must not be negative")
	}
	if c.SessionIdleTTL < time.Minute {
		return fmt.Errorf("SESSION_IDLE_TTL must be at least 1m")
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("MAX_BATCH_SIZE must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
