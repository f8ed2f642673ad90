package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"HTTP_READ_TIMEOUT",
		"AUTHORITY_BASE_URL",
		"AUTHORITY_TIMEOUT",
		"AUTHORITY_MAX_RETRIES",
		"SESSION_IDLE_TTL",
		"SESSION_SWEEP_INTERVAL",
		"MAX_BATCH_SIZE",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
		}
		if cfg.AuthorityBaseURL != "http://localhost:9000" {
			t.Errorf("AuthorityBaseURL = %q", cfg.AuthorityBaseURL)
		}
		if cfg.AuthorityTimeout != 15*time.Second {
			t.Errorf("AuthorityTimeout = %v", cfg.AuthorityTimeout)
		}
		if cfg.AuthorityMaxRetries != 3 {
			t.Errorf("AuthorityMaxRetries = %d", cfg.AuthorityMaxRetries)
		}
		if cfg.SessionIdleTTL != 30*time.Minute {
			t.Errorf("SessionIdleTTL = %v", cfg.SessionIdleTTL)
		}
		if cfg.MaxBatchSize != 500 {
			t.Errorf("MaxBatchSize = %d", cfg.MaxBatchSize)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9999")
		os.Setenv("AUTHORITY_BASE_URL", "https://dashboard.internal")
		os.Setenv("AUTHORITY_TIMEOUT", "5s")
		os.Setenv("SESSION_IDLE_TTL", "10m")
		os.Setenv("MAX_BATCH_SIZE", "50")
		defer func() {
			for _, env := range envVars {
				os.Unsetenv(env)
			}
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9999" {
			t.Errorf("ServerPort = %q, want 9999", cfg.ServerPort)
		}
		if cfg.AuthorityBaseURL != "https://dashboard.internal" {
			t.Errorf("AuthorityBaseURL = %q", cfg.AuthorityBaseURL)
		}
		if cfg.AuthorityTimeout != 5*time.Second {
			t.Errorf("AuthorityTimeout = %v", cfg.AuthorityTimeout)
		}
		if cfg.SessionIdleTTL != 10*time.Minute {
			t.Errorf("SessionIdleTTL = %v", cfg.SessionIdleTTL)
		}
		if cfg.MaxBatchSize != 50 {
			t.Errorf("MaxBatchSize = %d", cfg.MaxBatchSize)
		}
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		os.Setenv("AUTHORITY_TIMEOUT", "not-a-duration")
		defer os.Unsetenv("AUTHORITY_TIMEOUT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.AuthorityTimeout != 15*time.Second {
			t.Errorf("AuthorityTimeout = %v, want default", cfg.AuthorityTimeout)
		}
	})

	t.Run("session TTL below minimum rejected", func(t *testing.T) {
		os.Setenv("SESSION_IDLE_TTL", "10s")
		defer os.Unsetenv("SESSION_IDLE_TTL")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error for short SESSION_IDLE_TTL")
		}
	})

	t.Run("batch size below minimum rejected", func(t *testing.T) {
		os.Setenv("MAX_BATCH_SIZE", "0")
		defer os.Unsetenv("MAX_BATCH_SIZE")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error for MAX_BATCH_SIZE=0")
		}
	})
}
