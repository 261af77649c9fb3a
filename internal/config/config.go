// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Historical store (Postgres)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Live data provider
	ProviderBaseURL        string
	ProviderAPIKey         string
	ProviderRequestsPerMin int
	ProviderTimeout        time.Duration

	// Engine (pre-aggregated batch source)
	EngineEnabled         bool
	EngineRefreshInterval time.Duration
	EngineMaxBatchAge     time.Duration

	// Cache
	CacheEnabled bool

	// History
	HistoryEnabled      bool
	HistoryWriteTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("HISTORY_DATABASE_URL", ""))
	historyEnabled := envBool("HISTORY_ENABLED", dbURL != "")
	if historyEnabled && dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or HISTORY_DATABASE_URL must be set when HISTORY_ENABLED=true")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ProviderBaseURL:        envOr("LIVE_PROVIDER_BASE_URL", "https://api.themeparks.wiki/v1"),
		ProviderAPIKey:         envOr("LIVE_PROVIDER_API_KEY", ""),
		ProviderRequestsPerMin: envInt("LIVE_PROVIDER_REQUESTS_PER_MINUTE", 60),
		ProviderTimeout:        time.Duration(envInt("LIVE_PROVIDER_TIMEOUT_SECONDS", 10)) * time.Second,

		EngineEnabled:         envBool("ENGINE_ENABLED", true),
		EngineRefreshInterval: time.Duration(envInt("ENGINE_REFRESH_SECONDS", 60)) * time.Second,
		EngineMaxBatchAge:     time.Duration(envInt("ENGINE_MAX_BATCH_AGE_SECONDS", 180)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		HistoryEnabled:      historyEnabled,
		HistoryWriteTimeout: time.Duration(envInt("HISTORY_WRITE_TIMEOUT_SECONDS", 5)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
