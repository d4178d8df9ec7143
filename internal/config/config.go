// Package config provides configuration management for the Studi API.
// It loads settings from environment variables with the STUDI_ prefix
// and provides sensible defaults for all configuration options.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration settings for the Studi API server.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Docs   DocsConfig
	Agent  AgentConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int    // Server port (default: 8000)
	Host string // Server host (default: 0.0.0.0)
}

// CORSConfig contains cross-origin settings for the browser frontend.
type CORSConfig struct {
	AllowedOrigins []string // Origins allowed to call the API with credentials
}

// DocsConfig contains documentation catalog configuration.
type DocsConfig struct {
	CatalogPath string // Optional YAML file overriding the built-in catalog
}

// AgentConfig contains the simulated latency of the agent facade.
// The delays stand in for real agent computation and are configurable so
// tests do not have to wait for them.
type AgentConfig struct {
	QueryDelay time.Duration // Delay before a query response (default: 1s)
	PlanDelay  time.Duration // Delay before a plan response (default: 1.5s)
}

// defaultOrigins are the frontend origins allowed when STUDI_CORS_ORIGINS
// is unset.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://studi.app",
}

// LoadConfig loads configuration from environment variables with sensible
// defaults. All environment variables use the STUDI_ prefix.
func LoadConfig() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port: getEnvInt("STUDI_PORT", 8000),
			Host: getEnv("STUDI_HOST", "0.0.0.0"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("STUDI_CORS_ORIGINS", defaultOrigins),
		},
		Docs: DocsConfig{
			CatalogPath: getEnv("STUDI_DOCS_CATALOG", ""),
		},
		Agent: AgentConfig{
			QueryDelay: getEnvMillis("STUDI_AGENT_QUERY_DELAY_MS", 1000),
			PlanDelay:  getEnvMillis("STUDI_AGENT_PLAN_DELAY_MS", 1500),
		},
	}, nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
// value. If the environment variable exists but cannot be parsed as an
// integer, it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvMillis retrieves an integer environment variable interpreted as
// milliseconds, or returns the default (also in milliseconds).
func getEnvMillis(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvInt(key, defaultMillis)) * time.Millisecond
}

// getEnvList retrieves a comma-separated environment variable as a slice,
// or returns the default value. Entries are trimmed and empty entries
// dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, entry := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
