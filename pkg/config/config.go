// ABOUTME: Configuration management for the hubdev CLI with environment variable support
// ABOUTME: Reads HUBDEV_* variables, optionally seeded from a .env file

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// TransportResty selects the resty-based transport
	TransportResty = "resty"

	// TransportStandard selects the net/http transport
	TransportStandard = "standard"
)

// Config holds all application configuration
type Config struct {
	// Client contains the upstream API client configuration
	Client ClientConfig

	// Log contains logging configuration
	Log LogConfig
}

// ClientConfig holds the upstream API client configuration
type ClientConfig struct {
	// Token is the API token sent with every request
	Token string

	// Debug attaches transport diagnostics to responses
	Debug bool

	// BaseURL overrides the API root
	BaseURL string

	// TimeoutSeconds bounds connection setup and the whole request
	TimeoutSeconds int

	// Transport selects the HTTP transport (resty/standard)
	Transport string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level logged (debug/info/warn/error)
	Level string
}

// Load reads the given .env files (".env" when none are given) into the
// environment, then loads configuration from it. Missing files are ignored;
// variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Client: ClientConfig{
			Token:          os.Getenv("HUBDEV_TOKEN"),
			Debug:          getEnvAsBoolOrDefault("HUBDEV_DEBUG", true),
			BaseURL:        getEnvOrDefault("HUBDEV_BASE_URL", "https://ws.hubdodesenvolvedor.com.br/v2"),
			TimeoutSeconds: getEnvAsIntOrDefault("HUBDEV_TIMEOUT_SECONDS", 180),
			Transport:      strings.ToLower(getEnvOrDefault("HUBDEV_TRANSPORT", TransportResty)),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnvOrDefault("HUBDEV_LOG_LEVEL", "info")),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Client.BaseURL == "" {
		return errors.New("base URL cannot be empty")
	}

	if !strings.HasPrefix(c.Client.BaseURL, "http://") && !strings.HasPrefix(c.Client.BaseURL, "https://") {
		return errors.New("base URL must start with http:// or https://")
	}

	if c.Client.TimeoutSeconds < 1 {
		return errors.New("timeout must be at least 1 second")
	}

	if c.Client.Transport != TransportResty && c.Client.Transport != TransportStandard {
		return errors.New("transport must be 'resty' or 'standard'")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
