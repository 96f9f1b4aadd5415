package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load loads configuration from a file path and applies environment variable overrides.
// Validation is deferred so CLI flag overrides can be applied first.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		fileConfig, err := loadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = fileConfig
	}

	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// LoadFromEnvironment creates a configuration using only environment variables.
// This is useful for containerized deployments where files may not be available.
func LoadFromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvironmentOverrides(cfg)
	return cfg, nil
}

// loadFromFile loads configuration from a JSON file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigFileNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
	}

	return cfg, nil
}

// applyEnvironmentOverrides applies configuration from environment variables
func applyEnvironmentOverrides(cfg *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.APIKey = apiKey
	}

	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.APIBaseURL = strings.TrimRight(baseURL, "/")
	}

	if model := os.Getenv("MCP_DEFAULT_MODEL"); model != "" {
		cfg.DefaultChatModel = model
	}

	if model := os.Getenv("MCP_DEFAULT_EMBEDDING_MODEL"); model != "" {
		cfg.DefaultEmbeddingModel = model
	}

	if addr := os.Getenv("MCP_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	if token := os.Getenv("MCP_SERVER_TOKEN"); token != "" {
		cfg.ServerToken = token
	}

	if debug := os.Getenv("MCP_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}

	if logLevel := os.Getenv("MCP_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
