package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var configEnvVars = []string{
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "MCP_DEFAULT_MODEL",
	"MCP_DEFAULT_EMBEDDING_MODEL", "MCP_HTTP_ADDR", "MCP_SERVER_TOKEN",
	"MCP_DEBUG", "MCP_LOG_LEVEL",
}

func TestLoadFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		checks  func(*testing.T, *Config)
	}{
		{
			name: "api key and base url from env",
			envVars: map[string]string{
				"OPENAI_API_KEY":  "sk-test",
				"OPENAI_BASE_URL": "http://localhost:1234/v1/",
			},
			checks: func(t *testing.T, cfg *Config) {
				if cfg.APIKey != "sk-test" {
					t.Errorf("expected APIKey=sk-test, got %s", cfg.APIKey)
				}
				// Trailing slash is trimmed so the client can join paths
				if cfg.APIBaseURL != "http://localhost:1234/v1" {
					t.Errorf("expected trimmed base URL, got %s", cfg.APIBaseURL)
				}
			},
		},
		{
			name:    "default values when no env set",
			envVars: map[string]string{},
			checks: func(t *testing.T, cfg *Config) {
				if cfg.APIBaseURL != "https://api.openai.com/v1" {
					t.Errorf("expected default APIBaseURL, got %s", cfg.APIBaseURL)
				}
				if cfg.DefaultChatModel != "gpt-3.5-turbo" {
					t.Errorf("expected default chat model, got %s", cfg.DefaultChatModel)
				}
				if cfg.DefaultEmbeddingModel != "text-embedding-ada-002" {
					t.Errorf("expected default embedding model, got %s", cfg.DefaultEmbeddingModel)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("expected default LogLevel=info, got %s", cfg.LogLevel)
				}
			},
		},
		{
			name: "debug and log level overrides",
			envVars: map[string]string{
				"MCP_DEBUG":     "1",
				"MCP_LOG_LEVEL": "debug",
			},
			checks: func(t *testing.T, cfg *Config) {
				if !cfg.Debug {
					t.Error("expected Debug=true")
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("expected LogLevel=debug, got %s", cfg.LogLevel)
				}
			},
		},
		{
			name: "http transport settings",
			envVars: map[string]string{
				"MCP_HTTP_ADDR":    ":8080",
				"MCP_SERVER_TOKEN": "secret",
			},
			checks: func(t *testing.T, cfg *Config) {
				if cfg.HTTPAddr != ":8080" {
					t.Errorf("expected HTTPAddr=:8080, got %s", cfg.HTTPAddr)
				}
				if cfg.ServerToken != "secret" {
					t.Errorf("expected ServerToken=secret, got %s", cfg.ServerToken)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range configEnvVars {
				os.Unsetenv(key)
			}
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer func() {
				for key := range tt.envVars {
					os.Unsetenv(key)
				}
			}()

			cfg, err := LoadFromEnvironment()
			if err != nil {
				t.Fatalf("LoadFromEnvironment() error = %v", err)
			}
			if tt.checks != nil {
				tt.checks(t, cfg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	for _, key := range configEnvVars {
		os.Unsetenv(key)
	}

	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "test_config.json")
	testConfigJSON := `{
		"apiKey": "sk-from-file",
		"apiBaseUrl": "https://proxy.example.com/v1",
		"defaultChatModel": "gpt-4",
		"logLevel": "warn"
	}`
	if err := os.WriteFile(testConfigPath, []byte(testConfigJSON), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(testConfigPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIKey != "sk-from-file" {
		t.Errorf("expected APIKey from file, got %s", cfg.APIKey)
	}
	if cfg.APIBaseURL != "https://proxy.example.com/v1" {
		t.Errorf("expected APIBaseURL from file, got %s", cfg.APIBaseURL)
	}
	if cfg.DefaultChatModel != "gpt-4" {
		t.Errorf("expected DefaultChatModel=gpt-4, got %s", cfg.DefaultChatModel)
	}
	// Field absent from file keeps its default
	if cfg.DefaultEmbeddingModel != "text-embedding-ada-002" {
		t.Errorf("expected default embedding model, got %s", cfg.DefaultEmbeddingModel)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LogLevel=warn, got %s", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	for _, key := range configEnvVars {
		os.Unsetenv(key)
	}

	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(testConfigPath, []byte(`{"apiKey":"sk-file"}`), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	os.Setenv("OPENAI_API_KEY", "sk-env")
	defer os.Unsetenv("OPENAI_API_KEY")

	cfg, err := Load(testConfigPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("expected env override sk-env, got %s", cfg.APIKey)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	if !errors.Is(err, ErrConfigFileNotFound) {
		t.Errorf("expected ErrConfigFileNotFound, got %v", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(testConfigPath, []byte(`{not json`), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(testConfigPath)
	if !errors.Is(err, ErrInvalidConfigFormat) {
		t.Errorf("expected ErrInvalidConfigFormat, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{APIKey: "sk-x", APIBaseURL: "https://api.openai.com/v1"},
		},
		{
			name:    "missing api key",
			cfg:     Config{APIBaseURL: "https://api.openai.com/v1"},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "missing base url",
			cfg:     Config{APIKey: "sk-x"},
			wantErr: ErrMissingAPIBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
