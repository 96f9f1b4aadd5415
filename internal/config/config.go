package config

// Config holds all configuration for the MCP OpenAI server
type Config struct {
	// APIKey is the OpenAI API key forwarded as a bearer token on every upstream call
	APIKey string `json:"apiKey"`

	// APIBaseURL is the base URL of the OpenAI-compatible API
	APIBaseURL string `json:"apiBaseUrl"`

	// DefaultChatModel is used when a chatCompletion call omits the model argument
	DefaultChatModel string `json:"defaultChatModel"`

	// DefaultEmbeddingModel is used when a createEmbedding call omits the model argument
	DefaultEmbeddingModel string `json:"defaultEmbeddingModel"`

	// HTTPAddr enables the HTTP transport when non-empty (e.g. ":8080")
	HTTPAddr string `json:"httpAddr,omitempty"`

	// ServerToken, when set, gates the HTTP transport behind a static bearer token
	ServerToken string `json:"serverToken,omitempty"`

	Debug    bool   `json:"debug"`
	LogLevel string `json:"logLevel"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:            "https://api.openai.com/v1",
		DefaultChatModel:      "gpt-3.5-turbo",
		DefaultEmbeddingModel: "text-embedding-ada-002",
		Debug:                 false,
		LogLevel:              "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.APIBaseURL == "" {
		return ErrMissingAPIBaseURL
	}
	return nil
}
