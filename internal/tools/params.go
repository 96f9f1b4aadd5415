package tools

import (
	"bytes"
	"encoding/json"

	"github.com/marchampson/mcp-openai-server/internal/openai"
)

// ChatCompletionParams are the arguments accepted by the chatCompletion tool
type ChatCompletionParams struct {
	Model       *string              `json:"model,omitempty"`
	Messages    []openai.ChatMessage `json:"messages"`
	Temperature *float64             `json:"temperature,omitempty"`
	MaxTokens   *int                 `json:"max_tokens,omitempty"`
	Stream      *bool                `json:"stream,omitempty"`
}

func (p *ChatCompletionParams) Validate() error {
	if len(p.Messages) == 0 {
		return NewValidationError("Messages array is required and must not be empty")
	}
	// Streaming has no server-side code path; refuse it explicitly instead
	// of accepting and discarding the argument.
	if p.Stream != nil && *p.Stream {
		return NewValidationError("Streaming is not supported")
	}
	return nil
}

// EmbeddingParams are the arguments accepted by the createEmbedding tool.
// Input is held raw because it may be a string or an array of strings.
type EmbeddingParams struct {
	Model *string         `json:"model,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

func (p *EmbeddingParams) Validate() error {
	if len(p.Input) == 0 || bytes.Equal(bytes.TrimSpace(p.Input), []byte("null")) {
		return NewValidationError("Input is required")
	}
	return nil
}

// ParseInput returns the input as a string or a []string
func (p *EmbeddingParams) ParseInput() (any, error) {
	var single string
	if err := json.Unmarshal(p.Input, &single); err == nil {
		return single, nil
	}
	var many []string
	if err := json.Unmarshal(p.Input, &many); err == nil {
		return many, nil
	}
	return nil, NewValidationError("Input must be a string or an array of strings")
}
