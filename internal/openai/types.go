package openai

import "encoding/json"

// Model is a single entry from the models listing endpoint
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object,omitempty"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by,omitempty"`
}

// ModelList is the top-level shape returned by GET /models
type ModelList struct {
	Data []Model `json:"data"`
}

// ChatMessage is one turn of a chat conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body for POST /chat/completions.
// Stream is always serialized so the upstream never infers a default.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// ChatChoiceMessage is the assistant message inside a completion choice.
// Content is a pointer so an absent field can be told apart from "".
type ChatChoiceMessage struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content"`
}

// ChatChoice is one completion alternative
type ChatChoice struct {
	Message      *ChatChoiceMessage `json:"message"`
	FinishReason string             `json:"finish_reason"`
}

// ChatCompletionResponse is the decoded body of a successful completion.
// Usage is kept as raw JSON so callers can echo the upstream token
// accounting verbatim.
type ChatCompletionResponse struct {
	Model   string          `json:"model"`
	Choices []ChatChoice    `json:"choices"`
	Usage   json.RawMessage `json:"usage,omitempty"`
}

// EmbeddingRequest is the body for POST /embeddings.
// Input may be a single string or an array of strings.
type EmbeddingRequest struct {
	Model string `json:"model"`
	Input any    `json:"input"`
}

// EmbeddingData holds one embedding vector
type EmbeddingData struct {
	Embedding []float64 `json:"embedding"`
}

// EmbeddingResponse is the decoded body of a successful embeddings call
type EmbeddingResponse struct {
	Model string          `json:"model"`
	Data  []EmbeddingData `json:"data"`
	Usage json.RawMessage `json:"usage,omitempty"`
}
