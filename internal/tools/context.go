package tools

import (
	"github.com/rs/zerolog"

	"github.com/marchampson/mcp-openai-server/internal/openai"
)

// ToolContext carries process-wide collaborators into tool handlers.
// Handlers read configuration from here rather than from ambient
// environment lookups.
type ToolContext struct {
	Logger                zerolog.Logger
	Client                *openai.Client
	DefaultChatModel      string
	DefaultEmbeddingModel string
}

// NewToolContext creates a tool context for an invocation
func NewToolContext(logger zerolog.Logger, client *openai.Client, chatModel, embeddingModel string) *ToolContext {
	return &ToolContext{
		Logger:                logger,
		Client:                client,
		DefaultChatModel:      chatModel,
		DefaultEmbeddingModel: embeddingModel,
	}
}
