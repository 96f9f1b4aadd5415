package tools

import (
	"context"
	"encoding/json"
)

// ToolDefinition describes a tool with its name, description, and JSON input schema
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Handler processes a tool invocation with the given context and raw arguments.
// Handlers report validation and upstream failures in-band through the returned
// envelope; a non-nil error means an unexpected fault.
type Handler func(context.Context, *ToolContext, json.RawMessage) (*CallResult, error)

// ToolDescriptor is returned by tools/list (MCP specification format)
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// CallRequest represents a tools/call JSON-RPC request
type CallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallResult is the uniform envelope returned from every invocation,
// success or failure. Metadata is always a JSON object, never null: on
// success it carries structured side-channel data for programmatic use,
// on failure it may be empty.
type CallResult struct {
	Content  []ContentBlock `json:"content"`
	Metadata map[string]any `json:"metadata"`
	IsError  bool           `json:"isError,omitempty"`
}

// ContentBlock represents a piece of tool output
type ContentBlock struct {
	Type string `json:"type"` // only "text" is produced today
	Text string `json:"text,omitempty"`
}

// TextResult builds a success envelope with a single text block
func TextResult(text string, metadata map[string]any) *CallResult {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &CallResult{
		Content:  []ContentBlock{{Type: "text", Text: text}},
		Metadata: metadata,
	}
}

// ErrorResult builds an error envelope with a single human-readable text block
func ErrorResult(text string) *CallResult {
	return &CallResult{
		Content:  []ContentBlock{{Type: "text", Text: text}},
		Metadata: map[string]any{},
		IsError:  true,
	}
}
