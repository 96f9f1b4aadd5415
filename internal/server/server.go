// Package server exposes the tool registry over JSON-RPC 2.0, either on
// stdio (Content-Length framing) or HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/marchampson/mcp-openai-server/internal/config"
	"github.com/marchampson/mcp-openai-server/internal/openai"
	"github.com/marchampson/mcp-openai-server/internal/tools"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "mcp-openai-server"
	serverVersion   = "0.1.0"
)

// Handler routes JSON-RPC requests to the tool registry.
// It is shared by the stdio and HTTP transports.
type Handler struct {
	registry *tools.Registry
	toolCtx  *tools.ToolContext
}

// NewHandler creates a handler with all tools registered
func NewHandler(cfg *config.Config, client *openai.Client) *Handler {
	registry := tools.NewRegistry()
	tools.RegisterAllTools(registry)

	toolCtx := tools.NewToolContext(log.Logger, client, cfg.DefaultChatModel, cfg.DefaultEmbeddingModel)

	return &Handler{
		registry: registry,
		toolCtx:  toolCtx,
	}
}

// Handle processes one JSON-RPC request and returns the response, or nil
// for notifications
func (h *Handler) Handle(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	if req.Method == "notifications/initialized" || req.Method == "initialized" {
		return nil
	}

	var (
		result any
		rpcErr *JSONRPCError
	)

	switch {
	case req.JSONRPC != "2.0":
		rpcErr = &JSONRPCError{Code: InvalidRequest, Message: "invalid jsonrpc version"}

	case req.Method == "initialize":
		result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]string{
				"name":    serverName,
				"version": serverVersion,
			},
		}

	case req.Method == "ping":
		result = map[string]any{}

	case req.Method == "tools/list":
		result = map[string]any{"tools": h.registry.List()}

	case req.Method == "tools/call":
		var callReq tools.CallRequest
		if err := json.Unmarshal(req.Params, &callReq); err != nil {
			rpcErr = &JSONRPCError{Code: InvalidParams, Message: "invalid tool call parameters"}
			break
		}
		// Tool failures travel in-band inside the envelope; the envelope is
		// always a JSON-RPC result, never a JSON-RPC error.
		result = h.registry.Call(ctx, h.toolCtx, callReq)

	default:
		rpcErr = &JSONRPCError{Code: MethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}

	if req.IsNotification() {
		return nil
	}

	resp := &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
	}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = mustMarshal(result)
	}
	return resp
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
