package tools

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Registry manages tool definitions and dispatches tool calls
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]*toolEntry
	ordering []string // Preserve registration order for consistent tools/list
}

type toolEntry struct {
	def     ToolDefinition
	handler Handler
}

// NewRegistry creates an empty tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*toolEntry),
	}
}

// Register adds a tool definition and handler to the registry
func (r *Registry) Register(def ToolDefinition, handler Handler) error {
	if def.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tool %s already registered", def.Name)
	}

	r.tools[def.Name] = &toolEntry{
		def:     def,
		handler: handler,
	}
	r.ordering = append(r.ordering, def.Name)

	return nil
}

// MustRegister registers a tool or panics on error (for init-time registration)
func (r *Registry) MustRegister(def ToolDefinition, handler Handler) {
	if err := r.Register(def, handler); err != nil {
		panic(err)
	}
}

// List returns all registered tool descriptors in declaration order.
// The order is stable across calls within a process lifetime.
func (r *Registry) List() []ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]ToolDescriptor, 0, len(r.ordering))
	for _, name := range r.ordering {
		entry := r.tools[name]
		descriptors = append(descriptors, ToolDescriptor{
			Name:        entry.def.Name,
			Description: entry.def.Description,
			InputSchema: entry.def.InputSchema,
		})
	}

	return descriptors
}

// Call executes a tool by name. It always returns a response envelope:
// unknown tool names, handler errors, and handler panics are all reported
// in-band with IsError set, never as a raw error to the transport.
func (r *Registry) Call(ctx context.Context, toolCtx *ToolContext, req CallRequest) (result *CallResult) {
	r.mu.RLock()
	entry, exists := r.tools[req.Name]
	r.mu.RUnlock()

	if !exists {
		return ErrorResult(fmt.Sprintf("Unknown tool: %s", req.Name))
	}

	correlationID := uuid.New().String()
	logger := log.With().
		Str("tool", req.Name).
		Str("correlationId", correlationID).
		Logger()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("tool handler panicked")
			result = ErrorResult(fmt.Sprintf("Error: %v", rec))
		}
	}()

	start := time.Now()
	res, err := entry.handler(ctx, toolCtx, req.Arguments)
	if err != nil {
		logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("tool handler failed")
		return ErrorResult("Error: " + err.Error())
	}
	if res == nil {
		logger.Error().Dur("duration", time.Since(start)).Msg("tool handler returned no result")
		return ErrorResult("Error: tool returned no result")
	}

	logger.Debug().
		Bool("isError", res.IsError).
		Dur("duration", time.Since(start)).
		Msg("tool call completed")
	return res
}

// Get retrieves a tool definition by name (for testing)
func (r *Registry) Get(name string) (*ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.tools[name]
	if !exists {
		return nil, false
	}

	return &entry.def, true
}
