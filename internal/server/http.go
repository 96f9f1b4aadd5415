package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/marchampson/mcp-openai-server/internal/config"
)

// HTTPServer serves JSON-RPC requests over HTTP
type HTTPServer struct {
	cfg        *config.Config
	handler    *Handler
	router     *chi.Mux
	httpServer *http.Server
}

// NewHTTPServer constructs an HTTP server with middleware and routes configured
func NewHTTPServer(cfg *config.Config, handler *Handler) *HTTPServer {
	s := &HTTPServer{
		cfg:     cfg,
		handler: handler,
		router:  chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	s.router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/mcp", s.handleRPC)
	})

	return s
}

// Router exposes the root HTTP handler (for tests)
func (s *HTTPServer) Router() http.Handler { return s.router }

// Start listens on the given address until the server is shut down
func (s *HTTPServer) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
		// ReadTimeout bounds client slowness; tool invocations themselves
		// carry no deadline, so WriteTimeout stays unset.
		ReadTimeout: 30 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("starting HTTP transport")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// auth gates /mcp behind a static bearer token when one is configured
func (s *HTTPServer) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.ServerToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.ServerToken {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, nil, ParseError, "invalid JSON")
		return
	}

	resp := s.handler.Handle(r.Context(), &req)
	if resp == nil {
		// Notification: nothing to send back
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// sendError writes a JSON-RPC error; transport status stays 200 per JSON-RPC
func (s *HTTPServer) sendError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(&JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}
