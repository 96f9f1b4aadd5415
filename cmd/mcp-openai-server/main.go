package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marchampson/mcp-openai-server/internal/config"
	"github.com/marchampson/mcp-openai-server/internal/desktop"
	"github.com/marchampson/mcp-openai-server/internal/openai"
	"github.com/marchampson/mcp-openai-server/internal/server"
)

const (
	version    = "0.1.0"
	serverName = "openai"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file (JSON)")
	showVersion = flag.Bool("version", false, "Show version information")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	httpAddr    = flag.String("http", "", "Serve JSON-RPC over HTTP on this address instead of stdio")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("mcp-openai-server version %s\n", version)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	switch flag.Arg(0) {
	case "", "run":
		if err := run(cfg); err != nil {
			log.Error().Err(err).Msg("Server failed")
			os.Exit(1)
		}
	case "init":
		if err := runInit(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register with Claude Desktop: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s (expected run or init)\n", flag.Arg(0))
		os.Exit(1)
	}
}

// loadConfig loads the configuration from file and environment
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnvironment()
	}
	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides before validation
	if *debug {
		cfg.Debug = true
		if *logLevel == "info" {
			cfg.LogLevel = "debug"
		}
	}
	if *logLevel != "info" {
		cfg.LogLevel = *logLevel
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// setupLogging configures the global logger. Stdout carries the protocol in
// stdio mode, so logs always go to stderr.
func setupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(parseLogLevel(cfg.LogLevel))

	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Caller().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger()
	}
}

// parseLogLevel converts a string log level to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// run serves JSON-RPC until the process is signalled
func run(cfg *config.Config) error {
	log.Info().
		Str("version", version).
		Str("apiBaseUrl", cfg.APIBaseURL).
		Str("defaultChatModel", cfg.DefaultChatModel).
		Bool("debug", cfg.Debug).
		Msg("Starting MCP OpenAI server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	client := openai.New(cfg.APIBaseURL, cfg.APIKey, nil)
	handler := server.NewHandler(cfg, client)

	if cfg.HTTPAddr != "" {
		return runHTTP(ctx, cfg, handler)
	}

	log.Info().Msg("Serving on stdio")
	return server.NewStdioServer(handler).Serve(ctx)
}

func runHTTP(ctx context.Context, cfg *config.Config, handler *server.Handler) error {
	srv := server.NewHTTPServer(cfg, handler)

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("Serving on HTTP")
		errChan <- srv.Start(cfg.HTTPAddr)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}

// runInit writes this binary into the Claude Desktop configuration so the
// client can launch it over stdio
func runInit(cfg *config.Config) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	path := desktop.DefaultConfigPath()
	if path == "" {
		return fmt.Errorf("could not determine Claude Desktop config location")
	}

	env := map[string]string{"OPENAI_API_KEY": cfg.APIKey}
	if cfg.APIBaseURL != config.DefaultConfig().APIBaseURL {
		env["OPENAI_BASE_URL"] = cfg.APIBaseURL
	}
	if cfg.DefaultChatModel != config.DefaultConfig().DefaultChatModel {
		env["MCP_DEFAULT_MODEL"] = cfg.DefaultChatModel
	}
	if cfg.DefaultEmbeddingModel != config.DefaultConfig().DefaultEmbeddingModel {
		env["MCP_DEFAULT_EMBEDDING_MODEL"] = cfg.DefaultEmbeddingModel
	}

	entry := desktop.ServerEntry{Command: exe, Env: env}
	if err := desktop.Register(path, serverName, entry); err != nil {
		return err
	}

	fmt.Printf("Registered %q in %s\n", serverName, path)
	fmt.Println("Restart Claude Desktop to pick up the new server.")
	return nil
}
