package main

import (
	"context"
	"errors"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/technicalerikchan/flight-mcp-server/amadeus"
	"github.com/technicalerikchan/flight-mcp-server/config"
	"github.com/technicalerikchan/flight-mcp-server/flight"
	"github.com/technicalerikchan/flight-mcp-server/log"
	"github.com/technicalerikchan/flight-mcp-server/tools"
)

const (
	serverName    = "flight-mcp-server"
	serverVersion = "1.0.0"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Init("info")
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	// 1. Initialize logging
	log.Init(cfg.Log.Level)

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Infof(context.Background(), "Program terminated externally. Exiting...")
		cancel()
	}()

	// 2. Pick the data source once at startup: live Amadeus when credentials
	// are configured, sample data otherwise.
	source, live := newSource(ctx, cfg)

	// 3. Build the MCP server and serve on stdio
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.NewToolset(source, live).Register(s)

	log.Infof(ctx, "Starting %s v%s on stdio", serverName, serverVersion)

	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf(ctx, "Server failed: %v", err)
	}
}

// newSource selects the flight data source. Missing credentials are not an
// error: the server silently runs on sample data.
func newSource(ctx context.Context, cfg *config.Config) (flight.Source, bool) {
	if !cfg.Amadeus.HasCredentials() {
		log.Warnf(ctx, "Amadeus credentials not configured, using sample data")
		return flight.NewMockSource(), false
	}

	client := amadeus.NewClient(
		cfg.Amadeus.APIKey,
		cfg.Amadeus.APISecret,
		cfg.Amadeus.Production,
		cfg.Amadeus.TimeoutSeconds,
		cfg.Amadeus.RateLimit,
	)
	log.Infof(ctx, "Amadeus API client initialized")
	return amadeus.NewSource(client), true
}
