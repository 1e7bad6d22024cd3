// Package server assembles the Spotify tool catalog into an MCP server and
// provides its stdio and HTTP transport modes.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quaverlabs/spotify-mcp/internal/catalog"
)

// Config carries server identity and assembly options.
type Config struct {
	Name    string
	Version string
	// Instructions is surfaced to clients during session initialization.
	Instructions string
	Logger       *slog.Logger
}

// Server wires the operation registry onto an mcp.Server.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	mcp      *mcp.Server
	registry *catalog.Registry
}

// New constructs a Server with every registry operation installed.
func New(cfg Config, registry *catalog.Registry) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var opts *mcp.ServerOptions
	if cfg.Instructions != "" {
		opts = &mcp.ServerOptions{Instructions: cfg.Instructions}
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		mcp:      mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, opts),
		registry: registry,
	}
	registry.Install(s.mcp)
	return s
}

// MCPServer exposes the underlying MCP server, mainly so tests can connect
// in-memory sessions.
func (s *Server) MCPServer() *mcp.Server { return s.mcp }

// ServeStdio serves MCP over the process's stdin/stdout until the client
// disconnects or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio",
		"server", s.cfg.Name, "tools", len(s.registry.Operations()))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Router returns the handler for the HTTP transport mode: the MCP streamable
// endpoint at /mcp plus a health probe.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcp }, nil))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
