// Command spotify-mcp serves the Spotify tool catalog over MCP.
//
// By default it speaks stdio for subprocess clients; with -http it serves
// the streamable HTTP transport plus a /health probe.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/quaverlabs/spotify-mcp/internal/catalog"
	"github.com/quaverlabs/spotify-mcp/internal/server"
	"github.com/quaverlabs/spotify-mcp/internal/spotify"
)

const version = "v0.1.0"

func main() {
	httpAddr := flag.String("http", "", "serve the HTTP transport on this address instead of stdio (e.g. :8080)")
	flag.Parse()

	// stdout is the stdio protocol channel, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if os.Getenv("SPOTIFY_CLIENT_ID") == "" || os.Getenv("SPOTIFY_CLIENT_SECRET") == "" {
		logger.Warn("SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET not set; Spotify calls will fail until configured")
	}

	// The Spotify client is owned here: constructed before serving begins,
	// released when serving stops.
	sp := spotify.New(spotify.Config{
		ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	})
	defer sp.Close()

	srv := server.New(server.Config{
		Name:         "spotify",
		Version:      version,
		Instructions: "Tools for searching Spotify and inspecting tracks, artists, and recommendations.",
		Logger:       logger,
	}, catalog.New(sp))

	if *httpAddr != "" {
		logger.Info("serving MCP over HTTP", "addr", *httpAddr)
		if err := http.ListenAndServe(*httpAddr, srv.Router()); err != nil {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
		return
	}
	if err := srv.ServeStdio(context.Background()); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
