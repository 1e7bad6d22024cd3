// Package catalog defines the Spotify tool operations exposed over MCP.
//
// Operations are held in an explicit Registry mapping operation name to a
// descriptor (tool metadata plus handler), populated at startup and installed
// onto an mcp.Server for discovery. Handlers always produce a flat text
// block: backing API failures are folded into the text, never surfaced as
// protocol errors.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quaverlabs/spotify-mcp/internal/spotify"
)

// MusicAPI is the slice of the Spotify client the operations need. Tests
// substitute a stub.
type MusicAPI interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]spotify.Track, error)
	SearchArtists(ctx context.Context, query string, limit int) ([]spotify.Artist, error)
	Artist(ctx context.Context, id string) (*spotify.Artist, error)
	ArtistTopTracks(ctx context.Context, id string) ([]spotify.Track, error)
	Track(ctx context.Context, id string) (*spotify.Track, error)
	AudioFeatures(ctx context.Context, trackID string) (*spotify.AudioFeatures, error)
	Recommendations(ctx context.Context, seedTrackIDs []string, limit int) ([]spotify.Track, error)
}

// ErrOperationNotFound is returned by Registry.Call for unknown names.
var ErrOperationNotFound = errors.New("operation not found")

// Operation is one catalog entry: the MCP tool metadata and its handler.
type Operation struct {
	Tool *mcp.Tool

	install func(s *mcp.Server)
	invoke  func(ctx context.Context, raw json.RawMessage) (string, error)
}

// Registry holds the catalog operations in registration order.
type Registry struct {
	ops   []Operation
	index map[string]int
}

// New builds the full catalog backed by the given API client.
func New(api MusicAPI) *Registry {
	t := &toolset{api: api}
	r := &Registry{index: make(map[string]int)}
	r.add(newOperation(&mcp.Tool{
		Name:        "search_tracks",
		Description: "Search for tracks on Spotify.",
	}, t.searchTracks))
	r.add(newOperation(&mcp.Tool{
		Name:        "get_artist_info",
		Description: "Get detailed information about an artist, including top tracks.",
	}, t.artistInfo))
	r.add(newOperation(&mcp.Tool{
		Name:        "get_audio_features",
		Description: "Get audio features and analysis for a track (tempo, key, energy, etc.).",
	}, t.audioFeatures))
	r.add(newOperation(&mcp.Tool{
		Name:        "get_recommendations",
		Description: "Get track recommendations based on seed tracks.",
	}, t.recommendations))
	r.add(newOperation(&mcp.Tool{
		Name:        "get_track",
		Description: "Get information about a single track by its Spotify ID.",
	}, t.trackInfo))
	return r
}

func (r *Registry) add(op Operation) {
	r.index[op.Tool.Name] = len(r.ops)
	r.ops = append(r.ops, op)
}

// Operations returns the catalog entries in registration order.
func (r *Registry) Operations() []Operation {
	return r.ops
}

// Install registers every operation with the MCP server.
func (r *Registry) Install(s *mcp.Server) {
	for _, op := range r.ops {
		op.install(s)
	}
}

// Call invokes an operation directly, bypassing the MCP transport layer.
// Arguments are the raw JSON argument object. Returns ErrOperationNotFound
// for unknown names.
func (r *Registry) Call(ctx context.Context, name string, raw json.RawMessage) (string, error) {
	i, ok := r.index[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOperationNotFound, name)
	}
	return r.ops[i].invoke(ctx, raw)
}

// newOperation wraps a typed text handler into an Operation descriptor.
// The MCP-side registration goes through mcp.AddTool so the input schema is
// inferred from the In struct.
func newOperation[In any](tool *mcp.Tool, fn func(ctx context.Context, in In) string) Operation {
	typed := func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		return textResult(fn(ctx, in)), nil, nil
	}
	return Operation{
		Tool:    tool,
		install: func(s *mcp.Server) { mcp.AddTool(s, tool, typed) },
		invoke: func(ctx context.Context, raw json.RawMessage) (string, error) {
			var in In
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &in); err != nil {
					return "", fmt.Errorf("unmarshaling %s arguments: %w", tool.Name, err)
				}
			}
			return fn(ctx, in), nil
		},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
