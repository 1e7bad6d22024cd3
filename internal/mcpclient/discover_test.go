package mcpclient_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDiscover_WrapsKnownToolsAndSkipsUnknown(t *testing.T) {
	server := newTestServer() // declares search_tracks plus three fixture tools

	c := newTestClient(server)
	defs, err := c.Discover(context.Background(), discardLogger())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	// Only search_tracks has a hand-authored schema; the fixture tools must
	// be skipped without aborting discovery.
	if len(defs) != 1 {
		names := make([]string, 0, len(defs))
		for _, d := range defs {
			names = append(names, d.Name)
		}
		t.Fatalf("expected 1 definition, got %d: %v", len(defs), names)
	}
	def := defs[0]
	if def.Name != "search_tracks" {
		t.Fatalf("def.Name = %q", def.Name)
	}
	if def.Description == "" {
		t.Error("description not carried over from server declaration")
	}
	if def.Function == nil {
		t.Fatal("no wrapped handler")
	}
}

func TestDiscover_WrappedHandlerRoundTrip(t *testing.T) {
	c := newTestClient(newTestServer())
	defs, err := c.Discover(context.Background(), discardLogger())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}

	out, err := defs[0].Function(context.Background(), json.RawMessage(`{"query":"abba"}`))
	if err != nil {
		t.Fatalf("wrapped handler: %v", err)
	}
	if want := "results for abba"; out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestDiscover_HandlerFoldsServerErrorsIntoText(t *testing.T) {
	// A server whose only schema-matched tool reports an error result: the
	// wrapped handler must return the error as text, not as a Go error, so
	// the model sees it as a tool result.
	s := mcp.NewServer(&mcp.Implementation{Name: "fixture", Version: "v0.0.1"}, nil)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_track",
		Description: "Always fails.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct {
		TrackID string `json:"track_id"`
	}) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "upstream down"}},
		}, nil, nil
	})

	c := newTestClient(s)
	defs, err := c.Discover(context.Background(), discardLogger())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}

	out, err := defs[0].Function(context.Background(), json.RawMessage(`{"track_id":"x"}`))
	if err != nil {
		t.Fatalf("wrapped handler returned Go error: %v", err)
	}
	if want := "Error: upstream down"; out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestDiscover_BadArgumentJSON(t *testing.T) {
	c := newTestClient(newTestServer())
	defs, err := c.Discover(context.Background(), discardLogger())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if _, err := defs[0].Function(context.Background(), json.RawMessage(`{not json`)); err == nil {
		t.Error("expected decode error for malformed arguments")
	}
}
