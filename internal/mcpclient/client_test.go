package mcpclient_test

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quaverlabs/spotify-mcp/internal/mcpclient"
)

type searchIn struct {
	Query string `json:"query"`
}

type emptyIn struct{}

// newTestServer builds an in-process MCP server with one tool per result
// shape the client has to handle.
func newTestServer() *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "fixture", Version: "v0.0.1"}, nil)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_tracks",
		Description: "Search for tracks on Spotify.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in searchIn) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "results for " + in.Query}},
		}, nil, nil
	})
	mcp.AddTool(s, &mcp.Tool{
		Name:        "always_fails",
		Description: "Returns an error result.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ emptyIn) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "backing service unavailable"}},
		}, nil, nil
	})
	mcp.AddTool(s, &mcp.Tool{
		Name:        "no_content",
		Description: "Returns a result with no content blocks.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ emptyIn) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{}, nil, nil
	})
	mcp.AddTool(s, &mcp.Tool{
		Name:        "cover_art",
		Description: "Returns binary image content.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ emptyIn) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.ImageContent{MIMEType: "image/png", Data: []byte{1, 2, 3, 4}}},
		}, nil, nil
	})
	return s
}

// newTestClient wires a client to the server over fresh in-memory transports
// per session, mirroring the one-session-per-call behavior of the subprocess
// transport.
func newTestClient(server *mcp.Server) *mcpclient.Client {
	return mcpclient.NewWithDialer(func(ctx context.Context) (*mcp.ClientSession, error) {
		ct, st := mcp.NewInMemoryTransports()
		if _, err := server.Connect(ctx, st, nil); err != nil {
			return nil, err
		}
		return mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil).Connect(ctx, ct, nil)
	})
}

func TestCallTool_Success(t *testing.T) {
	c := newTestClient(newTestServer())
	resp := c.CallTool(context.Background(), mcpclient.Call{
		Name:      "search_tracks",
		Arguments: map[string]any{"query": "queen"},
	})
	if !resp.OK() {
		t.Fatalf("expected success, got error %q", resp.Err())
	}
	if want := "results for queen"; resp.Content() != want {
		t.Errorf("content = %q, want %q", resp.Content(), want)
	}
}

func TestCallTool_ErrorResultBecomesFailure(t *testing.T) {
	c := newTestClient(newTestServer())
	resp := c.CallTool(context.Background(), mcpclient.Call{Name: "always_fails"})
	if resp.OK() {
		t.Fatal("expected failure")
	}
	if want := "backing service unavailable"; resp.Err() != want {
		t.Errorf("err = %q, want %q", resp.Err(), want)
	}
	if want := "Error: backing service unavailable"; resp.Text() != want {
		t.Errorf("Text() = %q, want %q", resp.Text(), want)
	}
}

func TestCallTool_NoContentIsFailure(t *testing.T) {
	c := newTestClient(newTestServer())
	resp := c.CallTool(context.Background(), mcpclient.Call{Name: "no_content"})
	if resp.OK() {
		t.Fatal("expected failure")
	}
	if want := "no content in response"; resp.Err() != want {
		t.Errorf("err = %q, want %q", resp.Err(), want)
	}
}

func TestCallTool_BinaryContentSummarized(t *testing.T) {
	c := newTestClient(newTestServer())
	resp := c.CallTool(context.Background(), mcpclient.Call{Name: "cover_art"})
	if !resp.OK() {
		t.Fatalf("expected success, got %q", resp.Err())
	}
	if want := "[binary content: image/png, 4 bytes]"; resp.Content() != want {
		t.Errorf("content = %q, want %q", resp.Content(), want)
	}
}

func TestCallTool_EmptyNameRejectedBeforeDialing(t *testing.T) {
	dialed := false
	c := mcpclient.NewWithDialer(func(ctx context.Context) (*mcp.ClientSession, error) {
		dialed = true
		return nil, nil
	})
	resp := c.CallTool(context.Background(), mcpclient.Call{Name: ""})
	if resp.OK() {
		t.Fatal("expected failure")
	}
	if dialed {
		t.Error("client dialed despite invalid call")
	}
	if !strings.Contains(resp.Err(), "tool name cannot be empty") {
		t.Errorf("err = %q", resp.Err())
	}
}

func TestListTools_DeclaredTools(t *testing.T) {
	c := newTestClient(newTestServer())
	listed, err := c.ListTools(context.Background())
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range listed {
		names[tool.Name] = true
	}
	for _, want := range []string{"search_tracks", "always_fails", "no_content", "cover_art"} {
		if !names[want] {
			t.Errorf("missing declared tool %q (got %v)", want, names)
		}
	}
}
