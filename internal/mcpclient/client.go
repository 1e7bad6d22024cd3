// Package mcpclient talks to an MCP tool server over a subprocess stdio
// transport, opening one session per operation.
package mcpclient

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerParams describes how to launch the tool server subprocess.
type ServerParams struct {
	Command string
	Args    []string
	Dir     string
}

// Client invokes tools on an MCP server. Every operation opens a fresh
// session and closes it before returning; there is no connection reuse.
type Client struct {
	dial func(ctx context.Context) (*mcp.ClientSession, error)
}

// New returns a Client that launches the server described by params for
// each session.
func New(name, version string, params ServerParams) *Client {
	impl := &mcp.Implementation{Name: name, Version: version}
	return &Client{
		dial: func(ctx context.Context) (*mcp.ClientSession, error) {
			cmd := exec.Command(params.Command, params.Args...)
			cmd.Dir = params.Dir
			return mcp.NewClient(impl, nil).Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
		},
	}
}

// NewWithDialer returns a Client using a custom session dialer. Tests use
// this with in-memory transports.
func NewWithDialer(dial func(ctx context.Context) (*mcp.ClientSession, error)) *Client {
	return &Client{dial: dial}
}

// ListTools opens a session, lists the server's declared tools, and closes
// the session.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	session, err := c.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server: %w", err)
	}
	defer session.Close()

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}
	return res.Tools, nil
}

// CallTool opens a fresh session, invokes one tool, and closes the session.
// Failures of any kind are folded into the Response; CallTool itself never
// returns an error.
func (c *Client) CallTool(ctx context.Context, call Call) Response {
	if err := call.Validate(); err != nil {
		return failure(err.Error())
	}

	session, err := c.dial(ctx)
	if err != nil {
		return failure(fmt.Sprintf("connecting to MCP server: %v", err))
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      call.Name,
		Arguments: call.Arguments,
	})
	if err != nil {
		return failure(err.Error())
	}
	return responseFromResult(result)
}

// responseFromResult reduces a structured tool result to a Response. Only
// the first content block is considered; the tools here return exactly one.
func responseFromResult(result *mcp.CallToolResult) Response {
	if result == nil || len(result.Content) == 0 {
		return failure("no content in response")
	}
	text := classify(result.Content[0]).String()
	if result.IsError {
		return failure(text)
	}
	if text == "" {
		return failure("empty content in response")
	}
	return success(text)
}
