// Package demo is a small MCP server illustrating the scoped-resource
// pattern: a mock database is connected before the server begins serving
// and disconnected unconditionally when serving stops, and tool handlers
// reach it through a typed application context.
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Database is a mock connection with an explicit lifecycle.
type Database struct {
	connected bool
}

// ConnectDatabase opens the mock connection.
func ConnectDatabase(_ context.Context) (*Database, error) {
	return &Database{connected: true}, nil
}

// Disconnect closes the mock connection.
func (d *Database) Disconnect(_ context.Context) error {
	d.connected = false
	return nil
}

// Connected reports whether the connection is open.
func (d *Database) Connected() bool { return d.connected }

// Query runs the mock query.
func (d *Database) Query() (string, error) {
	if !d.connected {
		return "", errors.New("database not connected")
	}
	return "Query result", nil
}

// App is the typed application context handed to tool handlers. Adding a
// shared resource means adding a field here and wiring it in Run.
type App struct {
	DB *Database
}

type queryDBInput struct{}

func (a *App) queryDB(_ context.Context, _ *mcp.CallToolRequest, _ queryDBInput) (*mcp.CallToolResult, any, error) {
	out, err := a.DB.Query()
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: out}},
	}, nil, nil
}

func (a *App) greeting(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	name := strings.TrimPrefix(req.Params.URI, "greeting://")
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Hello, %s!", name),
		}},
	}, nil
}

var greetingStyles = map[string]string{
	"friendly": "Please write a warm, friendly greeting",
	"formal":   "Please write a formal, professional greeting",
	"casual":   "Please write a casual, relaxed greeting",
}

func greetUser(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := req.Params.Arguments["name"]
	style, ok := greetingStyles[req.Params.Arguments["style"]]
	if !ok {
		style = greetingStyles["friendly"]
	}
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: fmt.Sprintf("%s for someone named %s.", style, name)},
		}},
	}, nil
}

// NewServer builds the demo MCP server around the typed context.
func NewServer(app *App) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "lifespan-demo", Version: "v0.1.0"}, nil)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "query_db",
		Description: "Query the database held open for the server's lifespan.",
	}, app.queryDB)
	s.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "greeting://{name}",
		Name:        "greeting",
		Description: "A personalized greeting.",
		MIMEType:    "text/plain",
	}, app.greeting)
	s.AddPrompt(&mcp.Prompt{
		Name:        "greet_user",
		Description: "Generate a greeting prompt for a user.",
		Arguments: []*mcp.PromptArgument{
			{Name: "name", Description: "Name of the person to greet.", Required: true},
			{Name: "style", Description: "Greeting style: friendly, formal, or casual."},
		},
	}, greetUser)
	return s
}

// Run serves the demo over stdio. The database is connected before serving
// begins and disconnected when serving stops, regardless of how it stops.
func Run(ctx context.Context) error {
	db, err := ConnectDatabase(ctx)
	if err != nil {
		return fmt.Errorf("connecting database: %w", err)
	}
	defer func() { _ = db.Disconnect(context.WithoutCancel(ctx)) }()

	app := &App{DB: db}
	return NewServer(app).Run(ctx, &mcp.StdioTransport{})
}
