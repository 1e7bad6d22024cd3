package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/quaverlabs/spotify-mcp/tools"
)

var toolNameRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Discover lists the server's declared tools and wraps the usable ones into
// agent tool definitions. A declaration must pass two checks: a well-formed
// name, and a matching entry in the hand-authored schema table. Tools
// failing either are skipped with a logged warning; discovery itself only
// fails when the server cannot be reached.
func (c *Client) Discover(ctx context.Context, logger *slog.Logger) ([]tools.ToolDefinition, error) {
	if logger == nil {
		logger = slog.Default()
	}

	declared, err := c.ListTools(ctx)
	if err != nil {
		return nil, err
	}

	schemas := tools.Schemas()
	defs := make([]tools.ToolDefinition, 0, len(declared))
	for _, tool := range declared {
		if err := validateToolName(tool.Name); err != nil {
			logger.Warn("skipping invalid tool", "tool", tool.Name, "err", err)
			continue
		}
		schema, ok := schemas[tool.Name]
		if !ok {
			logger.Warn("no hand-authored schema for tool, skipping", "tool", tool.Name)
			continue
		}
		defs = append(defs, tools.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schema,
			Function:    c.toolFunc(tool.Name),
		})
	}
	return defs, nil
}

// toolFunc wraps one remote tool as an agent handler. Each invocation opens
// and tears down its own session via CallTool.
func (c *Client) toolFunc(name string) func(context.Context, json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		args := map[string]any{}
		if len(input) > 0 {
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("decoding %s arguments: %w", name, err)
			}
		}
		resp := c.CallTool(ctx, Call{Name: name, Arguments: args})
		return resp.Text(), nil
	}
}

func validateToolName(name string) error {
	if name == "" {
		return errors.New("tool name is empty")
	}
	if !toolNameRE.MatchString(name) {
		return fmt.Errorf("tool name must be alphanumeric with underscores/hyphens: %q", name)
	}
	return nil
}
