// Package tools defines the agent-side tool contracts.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Schemas(): the hand-authored argument schema table for the Spotify
//     MCP server's tools, consulted during discovery.
package tools
