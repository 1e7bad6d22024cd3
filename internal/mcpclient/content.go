package mcpclient

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ContentKind tags the finite set of tool result payload kinds the client
// understands.
type ContentKind int

const (
	KindText ContentKind = iota
	KindBinary
	KindOther
)

// Payload is one tool result content block reduced to a tagged variant.
type Payload struct {
	Kind     ContentKind
	Text     string // KindText
	MIMEType string // KindBinary
	Size     int    // KindBinary, decoded byte count
}

// classify maps an MCP content block onto the {text, binary, other} variant.
func classify(content mcp.Content) Payload {
	switch c := content.(type) {
	case *mcp.TextContent:
		return Payload{Kind: KindText, Text: c.Text}
	case *mcp.ImageContent:
		return Payload{Kind: KindBinary, MIMEType: c.MIMEType, Size: len(c.Data)}
	case *mcp.AudioContent:
		return Payload{Kind: KindBinary, MIMEType: c.MIMEType, Size: len(c.Data)}
	default:
		return Payload{Kind: KindOther}
	}
}

// String renders the payload for a text-only consumer.
func (p Payload) String() string {
	switch p.Kind {
	case KindText:
		return p.Text
	case KindBinary:
		return fmt.Sprintf("[binary content: %s, %d bytes]", p.MIMEType, p.Size)
	default:
		return "[unsupported content]"
	}
}
