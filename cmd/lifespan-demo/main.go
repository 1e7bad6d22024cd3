// Command lifespan-demo serves a minimal MCP server over stdio whose mock
// database is held open for exactly the serving lifespan.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quaverlabs/spotify-mcp/internal/demo"
)

func main() {
	if err := demo.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
