// Command spotify-agent discovers the spotify-mcp server's tools and drives
// a scripted conversation through the Anthropic Messages API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/quaverlabs/spotify-mcp/internal/mcpclient"
	"github.com/quaverlabs/spotify-mcp/internal/provider"
	"github.com/quaverlabs/spotify-mcp/internal/runner"
	"github.com/quaverlabs/spotify-mcp/memory"
)

const version = "v0.1.0"

const threadID = "spotify-conversation-1"

func main() {
	// Basic env check (SDK also reads API key)
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	llmCfg := provider.Config{
		Provider:    provider.ProviderAnthropic,
		Temperature: 0.7,
		APIKey:      apiKey,
	}
	client, err := provider.NewClient(llmCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid LLM configuration: %v\n", err)
		os.Exit(1)
	}

	mc := mcpclient.New("spotify-agent", version, mcpclient.ServerParams{
		Command: getEnv("SPOTIFY_MCP_COMMAND", "spotify-mcp"),
		Args:    strings.Fields(os.Getenv("SPOTIFY_MCP_ARGS")),
		Dir:     os.Getenv("SPOTIFY_MCP_DIR"),
	})

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	fmt.Println("Discovering tools...")
	defs, err := mc.Discover(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tool discovery failed: %v\n", err)
		os.Exit(1)
	}
	for _, d := range defs {
		fmt.Printf("  %s: %s\n", d.Name, d.Description)
	}

	// Load prior conversation if the thread exists
	threadPath := getEnv("SPOTIFY_AGENT_THREAD", "spotify-conversation.json")
	thread, err := memory.LoadThread(threadPath, threadID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load persisted thread: %v\n", err)
		thread = &memory.Thread{ID: threadID}
	}

	r := runner.New(client, defs, llmCfg.Temperature)
	model := llmCfg.ModelOrDefault()

	// Build SDK conversation from the persisted transcript
	conv := make([]anthropic.MessageParam, 0, len(thread.Messages))
	for _, m := range thread.Messages {
		if m.Role == "user" {
			conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		} else {
			conv = append(conv, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text)))
		}
	}

	queries := []string{
		"Search for the song 'Bohemian Rhapsody' by Queen",
		"What are Taylor Swift's top tracks?",
		"Pick one of those tracks and describe its audio features",
	}

	for _, query := range queries {
		select {
		case <-ctx.Done():
			return
		default:
		}
		fmt.Printf("\n\u001b[94mYou\u001b[0m: %s\n", query)
		conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(query)))

		// Track assistant visible text to persist after the turn
		var lastAssistantText string
		for {
			msg, toolResults, err := r.RunOneStep(ctx, model, conv)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				break
			}
			conv = append(conv, msg.ToParam())
			// Collect assistant text blocks from this message
			for _, b := range msg.Content {
				if tb, ok := b.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
					if lastAssistantText == "" {
						lastAssistantText = tb.Text
					} else {
						lastAssistantText += "\n" + tb.Text
					}
				}
			}
			if len(toolResults) == 0 {
				break // done with assistant turn
			}
			// Provide tool results as a user message back to the model
			conv = append(conv, anthropic.NewUserMessage(toolResults...))
		}

		// Persist minimal text-only transcript (user + assistant)
		thread.Append("user", query)
		if strings.TrimSpace(lastAssistantText) != "" {
			thread.Append("assistant", lastAssistantText)
		}
		if err := memory.SaveThread(threadPath, thread); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save thread: %v\n", err)
		}
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
