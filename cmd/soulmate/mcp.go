package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	soulmate "github.com/404-atomic/soulmate-flow"
	"github.com/404-atomic/soulmate-flow/internal/cli"
	mcpAdapter "github.com/404-atomic/soulmate-flow/pkg/adapters/mcp"
	"github.com/404-atomic/soulmate-flow/pkg/session"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the stepper as an MCP Server so AI agent hosts can drive the
scripted conversation as tools (advance, reset, get_transcript).

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		scriptPath, _ := cmd.Flags().GetString("script")
		offline, _ := cmd.Flags().GetBool("offline")

		logger := buildLogger(cmd)

		scr, err := cli.BuildScript(scriptPath)
		if err != nil {
			log.Fatalf("Error loading script: %v", err)
		}

		completer, err := cli.BuildCompleter(cmd.Context(), offline, logger)
		if err != nil {
			log.Fatalf("Error initializing provider: %v", err)
		}

		seq, err := soulmate.New(scr, completer, soulmate.WithLogger(logger))
		if err != nil {
			log.Fatalf("Error initializing sequencer: %v", err)
		}

		store, err := cli.BuildStore(cli.StoreOptions{Kind: "memory"})
		if err != nil {
			log.Fatalf("Error initializing store: %v", err)
		}
		sessions := session.NewManager(store, session.WithLogger(logger))

		srv := mcpAdapter.NewServer(seq, sessions)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting soulmate MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting soulmate MCP Server (SSE)", "port", port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				// Ignore server closed error if it was caused by context cancellation
				if err != http.ErrServerClosed {
					logger.Error("MCP Server execution failed", "error", err)
					os.Exit(1)
				}
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
	mcpCmd.Flags().Bool("offline", false, "Run without a provider (canned replies, no API key needed)")
}
