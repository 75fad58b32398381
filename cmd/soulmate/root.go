package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/404-atomic/soulmate-flow/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "soulmate",
	Short: "soulmate is a step-by-step scripted conversation runner",
	Long: `soulmate replays a fixed script of conversation turns against a
language-model provider, one step at a time, through a console loop,
a web page, or an MCP server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("script", "", "Path to a YAML script file (default: built-in demo script)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// buildLogger resolves the --log-level flag into a configured logger.
func buildLogger(cmd *cobra.Command) *slog.Logger {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, falling back to info\n", err)
		level = slog.LevelInfo
	}
	return logging.New(level)
}
