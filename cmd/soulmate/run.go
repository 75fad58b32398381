package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/404-atomic/soulmate-flow/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scripted conversation in the console",
	Long: `Starts the blocking console loop: each step waits for Enter, sends
the scripted prompt to the provider, and prints the reply. Exits 0 when
the script is exhausted, non-zero on an unhandled provider failure.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		offline, _ := cmd.Flags().GetBool("offline")
		headless, _ := cmd.Flags().GetBool("headless")
		plain, _ := cmd.Flags().GetBool("plain")

		opts := cli.ConsoleOptions{
			ScriptPath: scriptPath,
			Offline:    offline,
			Headless:   headless,
			Plain:      plain,
			Logger:     buildLogger(cmd),
		}

		if err := cli.RunConsole(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("offline", false, "Run without a provider (canned replies, no API key needed)")
	runCmd.Flags().Bool("headless", false, "Run without prompts or banner (strict IO, for piping)")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering of assistant output")

	// Make 'run' the default when no subcommand is given
	rootCmd.Run = runCmd.Run
}
