package main

import (
	"fmt"

	"github.com/spf13/cobra"

	soulmate "github.com/404-atomic/soulmate-flow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of soulmate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("soulmate version %s\n", soulmate.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
