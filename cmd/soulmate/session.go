package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/404-atomic/soulmate-flow/internal/cli"
	"github.com/404-atomic/soulmate-flow/pkg/ports"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persistent web sessions",
	Long:  `List, inspect, and remove sessions stored in the configured backend.`,
}

// getStore builds the store from the session command's flags.
func getStore(cmd *cobra.Command) ports.StateStore {
	storeKind, _ := cmd.Flags().GetString("store")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	redisPassword, _ := cmd.Flags().GetString("redis-password")
	redisDB, _ := cmd.Flags().GetInt("redis-db")
	sessionTTL, _ := cmd.Flags().GetDuration("session-ttl")

	store, err := cli.BuildStore(cli.StoreOptions{
		Kind:          storeKind,
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		RedisDB:       redisDB,
		SessionTTL:    sessionTTL,
	})
	if err != nil {
		fmt.Printf("Error initializing store: %v\n", err)
		os.Exit(1)
	}
	return store
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all active sessions",
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		sessions, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing sessions: %v\n", err)
			os.Exit(1)
		}

		if len(sessions) == 0 {
			fmt.Println("No active sessions found.")
			return
		}

		fmt.Println("Active Sessions:")
		for _, s := range sessions {
			fmt.Println("- " + s)
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Inspect the state of a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		for _, sessionID := range args {
			if err := store.Delete(cmd.Context(), sessionID); err != nil {
				fmt.Printf("Error removing session '%s': %v\n", sessionID, err)
				os.Exit(1)
			}
			fmt.Printf("Removed session '%s'\n", sessionID)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)

	sessionCmd.PersistentFlags().String("store", "redis", "Session store backend (memory or redis)")
	sessionCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address")
	sessionCmd.PersistentFlags().String("redis-password", "", "Redis password")
	sessionCmd.PersistentFlags().Int("redis-db", 0, "Redis database index")
	sessionCmd.PersistentFlags().Duration("session-ttl", 0, "Session expiration (0 = no expiration)")
}
