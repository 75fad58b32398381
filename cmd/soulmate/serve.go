package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	soulmate "github.com/404-atomic/soulmate-flow"
	httpAdapter "github.com/404-atomic/soulmate-flow/internal/adapters/http"
	"github.com/404-atomic/soulmate-flow/internal/cli"
	"github.com/404-atomic/soulmate-flow/pkg/observability"
	"github.com/404-atomic/soulmate-flow/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web front end",
	Long: `Serves the session-backed web page: the transcript so far, an Advance
button while steps remain, and a Reset button. Each browser session is
identified by a cookie and advances independently.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		scriptPath, _ := cmd.Flags().GetString("script")
		offline, _ := cmd.Flags().GetBool("offline")
		storeKind, _ := cmd.Flags().GetString("store")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		redisPassword, _ := cmd.Flags().GetString("redis-password")
		redisDB, _ := cmd.Flags().GetInt("redis-db")
		sessionTTL, _ := cmd.Flags().GetDuration("session-ttl")

		logger := buildLogger(cmd)

		scr, err := cli.BuildScript(scriptPath)
		if err != nil {
			fmt.Printf("Error loading script: %v\n", err)
			os.Exit(1)
		}

		completer, err := cli.BuildCompleter(cmd.Context(), offline, logger)
		if err != nil {
			fmt.Printf("Error initializing provider: %v\n", err)
			os.Exit(1)
		}

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

		metrics := observability.NewMetrics()

		seq, err := soulmate.New(scr, completer,
			soulmate.WithLogger(logger),
			soulmate.WithMetrics(metrics),
		)
		if err != nil {
			fmt.Printf("Error initializing sequencer: %v\n", err)
			os.Exit(1)
		}

		sessions := session.NewManager(store, session.WithLogger(logger))
		server := httpAdapter.NewServer(seq, sessions,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting soulmate web front end on %s (%d steps)\n", srv.Addr, scr.Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Bool("offline", false, "Run without a provider (canned replies, no API key needed)")
	serveCmd.Flags().String("store", "memory", "Session store backend (memory or redis)")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (with --store redis)")
	serveCmd.Flags().String("redis-password", "", "Redis password (with --store redis)")
	serveCmd.Flags().Int("redis-db", 0, "Redis database index (with --store redis)")
	serveCmd.Flags().Duration("session-ttl", 0, "Session expiration (0 = no expiration)")
}
