// Package cli wires the sequencer, provider, and stores for the
// command-line entry points.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/404-atomic/soulmate-flow/internal/llm"
	"github.com/404-atomic/soulmate-flow/pkg/adapters/memory"
	"github.com/404-atomic/soulmate-flow/pkg/adapters/redis"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/404-atomic/soulmate-flow/pkg/ports"
	"github.com/404-atomic/soulmate-flow/pkg/script"
)

// BuildScript loads the script file when a path is given, otherwise the
// built-in three-step demo script.
func BuildScript(path string) (domain.Script, error) {
	if path == "" {
		return script.Default(), nil
	}
	return script.Load(path)
}

// BuildCompleter constructs the provider. Offline mode uses the static
// echo completer and needs no credentials; otherwise the OpenAI-backed
// completer is configured from the environment, and a missing API key
// fails here, at startup.
func BuildCompleter(ctx context.Context, offline bool, logger *slog.Logger) (ports.Completer, error) {
	if offline {
		logger.Info("running offline, provider calls are stubbed")
		return llm.NewStatic(), nil
	}

	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger.Debug("provider configured", "model", cfg.Model)
	return llm.NewCompleter(ctx, cfg)
}

// StoreOptions selects and configures the session store backend.
type StoreOptions struct {
	Kind          string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
}

// BuildStore constructs the session store from the options.
func BuildStore(opts StoreOptions) (ports.StateStore, error) {
	switch opts.Kind {
	case "", "memory":
		return memory.NewStore(), nil
	case "redis":
		return redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB,
			redis.WithTTL(opts.SessionTTL)), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q (expected memory or redis)", opts.Kind)
	}
}
