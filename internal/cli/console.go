package cli

import (
	"context"
	"log/slog"
	"os"

	soulmate "github.com/404-atomic/soulmate-flow"
	"github.com/404-atomic/soulmate-flow/internal/presentation/tui"
)

// ConsoleOptions contains all the configuration for the run command.
type ConsoleOptions struct {
	ScriptPath string
	Offline    bool
	Headless   bool
	Plain      bool // Disable markdown rendering of assistant output
	Logger     *slog.Logger
}

// RunConsole runs the blocking console front end until the sequence is
// exhausted or a provider failure surfaces.
func RunConsole(ctx context.Context, opts ConsoleOptions) error {
	scr, err := BuildScript(opts.ScriptPath)
	if err != nil {
		return err
	}

	completer, err := BuildCompleter(ctx, opts.Offline, opts.Logger)
	if err != nil {
		return err
	}

	seq, err := soulmate.New(scr, completer, soulmate.WithLogger(opts.Logger))
	if err != nil {
		return err
	}

	runner := soulmate.NewRunner()
	runner.Input = os.Stdin
	runner.Output = os.Stdout
	runner.Headless = opts.Headless
	if !opts.Plain {
		runner.Renderer = tui.NewRenderer()
	}

	if !opts.Headless {
		tui.PrintBanner()
	}

	return runner.Run(ctx, seq)
}
