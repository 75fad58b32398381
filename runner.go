package soulmate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Runner handles the blocking console loop using provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer is a function that transforms assistant output before
// printing it. This allows for TUI rendering (markdown to ANSI) without
// coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner. The caller sets Input/Output
// (typically os.Stdin/os.Stdout; buffers in tests).
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the sequence until it is exhausted. On each iteration it
// blocks on a line read (unless headless), advances one step, and prints
// the assistant's reply. A provider failure is returned to the caller
// unmodified; the process exit code is the caller's concern.
func (r *Runner) Run(ctx context.Context, seq *Sequencer) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	lineReader := bufio.NewReader(r.Input)
	writer := r.Output

	state := seq.NewSession()
	total := seq.Script().Len()

	if !r.Headless {
		fmt.Fprintln(writer, "--- soulmate-flow: step-by-step conversation ---")
	}

	for seq.HasNext(state) {
		step := seq.Script().At(state.Cursor)

		if !r.Headless {
			fmt.Fprintf(writer, "\n[%d/%d] Press Enter to send: %q ", state.Cursor+1, total, step.Prompt)
			if _, err := lineReader.ReadString('\n'); err != nil {
				if errors.Is(err, io.EOF) {
					fmt.Fprintln(writer)
					return nil
				}
				return fmt.Errorf("read error: %w", err)
			}
		}

		fmt.Fprintf(writer, "[you] %s\n", step.Prompt)

		reply, err := seq.Advance(ctx, state)
		if err != nil {
			return err
		}

		rendered := reply
		if r.Renderer != nil {
			if out, rerr := r.Renderer(reply); rerr == nil {
				rendered = out
			}
		}
		fmt.Fprintf(writer, "[assistant] %s\n", strings.TrimRight(rendered, "\n"))
	}

	if !r.Headless {
		fmt.Fprintln(writer, "\nEnd of conversation sequence.")
	}
	return nil
}
