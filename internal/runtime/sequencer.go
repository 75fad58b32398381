// Package runtime implements the step-sequencing core: a cursor
// advancing through a fixed script of conversational turns, with the
// provider call in between.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/404-atomic/soulmate-flow/internal/logging"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/404-atomic/soulmate-flow/pkg/observability"
	"github.com/404-atomic/soulmate-flow/pkg/ports"
)

// Sequencer advances a session through the script one step at a time.
// The script and provider are fixed at construction; all mutable state
// lives in the *domain.State passed to each call.
type Sequencer struct {
	script    domain.Script
	completer ports.Completer
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// Option configures the Sequencer.
type Option func(*Sequencer)

// WithLogger sets a structured logger for step events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		s.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Sequencer) {
		s.metrics = m
	}
}

// NewSequencer creates a sequencer over the given script and provider.
func NewSequencer(script domain.Script, completer ports.Completer, opts ...Option) *Sequencer {
	s := &Sequencer{
		script:    script,
		completer: completer,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Script returns the immutable script this sequencer runs.
func (s *Sequencer) Script() domain.Script {
	return s.script
}

// HasNext reports whether any steps remain for the given state.
func (s *Sequencer) HasNext(state *domain.State) bool {
	return state.Cursor < s.script.Len()
}

// Advance executes the step at the current cursor: it sends the step's
// prompt (plus the accumulated transcript and the step's optional
// system instruction) to the provider, records both turns, and moves
// the cursor forward by one.
//
// On any provider failure the state is left untouched: no turn is
// recorded, the cursor does not move, and the error is returned
// unmodified so the caller may retry by calling Advance again.
func (s *Sequencer) Advance(ctx context.Context, state *domain.State) (string, error) {
	if state.Cursor >= s.script.Len() {
		return "", domain.ErrOutOfRange
	}

	step := s.script.At(state.Cursor)

	history := make([]domain.Turn, 0, len(state.Transcript)+2)
	if step.Instruction != "" {
		history = append(history, domain.Turn{Role: domain.RoleSystem, Content: step.Instruction})
	}
	history = append(history, state.Transcript...)
	userTurn := domain.Turn{Role: domain.RoleUser, Content: step.Prompt}
	history = append(history, userTurn)

	started := time.Now()
	reply, err := s.completer.Complete(ctx, history)
	if err != nil {
		s.metrics.ObserveProviderError()
		s.logger.Error("step failed", "step", step.Name, "cursor", state.Cursor, "error", err)
		return "", err
	}

	state.Transcript = append(state.Transcript, userTurn, domain.Turn{Role: domain.RoleAssistant, Content: reply})
	state.Cursor++
	if state.Cursor == s.script.Len() {
		state.Status = domain.StatusFinished
	}

	s.metrics.ObserveAdvance(step.Name, time.Since(started))
	s.logger.Debug("step advanced", "step", step.Name, "cursor", state.Cursor, "elapsed", time.Since(started))

	return reply, nil
}

// Reset returns the state to the start of the sequence. It has no side
// effects beyond zeroing the cursor and clearing the transcript.
func (s *Sequencer) Reset(state *domain.State) {
	state.Cursor = 0
	state.Status = domain.StatusActive
	state.Transcript = nil
}
