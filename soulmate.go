package soulmate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/404-atomic/soulmate-flow/internal/runtime"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/404-atomic/soulmate-flow/pkg/observability"
	"github.com/404-atomic/soulmate-flow/pkg/ports"
)

// Sequencer is the high-level entry point for the soulmate-flow library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Sequencer struct {
	rt      *runtime.Sequencer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option defines a functional option for configuring the Sequencer.
type Option func(*Sequencer)

// WithLogger sets a custom structured logger for the sequencer.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		s.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation for step events.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Sequencer) {
		s.metrics = m
	}
}

// New initializes a new Sequencer over a fixed script and provider.
func New(script domain.Script, completer ports.Completer, opts ...Option) (*Sequencer, error) {
	if script.Len() == 0 {
		return nil, fmt.Errorf("script must contain at least one step")
	}
	if completer == nil {
		return nil, fmt.Errorf("completer is required")
	}

	s := &Sequencer{}
	for _, opt := range opts {
		opt(s)
	}

	var rtOpts []runtime.Option
	if s.logger != nil {
		rtOpts = append(rtOpts, runtime.WithLogger(s.logger))
	}
	if s.metrics != nil {
		rtOpts = append(rtOpts, runtime.WithMetrics(s.metrics))
	}

	s.rt = runtime.NewSequencer(script, completer, rtOpts...)
	return s, nil
}

// Script returns the immutable script this sequencer runs.
func (s *Sequencer) Script() domain.Script {
	return s.rt.Script()
}

// NewSession creates a fresh session state at cursor zero.
func (s *Sequencer) NewSession() *domain.State {
	return domain.NewState()
}

// HasNext reports whether any steps remain for the given state.
func (s *Sequencer) HasNext(state *domain.State) bool {
	return s.rt.HasNext(state)
}

// Advance executes the next step and returns the assistant's reply.
// See internal/runtime.Sequencer.Advance for the exact semantics.
func (s *Sequencer) Advance(ctx context.Context, state *domain.State) (string, error) {
	return s.rt.Advance(ctx, state)
}

// Reset returns the state to the start of the sequence.
func (s *Sequencer) Reset(state *domain.State) {
	s.rt.Reset(state)
}
