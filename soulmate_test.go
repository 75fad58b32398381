package soulmate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	soulmate "github.com/404-atomic/soulmate-flow"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

type countingCompleter struct {
	calls int
	err   error
}

func (c *countingCompleter) Complete(ctx context.Context, history []domain.Turn) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return fmt.Sprintf("answer-%d", c.calls), nil
}

func threeSteps() domain.Script {
	return domain.Script{
		{Name: "greet", Prompt: "hello"},
		{Name: "introduce", Prompt: "my name is kenz"},
		{Name: "recall", Prompt: "what is my name"},
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := soulmate.New(domain.Script{}, &countingCompleter{}); err == nil {
		t.Error("expected error for empty script")
	}
	if _, err := soulmate.New(threeSteps(), nil); err == nil {
		t.Error("expected error for nil completer")
	}
	if _, err := soulmate.New(threeSteps(), &countingCompleter{}); err != nil {
		t.Errorf("valid construction failed: %v", err)
	}
}

func TestSequencer_FullRun(t *testing.T) {
	completer := &countingCompleter{}
	seq, err := soulmate.New(threeSteps(), completer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	state := seq.NewSession()
	ctx := context.Background()

	steps := 0
	for seq.HasNext(state) {
		if _, err := seq.Advance(ctx, state); err != nil {
			t.Fatalf("Advance %d failed: %v", steps, err)
		}
		steps++
	}

	if steps != 3 {
		t.Errorf("ran %d steps, want 3", steps)
	}
	if state.Status != domain.StatusFinished {
		t.Errorf("status = %q, want finished", state.Status)
	}

	_, err = seq.Advance(ctx, state)
	if !errors.Is(err, domain.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange past the end, got %v", err)
	}

	seq.Reset(state)
	if state.Cursor != 0 || len(state.Transcript) != 0 {
		t.Errorf("reset left state dirty: %+v", state)
	}
}

func TestSequencer_IndependentSessions(t *testing.T) {
	seq, err := soulmate.New(threeSteps(), &countingCompleter{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := seq.NewSession()
	b := seq.NewSession()
	ctx := context.Background()

	if _, err := seq.Advance(ctx, a); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if _, err := seq.Advance(ctx, a); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	if a.Cursor != 2 {
		t.Errorf("session a cursor = %d, want 2", a.Cursor)
	}
	if b.Cursor != 0 || len(b.Transcript) != 0 {
		t.Errorf("session b was touched: %+v", b)
	}
}
