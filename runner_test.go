package soulmate_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	soulmate "github.com/404-atomic/soulmate-flow"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

func newTestSequencer(t *testing.T, completer *countingCompleter) *soulmate.Sequencer {
	t.Helper()
	seq, err := soulmate.New(threeSteps(), completer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return seq
}

func TestRunner_Interactive(t *testing.T) {
	seq := newTestSequencer(t, &countingCompleter{})

	var out bytes.Buffer
	runner := soulmate.NewRunner()
	runner.Input = strings.NewReader("\n\n\n")
	runner.Output = &out

	if err := runner.Run(context.Background(), seq); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"[1/3]", "[2/3]", "[3/3]",
		"[you] hello",
		"[you] my name is kenz",
		"[you] what is my name",
		"[assistant] answer-1",
		"[assistant] answer-3",
		"End of conversation sequence.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunner_Headless(t *testing.T) {
	completer := &countingCompleter{}
	seq := newTestSequencer(t, completer)

	var out bytes.Buffer
	runner := soulmate.NewRunner()
	runner.Input = strings.NewReader("") // never read in headless mode
	runner.Output = &out
	runner.Headless = true

	if err := runner.Run(context.Background(), seq); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if completer.calls != 3 {
		t.Errorf("completer called %d times, want 3", completer.calls)
	}
	text := out.String()
	if strings.Contains(text, "Press Enter") {
		t.Error("headless run should not prompt for input")
	}
	if !strings.Contains(text, "[assistant] answer-3") {
		t.Errorf("output missing final reply:\n%s", text)
	}
}

func TestRunner_EOFStopsCleanly(t *testing.T) {
	completer := &countingCompleter{}
	seq := newTestSequencer(t, completer)

	var out bytes.Buffer
	runner := soulmate.NewRunner()
	runner.Input = strings.NewReader("\n") // one step, then EOF
	runner.Output = &out

	if err := runner.Run(context.Background(), seq); err != nil {
		t.Fatalf("Run should treat EOF as a clean stop, got %v", err)
	}
	if completer.calls != 1 {
		t.Errorf("completer called %d times before EOF, want 1", completer.calls)
	}
}

func TestRunner_ProviderErrorPropagates(t *testing.T) {
	cause := errors.New("upstream unavailable")
	completer := &countingCompleter{err: &domain.ProviderError{Err: cause}}
	seq := newTestSequencer(t, completer)

	var out bytes.Buffer
	runner := soulmate.NewRunner()
	runner.Input = strings.NewReader("\n\n\n")
	runner.Output = &out

	err := runner.Run(context.Background(), seq)
	var provErr *domain.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not preserved through Unwrap")
	}
}

func TestRunner_RendererApplied(t *testing.T) {
	seq := newTestSequencer(t, &countingCompleter{})

	var out bytes.Buffer
	runner := soulmate.NewRunner()
	runner.Input = strings.NewReader("")
	runner.Output = &out
	runner.Headless = true
	runner.Renderer = func(s string) (string, error) {
		return ">> " + s, nil
	}

	if err := runner.Run(context.Background(), seq); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "[assistant] >> answer-1") {
		t.Errorf("renderer not applied:\n%s", out.String())
	}
}

func TestRunner_RequiresIO(t *testing.T) {
	seq := newTestSequencer(t, &countingCompleter{})

	runner := soulmate.NewRunner()
	if err := runner.Run(context.Background(), seq); err == nil {
		t.Error("expected error when IO is not configured")
	}
}
