package llm

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

func TestToMessages(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleSystem, Content: "Answer briefly."},
		{Role: domain.RoleUser, Content: "hello"},
		{Role: domain.RoleAssistant, Content: "hi"},
		{Role: domain.RoleUser, Content: "my name is kenz"},
	}

	msgs := toMessages(history)

	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}

	wantRoles := []schema.RoleType{schema.System, schema.User, schema.Assistant, schema.User}
	for i, msg := range msgs {
		if msg.Role != wantRoles[i] {
			t.Errorf("message %d role = %q, want %q", i, msg.Role, wantRoles[i])
		}
		if msg.Content != history[i].Content {
			t.Errorf("message %d content = %q, want %q", i, msg.Content, history[i].Content)
		}
	}
}

func TestConfigFromEnv_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := ConfigFromEnv()
	if err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SOULMATE_MODEL", "")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("model = %q, want default %q", cfg.Model, DefaultModel)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

func TestStatic_CannedThenEcho(t *testing.T) {
	s := NewStatic("first", "second")
	ctx := context.Background()

	reply, err := s.Complete(ctx, []domain.Turn{{Role: domain.RoleUser, Content: "hello"}})
	if err != nil || reply != "first" {
		t.Errorf("call 1 = %q, %v", reply, err)
	}

	reply, _ = s.Complete(ctx, []domain.Turn{{Role: domain.RoleUser, Content: "again"}})
	if reply != "second" {
		t.Errorf("call 2 = %q", reply)
	}

	// Canned replies exhausted: echo the last user turn.
	reply, _ = s.Complete(ctx, []domain.Turn{
		{Role: domain.RoleUser, Content: "what is my name"},
		{Role: domain.RoleAssistant, Content: "..."},
		{Role: domain.RoleUser, Content: "tell me"},
	})
	if reply != "you said: tell me" {
		t.Errorf("echo reply = %q", reply)
	}

	if s.Calls() != 3 {
		t.Errorf("calls = %d, want 3", s.Calls())
	}
}
