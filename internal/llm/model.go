// Package llm adapts external language-model providers to the
// ports.Completer contract. The default backend is an OpenAI-compatible
// endpoint driven through the eino chat-model component.
package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

// DefaultModel is used when SOULMATE_MODEL is not set. It matches the
// small context-friendly model the hosted demo runs on.
const DefaultModel = "gpt-4.1-nano-2025-04-14"

// Config holds the provider connection settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// ConfigFromEnv reads the provider configuration from the process
// environment. A missing OPENAI_API_KEY is a startup-time failure, not
// a runtime one.
func ConfigFromEnv() (Config, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	modelName := os.Getenv("SOULMATE_MODEL")
	if modelName == "" {
		modelName = DefaultModel
	}

	return Config{
		APIKey:  key,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   modelName,
		Timeout: 120 * time.Second,
	}, nil
}

// Completer implements ports.Completer on top of an eino chat model.
type Completer struct {
	model model.BaseChatModel
}

// NewCompleter builds the OpenAI-backed completer from the config.
func NewCompleter(ctx context.Context, cfg Config) (*Completer, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	mcfg := &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}
	if cfg.MaxTokens > 0 {
		mcfg.MaxTokens = &cfg.MaxTokens
	}

	m, err := openai.NewChatModel(ctx, mcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat model: %w", err)
	}

	return &Completer{model: m}, nil
}

// NewCompleterFromModel wraps an existing chat model. Used by tests.
func NewCompleterFromModel(m model.BaseChatModel) *Completer {
	return &Completer{model: m}
}

// Complete sends the conversation history to the provider and returns
// the assistant's reply. Failures are wrapped as *domain.ProviderError
// with the cause preserved.
func (c *Completer) Complete(ctx context.Context, history []domain.Turn) (string, error) {
	out, err := c.model.Generate(ctx, toMessages(history))
	if err != nil {
		return "", &domain.ProviderError{Err: err}
	}
	return out.Content, nil
}

func toMessages(history []domain.Turn) []*schema.Message {
	msgs := make([]*schema.Message, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case domain.RoleSystem:
			msgs = append(msgs, schema.SystemMessage(turn.Content))
		case domain.RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(turn.Content, nil))
		default:
			msgs = append(msgs, schema.UserMessage(turn.Content))
		}
	}
	return msgs
}
