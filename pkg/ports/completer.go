package ports

import (
	"context"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

// Completer is the contract with the external language-model provider.
// The history already contains any system instruction for the current
// step; the implementation returns the assistant's reply text.
//
// Failures are surfaced as *domain.ProviderError with the cause
// preserved. No retry is performed at this layer.
type Completer interface {
	Complete(ctx context.Context, history []domain.Turn) (string, error)
}
