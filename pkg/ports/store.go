package ports

import (
	"context"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

// StateStore defines the interface for persisting session state.
// Each session's state is independent; the store provides no cross-session
// coordination beyond keyed access.
type StateStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all known sessions.
	List(ctx context.Context) ([]string, error)
}
