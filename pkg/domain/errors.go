package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when Advance is called with no steps
// remaining. Correct front-end code checks HasNext first, so hitting
// this is a usage error.
var ErrOutOfRange = errors.New("no steps remaining")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ProviderError wraps a failure from the external language-model
// provider (network, timeout, auth). The cause is preserved and
// surfaced unmodified; this core does no enrichment or retry.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
