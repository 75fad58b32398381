package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

// Static is an offline completer that replies from a fixed list,
// one reply per call. When the list runs out it echoes the last user
// turn. Used for offline demo runs and tests.
type Static struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

// NewStatic creates a static completer with canned replies.
func NewStatic(replies ...string) *Static {
	return &Static{replies: replies}
}

// Complete returns the next canned reply.
func (s *Static) Complete(ctx context.Context, history []domain.Turn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calls < len(s.replies) {
		reply := s.replies[s.calls]
		s.calls++
		return reply, nil
	}
	s.calls++

	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleUser {
			return fmt.Sprintf("you said: %s", history[i].Content), nil
		}
	}
	return "...", nil
}

// Calls reports how many completions were requested.
func (s *Static) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
