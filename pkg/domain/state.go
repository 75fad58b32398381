package domain

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single utterance in the conversation transcript.
type Turn struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// SessionStatus defines where a session stands in the sequence.
type SessionStatus string

const (
	StatusActive   SessionStatus = "active"   // Steps remain
	StatusFinished SessionStatus = "finished" // Cursor reached the end of the script
)

// State represents the current snapshot of one session.
//
// Cursor is the count of steps already executed (0..N). It is mutated
// only by Advance (+1) and Reset (back to 0); it is monotonic between
// resets. The Transcript holds the user/assistant turns produced so
// far, two per executed step.
type State struct {
	Cursor     int           `json:"cursor"`
	Status     SessionStatus `json:"status"`
	Transcript []Turn        `json:"transcript"`
}

// NewState creates a clean state at the start of the sequence.
func NewState() *State {
	return &State{
		Cursor: 0,
		Status: StatusActive,
	}
}

// Clone returns a deep copy of the state. Stores use this so callers
// can never mutate persisted state through a shared slice.
func (s *State) Clone() *State {
	c := *s
	if s.Transcript != nil {
		c.Transcript = make([]Turn, len(s.Transcript))
		copy(c.Transcript, s.Transcript)
	}
	return &c
}
