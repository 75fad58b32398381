package domain

// Step is one scripted user turn in the conversation sequence.
// A step's ordinal is its position in the Script (0-based).
type Step struct {
	// Name is a human-readable label used in logs and UIs.
	Name string `json:"name" yaml:"name"`

	// Prompt is the user-turn text sent to the provider for this step.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Instruction is an optional system prompt prepended to the
	// conversation for this step's provider call only.
	Instruction string `json:"instruction,omitempty" yaml:"instruction,omitempty"`
}

// Script is the ordered list of steps. It is fixed at startup and never
// mutated afterwards; sessions advance through it by cursor only.
type Script []Step

// Len returns the number of steps in the script.
func (s Script) Len() int {
	return len(s)
}

// At returns the step at the given ordinal. The caller is responsible
// for bounds checking (the sequencer guards with ErrOutOfRange).
func (s Script) At(i int) Step {
	return s[i]
}
