// Package domain contains the core data types of the soulmate-flow
// conversation stepper: the immutable Script of steps, the per-session
// State (cursor + transcript), and the error taxonomy shared by all
// adapters.
//
// The package has no dependencies on adapters or frameworks. State is
// plain data: it is passed into and returned from the sequencer, never
// held as ambient global state, so the core stays testable independent
// of any particular front end.
package domain
