// Package ports defines the interfaces between the sequencer core and
// its adapters (session persistence, the language-model provider),
// following a hexagonal layout: the core depends on these interfaces,
// adapters implement them.
package ports
