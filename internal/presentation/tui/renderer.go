package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders assistant markdown using
// glamour. Render errors fall through to the raw text at the call site.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
