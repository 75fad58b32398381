// Package script builds the fixed step list a sequencer runs. It ships
// the built-in three-step demo script and can load richer scripts from
// YAML files.
package script

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

// Default returns the built-in demo script: three user turns that
// exercise the provider's short-term memory.
func Default() domain.Script {
	return domain.Script{
		{Name: "greet", Prompt: "hello"},
		{Name: "introduce", Prompt: "my name is kenz"},
		{Name: "recall", Prompt: "what is my name"},
	}
}

// file is the YAML document shape for a script file.
type file struct {
	Steps []domain.Step `yaml:"steps"`
}

// Load reads and parses a script file from disk.
func Load(path string) (domain.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML script document and validates it.
func Parse(data []byte) (domain.Script, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid script yaml: %w", err)
	}

	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("script must define at least one step")
	}

	for i, step := range f.Steps {
		if strings.TrimSpace(step.Prompt) == "" {
			return nil, fmt.Errorf("step %d (%q) has an empty prompt", i, step.Name)
		}
	}

	return domain.Script(f.Steps), nil
}
