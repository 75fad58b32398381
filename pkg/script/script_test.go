package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/404-atomic/soulmate-flow/pkg/script"
)

func TestDefault(t *testing.T) {
	scr := script.Default()

	require.Equal(t, 3, scr.Len())
	assert.Equal(t, "hello", scr.At(0).Prompt)
	assert.Equal(t, "my name is kenz", scr.At(1).Prompt)
	assert.Equal(t, "what is my name", scr.At(2).Prompt)
}

func TestParse(t *testing.T) {
	data := []byte(`
steps:
  - name: opening
    prompt: "hi there"
    instruction: "Reply in English."
  - name: followup
    prompt: "and then?"
`)

	scr, err := script.Parse(data)
	require.NoError(t, err)
	require.Equal(t, 2, scr.Len())
	assert.Equal(t, "opening", scr.At(0).Name)
	assert.Equal(t, "Reply in English.", scr.At(0).Instruction)
	assert.Empty(t, scr.At(1).Instruction)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty document", ""},
		{"no steps", "steps: []"},
		{"blank prompt", "steps:\n  - name: bad\n    prompt: \"  \""},
		{"not yaml", "{steps: ["},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := script.Load("/nonexistent/script.yaml")
	assert.Error(t, err)
}
