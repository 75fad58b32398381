package soulmate_test

import (
	"context"
	"fmt"
	"log"

	soulmate "github.com/404-atomic/soulmate-flow"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
)

// ExampleNew demonstrates driving a scripted conversation step by step.
// The completer here is a deterministic stand-in; production code wires
// an OpenAI-backed one instead.
func ExampleNew() {
	script := domain.Script{
		{Name: "greet", Prompt: "hello"},
		{Name: "introduce", Prompt: "my name is kenz"},
		{Name: "recall", Prompt: "what is my name"},
	}

	seq, err := soulmate.New(script, &countingCompleter{})
	if err != nil {
		log.Fatal(err)
	}

	state := seq.NewSession()
	ctx := context.Background()

	for seq.HasNext(state) {
		prompt := seq.Script().At(state.Cursor).Prompt
		reply, err := seq.Advance(ctx, state)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %s\n", prompt, reply)
	}

	// Output:
	// hello -> answer-1
	// my name is kenz -> answer-2
	// what is my name -> answer-3
}
