/*
Package soulmate drives a scripted conversation against a language-model
provider, one step at a time, under explicit user control.

An ordered, immutable Script of user turns is fixed at startup. The
Sequencer owns the script and advances a per-session cursor through it:
each Advance sends the next scripted prompt (plus the accumulated
transcript) to the provider and records both turns. Sessions are plain
state passed in and out of every call, so the core runs unchanged behind
a blocking console loop, a session-backed web page, or an MCP server.

# Usage

	seq, err := soulmate.New(script.Default(), completer)
	if err != nil {
		log.Fatal(err)
	}

	state := seq.NewSession()
	for seq.HasNext(state) {
		reply, err := seq.Advance(ctx, state)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(reply)
	}

The cursor only moves on success: a provider failure leaves the state
untouched, so the caller may retry by calling Advance again.
*/
package soulmate
