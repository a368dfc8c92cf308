// Package llm is the transport for the pack authoring assistant. Every call
// is a single prompt answered with JSON that matches a schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers a prompt with structured JSON.
type Provider interface {
	// Complete sends the prompt and returns JSON that has already been
	// checked against the prompt's schema, when one is set.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Model returns the model id requests are sent to.
	Model() string
}

// Prompt is one single-turn request.
type Prompt struct {
	// Purpose labels the request in logs and the request log, e.g. "explain".
	Purpose string

	// Instructions is the system prompt.
	Instructions string

	// Input is the user turn.
	Input string

	// Schema, when set, selects the provider's structured output mode and
	// is used to check the reply.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Completion is a provider's reply.
type Completion struct {
	JSON   json.RawMessage
	Model  string
	Tokens Tokens
}

// Tokens counts the tokens a request consumed.
type Tokens struct {
	In  int
	Out int
}

// Total returns In + Out.
func (t Tokens) Total() int { return t.In + t.Out }
