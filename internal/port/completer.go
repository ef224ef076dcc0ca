package port

import "context"

// TextCompleter abstracts an LLM backend: it takes a fully assembled prompt
// and returns the generated text. Implementations live under
// internal/provider, one per backend.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
