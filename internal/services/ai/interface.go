// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider handles chat completions against an LLM endpoint.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, prompt string) (string, error)
	StreamCompletion(ctx context.Context, prompt string, onDelta func(string) error) error
	ModelName() string
}
