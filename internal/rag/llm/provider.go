package llm

import "context"

// Provider issues one chat-style completion with a system instruction
// and a single user turn. Model identifier and sampling temperature
// are fixed per provider instance.
type Provider interface {
	Generate(ctx context.Context, systemInstruction string, userPrompt string) (string, error)
}
