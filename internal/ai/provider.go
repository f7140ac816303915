package ai

import "context"

// Provider is a single text-generation backend. The service tries
// configured providers in preference order; any implementation must
// classify its failures via ProviderError so the retry loop can tell
// transient from permanent ones.
type Provider interface {
	// Name returns the provider identifier together with its model,
	// e.g. "openai/gpt-3.5-turbo".
	Name() string

	// Generate sends the system and user prompts and returns the raw
	// completion text.
	Generate(ctx context.Context, system, user string) (string, error)
}
