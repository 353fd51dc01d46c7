package llm

import "context"

// Generator is the text-generation boundary the stages depend on. It returns
// the model's raw text; callers run it through ExtractJSON before trusting it.
// Implementations must not retry internally beyond their HTTP client policy;
// stage-level fallbacks decide what a failure means.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string, temperature float32) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f(ctx, prompt, temperature)
}
