package ports

import "context"

// Generator produces an HTML-fragment cheat sheet for a topic. Description
// is optional extra context and may be empty. Implementations never retry;
// callers own the retry policy. Failures wrap domain.ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, topic, description string) (string, error)
}
