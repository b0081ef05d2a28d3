package driven

import "context"

// Summariser condenses arbitrary research text into a networking brief.
// This is an optional service - when nil, research degrades to a
// manual-notes brief assembled from the raw material.
type Summariser interface {
	// Summarise produces a condensed text from the prompt.
	Summarise(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
