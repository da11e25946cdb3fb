package provider

import "context"

// Client is the interface all model providers implement.
// The pipeline only needs a synchronous completion call; everything a
// provider does beyond that (retries, rate limiting) stays behind this
// boundary.
type Client interface {
	// Generate sends a prompt and returns the complete response.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Info returns metadata about the provider (name, base URL, default model)
	Info() Info

	// IsAvailable checks if the provider is configured and ready to use.
	IsAvailable() bool

	// Health performs a connectivity check against the provider.
	// Returns nil if healthy, error describing the problem otherwise.
	Health(ctx context.Context) error

	// Close cleans up any resources used by the provider.
	Close() error
}
