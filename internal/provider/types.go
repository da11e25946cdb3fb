package provider

import "time"

// GenerateRequest contains all parameters for generating a response
type GenerateRequest struct {
	// Model is the model identifier to use.
	// Empty means the provider's configured default.
	Model string `json:"model,omitempty"`

	// SystemPrompt sets the system-level instructions
	// (the agent's role, goal, and backstory)
	SystemPrompt string `json:"system_prompt,omitempty"`

	// Prompt is the main input text for the model
	Prompt string `json:"prompt"`

	// MaxTokens limits the maximum response length.
	// Set to 0 to use the provider default.
	MaxTokens int `json:"max_tokens,omitempty"`

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative)
	Temperature float64 `json:"temperature,omitempty"`
}

// GenerateResponse contains the model's response
type GenerateResponse struct {
	// Content is the generated text
	Content string `json:"content"`

	// Model is the actual model that generated the response
	Model string `json:"model"`

	// InputTokens is tokens in the prompt
	InputTokens int `json:"input_tokens,omitempty"`

	// OutputTokens is tokens in the response
	OutputTokens int `json:"output_tokens,omitempty"`

	// TokensUsed is the total tokens consumed (input + output)
	TokensUsed int `json:"tokens_used"`

	// Latency is how long the generation took
	Latency time.Duration `json:"latency"`

	// FinishReason explains why generation stopped
	// Common values: "stop" (natural end), "length" (max tokens)
	FinishReason string `json:"finish_reason"`

	// Provider is the name of the provider that handled this request
	Provider string `json:"provider"`
}

// Info contains metadata about a provider
type Info struct {
	// Name is the provider identifier (e.g., "openai", "anthropic", "gemini")
	Name string

	// BaseURL is the API endpoint the client talks to
	BaseURL string

	// DefaultModel is used when a request does not name a model
	DefaultModel string

	// Description is a human-readable description of the provider
	Description string
}

// Config holds the settings needed to construct an API client
type Config struct {
	// Name is the provider identifier
	Name string `yaml:"name"`

	// APIKey authenticates requests; required for all built-in providers
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the provider's default endpoint (optional)
	BaseURL string `yaml:"base_url,omitempty"`

	// Model is the default model for requests that don't name one
	Model string `yaml:"model,omitempty"`

	// MaxTokens caps response length; 0 uses the provider default
	MaxTokens int `yaml:"max_tokens,omitempty"`
}
