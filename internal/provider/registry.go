package provider

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

// Registry manages all loaded providers
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Client
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Register adds a provider to the registry
func (r *Registry) Register(name string, client Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}

	r.clients[name] = client
	return nil
}

// Get retrieves a provider by name
func (r *Registry) Get(name string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, exists := r.clients[name]
	if !exists {
		return nil, errors.NewProviderNotFoundError(name)
	}

	return client, nil
}

// List returns all registered provider names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}

	return names
}

// ForModel picks the provider responsible for a model identifier.
// Routing follows the vendor prefix of the model name.
func (r *Registry) ForModel(model string) (Client, error) {
	name := ProviderForModel(model)
	if name == "" {
		return nil, errors.NewProviderNotFoundError(fmt.Sprintf("no provider for model %q", model))
	}
	return r.Get(name)
}

// CloseAll closes all registered providers
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, client := range r.clients {
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close provider %s: %w", name, err))
		}
	}

	r.clients = make(map[string]Client)

	if len(errs) > 0 {
		return fmt.Errorf("errors closing providers: %v", errs)
	}

	return nil
}

// ProviderForModel maps a model identifier to its provider name.
// Returns "" when no built-in provider claims the model.
func ProviderForModel(model string) string {
	m := strings.ToLower(model)
	switch {
	case strings.HasPrefix(m, "gpt-"), strings.HasPrefix(m, "o1"), strings.HasPrefix(m, "o3"), strings.HasPrefix(m, "o4"):
		return "openai"
	case strings.HasPrefix(m, "claude-"):
		return "anthropic"
	case strings.HasPrefix(m, "gemini-"):
		return "gemini"
	}
	return ""
}

// apiKeyEnvVars maps provider names to the environment variables
// consulted during auto-discovery.
var apiKeyEnvVars = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"gemini":    "GEMINI_API_KEY",
}

// NewClient constructs a client for a named built-in provider
func NewClient(cfg Config) (Client, error) {
	switch cfg.Name {
	case "openai":
		return NewOpenAIClient(cfg)
	case "anthropic":
		return NewAnthropicClient(cfg)
	case "gemini":
		return NewGeminiClient(cfg)
	default:
		return nil, errors.NewProviderNotFoundError(cfg.Name)
	}
}

// LoadRegistryFromEnv creates a registry by auto-discovering providers
// whose API keys are present in the environment. A provider without a key
// is silently skipped; a registry with zero providers is a configuration
// error, surfaced before any model invocation.
func LoadRegistryFromEnv(configs []Config) (*Registry, error) {
	registry := NewRegistry()

	byName := make(map[string]Config, len(configs))
	for _, cfg := range configs {
		byName[cfg.Name] = cfg
	}

	for name, envVar := range apiKeyEnvVars {
		cfg, ok := byName[name]
		if !ok {
			cfg = Config{Name: name}
		}
		if cfg.APIKey == "" {
			cfg.APIKey = strings.TrimSpace(os.Getenv(envVar))
		}
		if cfg.APIKey == "" {
			continue
		}

		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(name, client); err != nil {
			return nil, err
		}
	}

	if len(registry.List()) == 0 {
		return nil, errors.New(errors.ErrCodeMissingAPIKey,
			"no providers available - set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY").
			WithSuggestion("Export at least one provider API key").
			WithSuggestion("Or configure api_key entries in lettercraft.yaml")
	}

	return registry, nil
}
