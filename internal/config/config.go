package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
	"github.com/felixgeelhaar/lettercraft/internal/letter"
	"github.com/felixgeelhaar/lettercraft/internal/provider"
)

// DefaultPath is where the config file is looked up when no path is given.
const DefaultPath = "lettercraft.yaml"

// DefaultModel is used when neither the config file nor the environment
// names a model.
const DefaultModel = "gpt-4o-mini"

// DefaultTemperature matches the generation temperature the interactive
// form starts from.
const DefaultTemperature = 0.2

// Config is the resolved runtime configuration: file values overlaid
// with environment variables.
type Config struct {
	// Model is the model identifier used for all three pipeline stages.
	Model string `yaml:"model,omitempty"`

	// Temperature is the sampling temperature passed to every stage.
	Temperature float64 `yaml:"temperature,omitempty"`

	// InstructionsPath points at the canonical instruction file.
	InstructionsPath string `yaml:"instructions,omitempty"`

	// OutputDir is where letter artifacts are written.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Providers carries optional per-provider overrides (API key, base
	// URL, default model). Providers absent here are still discovered
	// from the environment.
	Providers []provider.Config `yaml:"providers,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Model:            DefaultModel,
		Temperature:      DefaultTemperature,
		InstructionsPath: letter.DefaultInstructionsPath,
		OutputDir:        ".",
	}
}

// Load reads the config file at path, overlays environment variables,
// and fills in defaults. A missing file is not an error: the defaults
// plus environment apply. path == "" means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to env overlay.
	case err != nil:
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read config file", err)
	default:
		// ${VAR} references in the file resolve against the environment,
		// so API keys never have to live in the file itself.
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigUnmarshal, "failed to parse config file", err).
				WithSuggestion("Check the YAML syntax of " + path)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays LETTERCRAFT_* environment variables. Environment
// wins over file values.
func (c *Config) applyEnv() {
	if model := strings.TrimSpace(os.Getenv("LETTERCRAFT_MODEL")); model != "" {
		c.Model = model
	}
	if path := strings.TrimSpace(os.Getenv("LETTERCRAFT_INSTRUCTIONS")); path != "" {
		c.InstructionsPath = path
	}
}

// applyDefaults backfills fields an explicit config left blank.
// Temperature is deliberately absent here: Default() seeds it before the
// file is read, and yaml only overwrites keys the file actually sets, so
// an explicit `temperature: 0.0` survives.
func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.InstructionsPath == "" {
		c.InstructionsPath = letter.DefaultInstructionsPath
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}

// Validate checks values a run would otherwise fail on halfway through.
func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New(errors.ErrCodeInputTempInvalid,
			"temperature must be between 0.0 and 2.0").
			WithSuggestion("Pick a value like 0.2 for consistent letters")
	}

	for _, p := range c.Providers {
		switch p.Name {
		case "openai", "anthropic", "gemini":
		default:
			return errors.NewProviderNotFoundError(p.Name)
		}
	}

	return nil
}

// Registry builds the provider registry for this configuration:
// file-level provider overrides first, environment discovery for the
// rest.
func (c *Config) Registry() (*provider.Registry, error) {
	return provider.LoadRegistryFromEnv(c.Providers)
}
