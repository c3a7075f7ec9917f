// Package config loads the syllog pipeline configuration from YAML.
// Everything the pipeline needs to reach its external collaborator —
// endpoint, credentials, model, prompt overrides — is carried here
// explicitly; no package reads process-wide environment state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/syllog/pkg/syllog/internalerr"
)

// Config is the top-level configuration file.
type Config struct {
	LLM    LLM    `yaml:"llm"`
	Engine Engine `yaml:"engine"`
	Store  Store  `yaml:"store"`
}

// LLM configures the translation/refinement endpoint.
type LLM struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`

	// Optional overrides for the built-in system prompts.
	TranslatePrompt string `yaml:"translate_prompt"`
	RefinePrompt    string `yaml:"refine_prompt"`
}

// Engine configures evaluation.
type Engine struct {
	// Fixpoint switches evaluation from the default single forward
	// pass to iterating until closure.
	Fixpoint bool `yaml:"fixpoint"`

	// MaxFixpointPasses bounds fixpoint iteration; zero uses the
	// engine default.
	MaxFixpointPasses int `yaml:"max_fixpoint_passes"`
}

// Store configures run persistence.
type Store struct {
	// Path to the SQLite database file. Empty keeps runs in memory.
	Path string `yaml:"path"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields required to run the full pipeline.
func (c *Config) Validate() error {
	if c.LLM.Endpoint == "" {
		return fmt.Errorf("%w: llm.endpoint is required", internalerr.ErrInvalidConfig)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("%w: llm.model is required", internalerr.ErrInvalidConfig)
	}
	if c.Engine.MaxFixpointPasses < 0 {
		return fmt.Errorf("%w: engine.max_fixpoint_passes must not be negative", internalerr.ErrInvalidConfig)
	}
	return nil
}
