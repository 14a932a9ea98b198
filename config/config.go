// Package config holds the analyzer configuration: global defaults,
// per-model profiles with optional pricing, and the single place where
// override/profile/default precedence is resolved.
package config

import "github.com/randalmurphal/promptlint/tokenizer"

// DefaultModelName is the profile every unknown model name resolves to.
const DefaultModelName = "default"

// Fallback values used when the config source omits a defaults field.
const (
	DefaultExpectedOutputTokens = 300
	DefaultMaxInputTokens       = 2500
)

// Pricing is a per-model cost profile in currency units per 1000 tokens.
type Pricing struct {
	InputPer1K  float64 `json:"input_per_1k" yaml:"input_per_1k" toml:"input_per_1k"`
	OutputPer1K float64 `json:"output_per_1k" yaml:"output_per_1k" toml:"output_per_1k"`
	Currency    string  `json:"currency" yaml:"currency" toml:"currency"`
}

// ModelProfile describes one model's analysis-relevant properties.
// Pricing is nil when the model has no cost profile.
type ModelProfile struct {
	Name                   string   `json:"name" yaml:"name" toml:"name"`
	ContextWindowTokens    int      `json:"context_window_tokens" yaml:"context_window_tokens" toml:"context_window_tokens"`
	DefaultMaxOutputTokens int      `json:"default_max_output_tokens" yaml:"default_max_output_tokens" toml:"default_max_output_tokens"`
	Tokenizer              string   `json:"tokenizer" yaml:"tokenizer" toml:"tokenizer"`
	Pricing                *Pricing `json:"pricing,omitempty" yaml:"pricing" toml:"pricing"`
}

// Defaults are the global fallback values applied when neither a
// per-call override nor a model profile supplies one.
type Defaults struct {
	Model                string `json:"model" yaml:"model" toml:"model"`
	Tokenizer            string `json:"tokenizer" yaml:"tokenizer" toml:"tokenizer"`
	ExpectedOutputTokens int    `json:"expected_output_tokens" yaml:"expected_output_tokens" toml:"expected_output_tokens"`
	MaxInputTokens       int    `json:"max_input_tokens" yaml:"max_input_tokens" toml:"max_input_tokens"`
}

// Config is the loaded analyzer configuration. It is built once (by New
// or Load) and read-only afterwards; concurrent analyses may share one
// Config freely.
type Config struct {
	Defaults Defaults
	Models   map[string]ModelProfile
}

// New returns the built-in default configuration: global defaults plus a
// synthesized "default" model profile with no pricing.
func New() *Config {
	cfg := &Config{
		Defaults: Defaults{
			Model:                DefaultModelName,
			Tokenizer:            tokenizer.ApproxName,
			ExpectedOutputTokens: DefaultExpectedOutputTokens,
			MaxInputTokens:       DefaultMaxInputTokens,
		},
		Models: make(map[string]ModelProfile),
	}
	cfg.ensureDefaultProfile()
	return cfg
}

// ensureDefaultProfile synthesizes the "default" model entry when the
// source config does not define one; resolution relies on it existing.
func (c *Config) ensureDefaultProfile() {
	if _, ok := c.Models[DefaultModelName]; ok {
		return
	}
	c.Models[DefaultModelName] = ModelProfile{
		Name:                   DefaultModelName,
		DefaultMaxOutputTokens: c.Defaults.ExpectedOutputTokens,
		Tokenizer:              c.Defaults.Tokenizer,
	}
}

// Model returns the profile for name, falling back to the "default"
// profile for unknown names. An empty name means the configured default
// model. Unknown names are a deliberate leniency, not an error.
func (c *Config) Model(name string) ModelProfile {
	if name == "" {
		name = c.Defaults.Model
	}
	if p, ok := c.Models[name]; ok {
		return p
	}
	return c.Models[DefaultModelName]
}

// Pricing returns the pricing profile for a model, or nil when the
// resolved profile has none.
func (c *Config) Pricing(model string) *Pricing {
	return c.Model(model).Pricing
}

// Overrides are per-call settings that take precedence over model
// profiles and global defaults. Zero values mean "not overridden".
type Overrides struct {
	Model                string
	Tokenizer            string
	ExpectedOutputTokens int
	MaxInputTokens       int
}

// Resolved is the effective settings for one analysis call.
type Resolved struct {
	Model                string
	Tokenizer            string
	ExpectedOutputTokens int
	MaxInputTokens       int
}

// Resolve computes effective settings with the precedence
// override > model profile > global default.
func (c *Config) Resolve(o Overrides) Resolved {
	model := o.Model
	if model == "" {
		model = c.Defaults.Model
	}
	profile := c.Model(model)

	tok := o.Tokenizer
	if tok == "" {
		tok = profile.Tokenizer
	}
	if tok == "" {
		tok = c.Defaults.Tokenizer
	}

	expected := o.ExpectedOutputTokens
	if expected == 0 {
		expected = profile.DefaultMaxOutputTokens
	}
	if expected == 0 {
		expected = c.Defaults.ExpectedOutputTokens
	}

	maxInput := o.MaxInputTokens
	if maxInput == 0 {
		maxInput = c.Defaults.MaxInputTokens
	}

	return Resolved{
		Model:                model,
		Tokenizer:            tok,
		ExpectedOutputTokens: expected,
		MaxInputTokens:       maxInput,
	}
}
