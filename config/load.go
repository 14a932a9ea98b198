package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrMalformed indicates the configuration source could not be parsed
// into the expected structure. Callers may substitute New() instead of
// failing, but analysis never proceeds on a half-parsed config.
var ErrMalformed = errors.New("malformed config")

// fileConfig mirrors the on-disk config shape. Models are a list so the
// file stays readable; they are keyed by name after decoding.
type fileConfig struct {
	Defaults fileDefaults `yaml:"defaults" toml:"defaults"`
	Models   []fileModel  `yaml:"models" toml:"models"`
}

type fileDefaults struct {
	Model                string `yaml:"model" toml:"model"`
	Tokenizer            string `yaml:"tokenizer" toml:"tokenizer"`
	ExpectedOutputTokens int    `yaml:"expected_output_tokens" toml:"expected_output_tokens"`
	MaxInputTokens       int    `yaml:"max_input_tokens" toml:"max_input_tokens"`
}

type fileModel struct {
	Name                   string       `yaml:"name" toml:"name"`
	ContextWindowTokens    int          `yaml:"context_window_tokens" toml:"context_window_tokens"`
	DefaultMaxOutputTokens int          `yaml:"default_max_output_tokens" toml:"default_max_output_tokens"`
	Tokenizer              string       `yaml:"tokenizer" toml:"tokenizer"`
	Pricing                *filePricing `yaml:"pricing" toml:"pricing"`
}

type filePricing struct {
	InputPer1K  float64 `yaml:"input_per_1k" toml:"input_per_1k"`
	OutputPer1K float64 `yaml:"output_per_1k" toml:"output_per_1k"`
	Currency    string  `yaml:"currency" toml:"currency"`
}

// Load reads a configuration file. The format is chosen by extension:
// ".toml" decodes as TOML, everything else as YAML. Returns an error
// wrapping ErrMalformed when the content does not parse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return ParseYAML(data)
}

// ParseYAML decodes YAML configuration bytes.
func ParseYAML(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromFile(fc), nil
}

// ParseTOML decodes TOML configuration bytes.
func ParseTOML(data []byte) (*Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromFile(fc), nil
}

// fromFile materializes defaults and profile fallbacks once, at load
// time, so no call site needs its own fallback logic.
func fromFile(fc fileConfig) *Config {
	cfg := New()

	if fc.Defaults.Model != "" {
		cfg.Defaults.Model = fc.Defaults.Model
	}
	if fc.Defaults.Tokenizer != "" {
		cfg.Defaults.Tokenizer = fc.Defaults.Tokenizer
	}
	if fc.Defaults.ExpectedOutputTokens != 0 {
		cfg.Defaults.ExpectedOutputTokens = fc.Defaults.ExpectedOutputTokens
	}
	if fc.Defaults.MaxInputTokens != 0 {
		cfg.Defaults.MaxInputTokens = fc.Defaults.MaxInputTokens
	}

	cfg.Models = make(map[string]ModelProfile, len(fc.Models)+1)
	for _, m := range fc.Models {
		profile := ModelProfile{
			Name:                   m.Name,
			ContextWindowTokens:    m.ContextWindowTokens,
			DefaultMaxOutputTokens: m.DefaultMaxOutputTokens,
			Tokenizer:              m.Tokenizer,
		}
		if profile.DefaultMaxOutputTokens == 0 {
			profile.DefaultMaxOutputTokens = cfg.Defaults.ExpectedOutputTokens
		}
		if profile.Tokenizer == "" {
			profile.Tokenizer = cfg.Defaults.Tokenizer
		}
		if m.Pricing != nil {
			currency := m.Pricing.Currency
			if currency == "" {
				currency = "USD"
			}
			profile.Pricing = &Pricing{
				InputPer1K:  m.Pricing.InputPer1K,
				OutputPer1K: m.Pricing.OutputPer1K,
				Currency:    currency,
			}
		}
		cfg.Models[m.Name] = profile
	}
	cfg.ensureDefaultProfile()

	return cfg
}
