package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
	"github.com/cognicore/lyricpos/pkg/lyricpos/internalerr"
	"github.com/cognicore/lyricpos/pkg/lyricpos/rules"
)

// Config is the YAML configuration of an analysis run.
type Config struct {
	Registry      string    `yaml:"registry"`
	MultiCategory bool      `yaml:"multi_category"`
	Ignore        string    `yaml:"ignore"`
	Overrides     Overrides `yaml:"overrides"`
	Store         Store     `yaml:"store"`
	LogLevel      string    `yaml:"log_level"`
}

// Overrides lists the closed-class words classified before tags are read.
// An omitted list keeps the default table.
type Overrides struct {
	Pronouns []string `yaml:"pronouns"`
	Adverbs  []string `yaml:"adverbs"`
}

// Store configures persistence.
type Store struct {
	Path string `yaml:"path"` // empty selects the in-memory store
}

// Default returns the canonical configuration.
func Default() Config {
	ov := rules.DefaultOverrides()
	return Config{
		Registry: "canonical",
		Overrides: Overrides{
			Pronouns: ov.Pronouns,
			Adverbs:  ov.Adverbs,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Stoplist is a stop word list for word-frequency statistics.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist reads a `terms:` list. Blank entries are dropped.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%w: stoplist %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	terms := sl.Terms[:0]
	for _, t := range sl.Terms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	sl.Terms = terms
	return &sl, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := category.ByName(c.Registry); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", internalerr.ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// RuleOverrides converts the override lists for the rule engine.
func (c Config) RuleOverrides() rules.Overrides {
	return rules.Overrides{
		Pronouns: c.Overrides.Pronouns,
		Adverbs:  c.Overrides.Adverbs,
	}
}
