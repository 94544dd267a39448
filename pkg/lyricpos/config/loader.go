package config

import (
	"fmt"
	"strings"

	"github.com/cognicore/lyricpos/pkg/lyricpos"
	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
	"github.com/cognicore/lyricpos/pkg/lyricpos/ignore"
	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

// Loader loads configuration files and constructs components
type Loader struct {
	ConfigPath   string
	StoplistPath string
	Tagger       tagger.Tagger

	Registry      string // replaces the configured registry when set
	MultiCategory bool   // forces multi-category mode
}

// Components holds all loaded configuration components
type Components struct {
	Config   Config
	Registry category.Registry
	Engine   *lyricpos.Engine
	Stops    *ignore.Set
}

// Load reads the configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		loaded, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if l.Registry != "" {
		cfg.Registry = l.Registry
	}
	if l.MultiCategory {
		cfg.MultiCategory = true
	}

	reg, err := category.ByName(cfg.Registry)
	if err != nil {
		return nil, err
	}

	ov := cfg.RuleOverrides()
	eng, err := lyricpos.New(lyricpos.Options{
		Tagger:        l.Tagger,
		Registry:      reg,
		Overrides:     &ov,
		MultiCategory: cfg.MultiCategory,
		DefaultIgnore: cfg.Ignore,
	})
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	stops := ignore.Parse("")
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stops = ignore.Parse(strings.Join(sl.Terms, ","))
	}

	return &Components{
		Config:   cfg,
		Registry: reg,
		Engine:   eng,
		Stops:    stops,
	}, nil
}
