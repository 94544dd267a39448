// Package lyricpos sorts the words of song lyrics into grammatical categories
// from the output of an external part-of-speech tagger.
//
// The flow is strictly forward:
//
//	tagger output → ignore filter → hyphenation merge → rule table → counts + diagnostics
//
// An Engine holds configuration only; every call builds its working state
// from scratch, so one Engine may serve concurrent callers.
package lyricpos

import (
	"strings"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
	"github.com/cognicore/lyricpos/pkg/lyricpos/diagnostics"
	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/ignore"
	"github.com/cognicore/lyricpos/pkg/lyricpos/ingest"
	"github.com/cognicore/lyricpos/pkg/lyricpos/rules"
	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

// Engine is the categorization facade.
type Engine struct {
	tagger        tagger.Tagger
	registry      category.Registry
	rules         *rules.Engine
	defaultIgnore string
}

// Options configures an Engine.
type Options struct {
	Tagger        tagger.Tagger
	Registry      category.Registry // zero value selects the canonical registry
	Rules         []rules.Rule      // nil selects the table matching Registry
	Overrides     *rules.Overrides  // nil selects rules.DefaultOverrides
	MultiCategory bool
	DefaultIgnore string // merged into every call's ignore configuration
}

// Analysis is the outcome of one call.
type Analysis struct {
	Result      freq.Result        `json:"result"`
	Diagnostics diagnostics.Bundle `json:"diagnostics"`
}

// New creates an Engine. It fails only when the rule table targets
// categories outside the registry.
func New(opts Options) (*Engine, error) {
	reg := opts.Registry
	if reg.Len() == 0 {
		reg = category.Canonical()
	}
	ov := rules.DefaultOverrides()
	if opts.Overrides != nil {
		ov = *opts.Overrides
	}
	table := opts.Rules
	if len(table) == 0 {
		table = rules.ForRegistry(reg, ov)
	}

	re := rules.NewEngine(rules.Options{Rules: table, MultiCategory: opts.MultiCategory})
	if err := re.Validate(reg); err != nil {
		return nil, err
	}

	return &Engine{
		tagger:        opts.Tagger,
		registry:      reg,
		rules:         re,
		defaultIgnore: opts.DefaultIgnore,
	}, nil
}

// Registry returns the category registry results are keyed by.
func (e *Engine) Registry() category.Registry { return e.registry }

// IgnoreSet builds the exclusion set for ignoreConfig, including the
// engine default.
func (e *Engine) IgnoreSet(ignoreConfig string) *ignore.Set {
	set := ignore.Parse(e.defaultIgnore)
	set.Merge(ignore.Parse(ignoreConfig))
	return set
}

// Analyze tags the lowercased text and categorizes it. Without a tagger every
// category is empty.
func (e *Engine) Analyze(text, ignoreConfig string) Analysis {
	var sentences []tagger.Sentence
	if e.tagger != nil {
		sentences = e.tagger.Tag(strings.ToLower(text))
	}
	return e.AnalyzeSentences(sentences, ignoreConfig)
}

// AnalyzeSentences categorizes already tagged text.
func (e *Engine) AnalyzeSentences(sentences []tagger.Sentence, ignoreConfig string) Analysis {
	processed := ingest.NewPipeline(e.IgnoreSet(ignoreConfig)).Process(sentences)

	agg := freq.NewAggregator(e.registry)
	col := diagnostics.NewCollector()
	col.Raw(sentences)
	for _, w := range processed.Ignored {
		col.Ignored(w)
	}

	for _, tok := range processed.Tokens {
		col.Seen(tok.Text)

		rule, ok := e.rules.Match(tok)
		if !ok {
			continue
		}
		col.Processed(tok.Text, rule.Name)

		if !e.rules.MultiCategory() {
			agg.Add(rule.Category, tok.Text)
			continue
		}
		for _, c := range e.rules.ClassifyAll(tok) {
			agg.Add(c, tok.Text)
		}
	}

	return Analysis{Result: agg.Result(), Diagnostics: col.Bundle()}
}
