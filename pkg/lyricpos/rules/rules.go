// Package rules maps tagged tokens to grammatical categories through an
// ordered rule table. The first matching rule wins unless the engine runs in
// multi-category mode.
package rules

import (
	"fmt"
	"strings"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
	"github.com/cognicore/lyricpos/pkg/lyricpos/ingest"
	"github.com/cognicore/lyricpos/pkg/lyricpos/internalerr"
)

// Strategy selects how a rule inspects a token.
type Strategy int

const (
	// Lexical matches the token text against a closed word table.
	Lexical Strategy = iota
	// Tags matches on tag membership only.
	Tags
	// Literal matches a substring of the token text, then tag membership.
	Literal
)

func (s Strategy) String() string {
	switch s {
	case Lexical:
		return "lexical"
	case Tags:
		return "tags"
	case Literal:
		return "literal"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Rule is one predicate → category mapping.
type Rule struct {
	Name     string
	Category category.Category
	Strategy Strategy

	Words     map[string]struct{} // Lexical
	Substring string              // Literal

	AnyTags  []string // at least one present (ignored when empty)
	AllTags  []string // every one present
	NoneTags []string // none present
}

// Match reports whether tok satisfies the rule.
func (r Rule) Match(tok ingest.Token) bool {
	switch r.Strategy {
	case Lexical:
		if _, ok := r.Words[tok.Text]; !ok {
			return false
		}
	case Literal:
		if r.Substring == "" || !strings.Contains(tok.Text, r.Substring) {
			return false
		}
	case Tags:
		if len(r.AnyTags) == 0 && len(r.AllTags) == 0 {
			return false
		}
	default:
		return false
	}

	if len(r.AnyTags) > 0 && !tok.Tags.HasAny(r.AnyTags...) {
		return false
	}
	for _, t := range r.AllTags {
		if !tok.Tags.Has(t) {
			return false
		}
	}
	return !tok.Tags.HasAny(r.NoneTags...)
}

// Engine evaluates a rule table in order.
type Engine struct {
	rules []Rule
	multi bool
}

// Options configures an Engine.
type Options struct {
	Rules         []Rule // defaults to Canonical(DefaultOverrides())
	MultiCategory bool   // push tokens into every matching category
}

// NewEngine creates a rule engine.
func NewEngine(opts Options) *Engine {
	rs := opts.Rules
	if len(rs) == 0 {
		rs = Canonical(DefaultOverrides())
	}
	return &Engine{rules: rs, multi: opts.MultiCategory}
}

// MultiCategory reports whether the engine assigns several categories.
func (e *Engine) MultiCategory() bool { return e.multi }

// Match returns the first rule tok satisfies.
func (e *Engine) Match(tok ingest.Token) (Rule, bool) {
	for _, r := range e.rules {
		if r.Match(tok) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify returns the category of the first matching rule.
func (e *Engine) Classify(tok ingest.Token) (category.Category, bool) {
	r, ok := e.Match(tok)
	if !ok {
		return "", false
	}
	return r.Category, true
}

// ClassifyAll returns every matching category in rule order, without
// duplicates. Without multi-category mode it is Classify as a slice.
func (e *Engine) ClassifyAll(tok ingest.Token) []category.Category {
	if !e.multi {
		if c, ok := e.Classify(tok); ok {
			return []category.Category{c}
		}
		return nil
	}

	var out []category.Category
	seen := make(map[category.Category]struct{})
	for _, r := range e.rules {
		if !r.Match(tok) {
			continue
		}
		if _, dup := seen[r.Category]; dup {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// Validate checks every rule targets a category of reg.
func (e *Engine) Validate(reg category.Registry) error {
	for _, r := range e.rules {
		if !reg.Contains(r.Category) {
			return fmt.Errorf("%w: rule %q targets %q outside %s registry",
				internalerr.ErrInvalidConfig, r.Name, r.Category, reg.Name())
		}
	}
	return nil
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
