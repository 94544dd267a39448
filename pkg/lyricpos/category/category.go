// Package category defines the closed set of grammatical buckets a word can
// be sorted into, and the registries that decide which buckets a result
// carries.
package category

import (
	"fmt"
	"strings"

	"github.com/cognicore/lyricpos/pkg/lyricpos/internalerr"
)

// Category is one grammatical output bucket.
type Category string

// Canonical categories.
const (
	Noun         Category = "noun"
	Verb         Category = "verb"
	Adjective    Category = "adjective"
	Adverb       Category = "adverb"
	Pronoun      Category = "pronoun"
	Preposition  Category = "preposition"
	Conjunction  Category = "conjunction"
	Determiner   Category = "determiner"
	Interjection Category = "interjection"
)

// Extended categories, only present in the Extended registry.
const (
	Auxiliary    Category = "auxiliary"
	Particle     Category = "particle"
	Number       Category = "number"
	Abbreviation Category = "abbreviation"
)

var all = []Category{
	Noun, Verb, Adjective, Adverb, Pronoun, Preposition, Conjunction, Determiner, Interjection,
	Auxiliary, Particle, Number, Abbreviation,
}

// Parse resolves a category name, case-insensitively.
func Parse(name string) (Category, error) {
	n := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range all {
		if c == n {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", internalerr.ErrUnknownCategory, name)
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }

// Registry is an ordered, immutable set of categories.
type Registry struct {
	name  string
	order []Category
	index map[Category]int
}

func newRegistry(name string, cats ...Category) Registry {
	idx := make(map[Category]int, len(cats))
	for i, c := range cats {
		idx[c] = i
	}
	return Registry{name: name, order: cats, index: idx}
}

// Canonical returns the nine-category registry.
func Canonical() Registry {
	return newRegistry("canonical",
		Noun, Verb, Adjective, Adverb, Pronoun, Preposition, Conjunction, Determiner, Interjection)
}

// Extended returns the canonical registry plus auxiliary, particle, number
// and abbreviation.
func Extended() Registry {
	return newRegistry("extended",
		Noun, Verb, Adjective, Adverb, Pronoun, Preposition, Conjunction, Determiner, Interjection,
		Auxiliary, Particle, Number, Abbreviation)
}

// ByName returns the registry called name ("canonical" or "extended").
func ByName(name string) (Registry, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "canonical":
		return Canonical(), nil
	case "extended":
		return Extended(), nil
	default:
		return Registry{}, fmt.Errorf("%w: registry %q", internalerr.ErrInvalidConfig, name)
	}
}

// Name returns the registry name.
func (r Registry) Name() string { return r.name }

// Contains reports whether c belongs to the registry.
func (r Registry) Contains(c Category) bool {
	_, ok := r.index[c]
	return ok
}

// Categories returns the categories in registry order.
func (r Registry) Categories() []Category {
	out := make([]Category, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of categories.
func (r Registry) Len() int { return len(r.order) }
