// Package tagger describes the external part-of-speech tagger the engine
// consumes. The tagger itself is a black box: given lowercased text it returns
// sentences of terms, each term carrying the tag labels the tagger assigned.
package tagger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Term is one tagger-emitted unit of text.
type Term struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// Sentence is an ordered run of terms.
type Sentence struct {
	Text  string `json:"text"`
	Terms []Term `json:"terms"`
}

// Tagger tags lowercased text.
type Tagger interface {
	Tag(text string) []Sentence
}

// Func adapts a plain function to the Tagger interface.
type Func func(text string) []Sentence

// Tag implements Tagger.
func (f Func) Tag(text string) []Sentence { return f(text) }

// Static returns a tagger that always yields the given sentences.
func Static(sentences []Sentence) Tagger {
	return Func(func(string) []Sentence { return sentences })
}

// Replay serves previously recorded tagger output keyed by input text.
// Unknown text yields no sentences.
type Replay struct {
	mu       sync.RWMutex
	recorded map[string][]Sentence
}

// NewReplay creates an empty replay tagger.
func NewReplay() *Replay {
	return &Replay{recorded: make(map[string][]Sentence)}
}

// Add records the output for text.
func (r *Replay) Add(text string, sentences []Sentence) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded[replayKey(text)] = sentences
}

// Tag implements Tagger.
func (r *Replay) Tag(text string) []Sentence {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recorded[replayKey(text)]
}

func replayKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// DecodeJSON reads tagger output in the `[{text, terms: [{text, tags}]}]`
// shape. Extra fields emitted by the tagger are ignored.
func DecodeJSON(r io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	if err := json.NewDecoder(r).Decode(&sentences); err != nil {
		return nil, fmt.Errorf("decode tagger output: %w", err)
	}
	return sentences, nil
}

// TagSet is an unordered set of tag labels.
type TagSet map[string]struct{}

// NewTagSet builds a set from labels; blanks are dropped.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// Has reports whether tag is present.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// HasAny reports whether any of tags is present.
func (s TagSet) HasAny(tags ...string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Union adds every label of other to s and returns s.
func (s TagSet) Union(other TagSet) TagSet {
	for t := range other {
		s[t] = struct{}{}
	}
	return s
}

// Sorted returns the labels in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
