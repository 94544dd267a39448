// Package diagnostics records which words an analysis saw, categorized and
// missed, so an operator can audit the rule table against real lyrics.
package diagnostics

import "github.com/cognicore/lyricpos/pkg/lyricpos/tagger"

// Bundle is the audit record of one analysis. Word lists keep first-seen
// order.
type Bundle struct {
	AllWords       []string          `json:"all_words"`
	ProcessedWords []string          `json:"processed_words"`
	MissedWords    []string          `json:"missed_words"`
	IgnoredWords   []string          `json:"ignored_words"`
	Matches        map[string]string `json:"matches"` // word → first matching rule
	RawTerms       []tagger.Sentence `json:"raw_terms"`
}

// Collector accumulates word sets during one analysis.
type Collector struct {
	all       orderedSet
	processed orderedSet
	ignored   orderedSet
	matches   map[string]string
	raw       []tagger.Sentence
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{matches: make(map[string]string)}
}

// Seen records a post-filter word, whatever its classification outcome.
func (c *Collector) Seen(word string) { c.all.add(word) }

// Processed records a word that matched rule.
func (c *Collector) Processed(word, rule string) {
	c.processed.add(word)
	if _, ok := c.matches[word]; !ok {
		c.matches[word] = rule
	}
}

// Ignored records a word removed by the ignore list.
func (c *Collector) Ignored(word string) { c.ignored.add(word) }

// Raw keeps the tagger output, unmodified, for export.
func (c *Collector) Raw(sentences []tagger.Sentence) { c.raw = sentences }

// Bundle derives the missed set and returns the audit record.
func (c *Collector) Bundle() Bundle {
	missed := []string{}
	for _, w := range c.all.items {
		if c.processed.has(w) || c.ignored.has(w) {
			continue
		}
		missed = append(missed, w)
	}

	matches := make(map[string]string, len(c.matches))
	for w, r := range c.matches {
		matches[w] = r
	}
	raw := c.raw
	if raw == nil {
		raw = []tagger.Sentence{}
	}

	return Bundle{
		AllWords:       c.all.slice(),
		ProcessedWords: c.processed.slice(),
		MissedWords:    missed,
		IgnoredWords:   c.ignored.slice(),
		Matches:        matches,
		RawTerms:       raw,
	}
}

type orderedSet struct {
	index map[string]struct{}
	items []string
}

func (s *orderedSet) add(w string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[w]; ok {
		return
	}
	s.index[w] = struct{}{}
	s.items = append(s.items, w)
}

func (s *orderedSet) has(w string) bool {
	_, ok := s.index[w]
	return ok
}

func (s *orderedSet) slice() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
