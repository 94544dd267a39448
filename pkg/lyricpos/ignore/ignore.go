// Package ignore parses caller-supplied ignore lists into an exclusion set.
package ignore

import (
	"sort"
	"strings"

	"github.com/cognicore/lyricpos/pkg/lyricpos/ingest"
)

// patternChars mark an entry as a raw-text pattern such as "[Chorus:]".
const patternChars = "()[]{}:"

// Set is a normalized exclusion set. The zero value is empty and usable.
type Set struct {
	words    map[string]struct{}
	patterns map[string]struct{}
}

// Parse splits a comma-separated configuration string into a Set. Entries are
// trimmed and lowercased; blanks are dropped. Malformed or empty input yields
// an empty set.
func Parse(config string) *Set {
	s := &Set{
		words:    make(map[string]struct{}),
		patterns: make(map[string]struct{}),
	}
	for _, entry := range strings.Split(config, ",") {
		s.Add(entry)
	}
	return s
}

// Add inserts one entry. Pattern entries are kept verbatim for the
// presentation layer and also suppress their cleaned word form.
func (s *Set) Add(entry string) {
	raw := strings.TrimSpace(entry)
	if raw == "" {
		return
	}
	if s.words == nil {
		s.words = make(map[string]struct{})
	}
	if s.patterns == nil {
		s.patterns = make(map[string]struct{})
	}

	if IsPattern(raw) {
		s.patterns[raw] = struct{}{}
	} else {
		s.words[strings.ToLower(raw)] = struct{}{}
	}
	if cleaned := ingest.CleanWord(raw); cleaned != "" {
		s.words[cleaned] = struct{}{}
	}
}

// IsPattern reports whether entry holds bracket, parenthesis or colon
// characters.
func IsPattern(entry string) bool {
	return strings.ContainsAny(entry, patternChars)
}

// Contains reports whether word, or its cleaned form, is excluded.
func (s *Set) Contains(word string) bool {
	if s == nil || len(s.words) == 0 {
		return false
	}
	if _, ok := s.words[word]; ok {
		return true
	}
	_, ok := s.words[ingest.CleanWord(word)]
	return ok
}

// MatchesRaw reports whether a raw text span equals one of the patterns.
func (s *Set) MatchesRaw(span string) bool {
	if s == nil {
		return false
	}
	_, ok := s.patterns[strings.TrimSpace(span)]
	return ok
}

// StripLines removes the lines of text that equal one of the patterns,
// such as section headers.
func (s *Set) StripLines(text string) string {
	if s == nil || len(s.patterns) == 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !s.MatchesRaw(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Merge adds every entry of other to s.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for w := range other.words {
		s.Add(w)
	}
	for p := range other.patterns {
		s.Add(p)
	}
}

// Words returns the excluded word forms, sorted.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.words)
}

// Patterns returns the raw-text patterns, sorted.
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.patterns)
}

// Len returns the number of excluded word forms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// String renders the set back into configuration form.
func (s *Set) String() string {
	return strings.Join(append(s.Patterns(), s.Words()...), ",")
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
