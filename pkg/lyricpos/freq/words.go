package freq

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cognicore/lyricpos/pkg/lyricpos/ingest"
)

// WordCount is a word form and its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CountWords counts cleaned words in text, skipping stops (may be nil).
// Results are sorted by count descending, then word.
func CountWords(text string, stops ingest.Stoplist) []WordCount {
	counts := make(map[string]int)
	for _, w := range Words(text) {
		if stops != nil && stops.Contains(w) {
			continue
		}
		counts[w]++
	}
	return SortCounts(counts)
}

// Words splits text into cleaned word forms. Apostrophes and hyphens stay
// inside words; tokens without a letter or digit are dropped.
func Words(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'' && r != '-')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := ingest.CleanWord(f)
		if w == "" || !hasAlnum(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SortCounts flattens a count map into a sorted slice.
func SortCounts(counts map[string]int) []WordCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
