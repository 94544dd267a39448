package ingest

import (
	"strings"

	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

// TagHyphenated marks a term that is one part of a hyphen-joined word.
const TagHyphenated = "Hyphenated"

// Token is one classification unit: a cleaned word form and its tags.
// Merged tokens carry the union of their parts' tags.
type Token struct {
	Text   string
	Raw    string
	Tags   tagger.TagSet
	Merged bool
}

// Merger coalesces consecutive hyphenated terms of one sentence into a single
// compound token. Call Flush at every sentence end.
type Merger struct {
	parts []string
	raw   []string
	tags  tagger.TagSet
}

// NewMerger creates a merger with an empty buffer.
func NewMerger() *Merger {
	return &Merger{}
}

// Feed consumes one term whose cleaned form is word. Hyphenated terms are
// buffered and yield nothing; any other term first flushes the buffer, then
// yields itself.
func (m *Merger) Feed(term tagger.Term, word string) []Token {
	tags := tagger.NewTagSet(term.Tags...)
	if tags.Has(TagHyphenated) {
		if m.tags == nil {
			m.tags = make(tagger.TagSet)
		}
		m.parts = append(m.parts, word)
		m.raw = append(m.raw, term.Text)
		m.tags.Union(tags)
		return nil
	}

	var out []Token
	if merged, ok := m.Flush(); ok {
		out = append(out, merged)
	}
	return append(out, Token{Text: word, Raw: term.Text, Tags: tags})
}

// Flush emits the buffered compound, if any, and clears the buffer.
func (m *Merger) Flush() (Token, bool) {
	if len(m.parts) == 0 {
		return Token{}, false
	}
	tok := Token{
		Text:   CleanWord(strings.Join(m.parts, "-")),
		Raw:    strings.Join(m.raw, "-"),
		Tags:   m.tags,
		Merged: true,
	}
	m.parts, m.raw, m.tags = nil, nil, nil
	return tok, true
}

// Pending reports whether a compound is buffered.
func (m *Merger) Pending() bool {
	return len(m.parts) > 0
}
