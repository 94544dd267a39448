package ingest

import "github.com/cognicore/lyricpos/pkg/lyricpos/tagger"

// Stoplist reports whether a cleaned word is excluded from analysis.
type Stoplist interface {
	Contains(word string) bool
}

// Pipeline orchestrates the term flow:
// tagger sentences → cleaning → ignore filter → hyphenation merge
type Pipeline struct {
	stops Stoplist
}

// NewPipeline creates a pipeline filtering against stops (may be nil).
func NewPipeline(stops Stoplist) *Pipeline {
	return &Pipeline{stops: stops}
}

// Processed is the tokenized form of one tagged text.
type Processed struct {
	Tokens  []Token
	Ignored []string // ignored word occurrences, in input order
}

// Process turns tagger output into classification tokens. Terms that clean to
// an empty string are not words and are skipped; ignored terms are dropped
// before merging, and a merged compound is checked against the ignore list
// again as a whole. A skipped term that is not a hyphen part still closes an
// open compound.
func (p *Pipeline) Process(sentences []tagger.Sentence) Processed {
	var out Processed
	for _, sent := range sentences {
		merger := NewMerger()
		for _, term := range sent.Terms {
			word := CleanWord(term.Text)
			skip := word == "" || p.ignored(word)
			if word != "" && skip {
				out.Ignored = append(out.Ignored, word)
			}
			if skip {
				// Only a skipped hyphen part leaves the compound open.
				if !tagger.NewTagSet(term.Tags...).Has(TagHyphenated) {
					if tok, ok := merger.Flush(); ok {
						out.add(p, tok)
					}
				}
				continue
			}
			for _, tok := range merger.Feed(term, word) {
				out.add(p, tok)
			}
		}
		// A compound left open at sentence end is never dropped.
		if tok, ok := merger.Flush(); ok {
			out.add(p, tok)
		}
	}
	return out
}

func (out *Processed) add(p *Pipeline, tok Token) {
	if tok.Text == "" {
		return
	}
	if tok.Merged && p.ignored(tok.Text) {
		out.Ignored = append(out.Ignored, tok.Text)
		return
	}
	out.Tokens = append(out.Tokens, tok)
}

func (p *Pipeline) ignored(word string) bool {
	return p.stops != nil && p.stops.Contains(word)
}
