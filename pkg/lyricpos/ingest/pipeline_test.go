package ingest

import (
	"testing"

	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

type stopSet map[string]bool

func (s stopSet) Contains(word string) bool { return s[word] }

func TestPipelineProcess(t *testing.T) {
	sents := []tagger.Sentence{{
		Text: "The quick fox!",
		Terms: []tagger.Term{
			term("The", "Determiner"),
			term("quick", "Adjective"),
			term("fox!", "Noun"),
			term("...", "Punctuation"),
		},
	}}

	out := NewPipeline(nil).Process(sents)
	if len(out.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(out.Tokens), out.Tokens)
	}
	want := []string{"the", "quick", "fox"}
	for i, w := range want {
		if out.Tokens[i].Text != w {
			t.Errorf("token %d = %q, want %q", i, out.Tokens[i].Text, w)
		}
	}
	if out.Tokens[0].Raw != "The" {
		t.Errorf("raw text should be preserved, got %q", out.Tokens[0].Raw)
	}
}

func TestPipelineIgnore(t *testing.T) {
	sents := []tagger.Sentence{{Terms: []tagger.Term{
		term("the", "Determiner"),
		term("fox", "Noun"),
		term("the", "Determiner"),
	}}}

	out := NewPipeline(stopSet{"the": true}).Process(sents)
	if len(out.Tokens) != 1 || out.Tokens[0].Text != "fox" {
		t.Fatalf("expected only fox, got %+v", out.Tokens)
	}
	if len(out.Ignored) != 2 {
		t.Errorf("expected 2 ignored occurrences, got %v", out.Ignored)
	}
}

func TestPipelineFlushesPerSentence(t *testing.T) {
	sents := []tagger.Sentence{
		{Terms: []tagger.Term{
			term("a", "Determiner"),
			term("well", "Hyphenated", "Adverb"),
			term("known", "Hyphenated", "Adjective"),
		}},
		{Terms: []tagger.Term{
			term("run", "Verb"),
		}},
	}

	out := NewPipeline(nil).Process(sents)
	if len(out.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", out.Tokens)
	}
	if out.Tokens[1].Text != "well-known" {
		t.Errorf("compound should close at sentence end, got %q", out.Tokens[1].Text)
	}
	if out.Tokens[2].Text != "run" {
		t.Errorf("compound must not leak into the next sentence, got %q", out.Tokens[2].Text)
	}
}

func TestPipelineIgnoresMergedCompound(t *testing.T) {
	sents := []tagger.Sentence{{Terms: []tagger.Term{
		term("uh", "Hyphenated", "Expression"),
		term("huh", "Hyphenated", "Expression"),
		term("yeah", "Expression"),
	}}}

	out := NewPipeline(stopSet{"uh-huh": true}).Process(sents)
	if len(out.Tokens) != 1 || out.Tokens[0].Text != "yeah" {
		t.Fatalf("ignored compound should be dropped, got %+v", out.Tokens)
	}
	if len(out.Ignored) != 1 || out.Ignored[0] != "uh-huh" {
		t.Errorf("expected uh-huh recorded as ignored, got %v", out.Ignored)
	}
}

func TestPipelineEmpty(t *testing.T) {
	out := NewPipeline(nil).Process(nil)
	if len(out.Tokens) != 0 || len(out.Ignored) != 0 {
		t.Errorf("empty input should yield nothing, got %+v", out)
	}
}

func TestPipelineSkippedTermClosesCompound(t *testing.T) {
	tests := []struct {
		name   string
		middle tagger.Term
		stops  stopSet
	}{
		{"kept word", term("the", "Determiner"), nil},
		{"ignored word", term("the", "Determiner"), stopSet{"the": true}},
		{"punctuation", term("—", "Punctuation"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sents := []tagger.Sentence{{Terms: []tagger.Term{
				term("x", "Hyphenated"),
				term("ray", "Hyphenated", "Noun"),
				tt.middle,
				term("up", "Hyphenated"),
				term("beat", "Hyphenated", "Noun"),
			}}}

			var compounds []string
			for _, tok := range NewPipeline(tt.stops).Process(sents).Tokens {
				if tok.Merged {
					compounds = append(compounds, tok.Text)
				}
			}
			if len(compounds) != 2 || compounds[0] != "x-ray" || compounds[1] != "up-beat" {
				t.Errorf("expected x-ray and up-beat, got %v", compounds)
			}
		})
	}
}

func TestPipelineIgnoredHyphenPartKeepsCompoundOpen(t *testing.T) {
	sents := []tagger.Sentence{{Terms: []tagger.Term{
		term("la", "Hyphenated"),
		term("uh", "Hyphenated"),
		term("di", "Hyphenated"),
	}}}
	out := NewPipeline(stopSet{"uh": true}).Process(sents)
	if len(out.Tokens) != 1 || out.Tokens[0].Text != "la-di" {
		t.Errorf("expected la-di from surviving parts, got %+v", out.Tokens)
	}
}
