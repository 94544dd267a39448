package rules

import (
	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
)

// Overrides are the closed-class words classified before any tag is read.
// Taggers frequently mis-tag these.
type Overrides struct {
	Pronouns []string
	Adverbs  []string
}

// DefaultOverrides returns the interrogative pronoun and interrogative or
// existential adverb tables.
func DefaultOverrides() Overrides {
	return Overrides{
		Pronouns: []string{"who", "which", "what", "what's", "whom", "whose"},
		Adverbs:  []string{"when", "where", "why", "how", "there", "there's"},
	}
}

// questionPronouns resolves QuestionWord-tagged tokens to pronoun; every
// other question word is an adverb.
var questionPronouns = []string{
	"who", "whom", "whose", "what", "who's", "what's", "whoever", "whomever", "whatever",
}

var verbTags = []string{
	"Verb", "Modal", "Auxiliary", "Copula", "Infinitive", "Gerund", "PastTense", "PresentTense",
}

var quantityTags = []string{"Value", "Cardinal", "TextValue", "Duration"}

// Canonical returns the nine-category rule table in priority order.
func Canonical(ov Overrides) []Rule {
	return build(ov, false)
}

// Extended returns the rule table for the extended registry: auxiliaries,
// particles, numbers and abbreviations get their own buckets.
func Extended(ov Overrides) []Rule {
	return build(ov, true)
}

// ForRegistry returns the rule table matching reg.
func ForRegistry(reg category.Registry, ov Overrides) []Rule {
	switch reg.Name() {
	case "extended":
		return Extended(ov)
	default:
		return Canonical(ov)
	}
}

func build(ov Overrides, extended bool) []Rule {
	rs := []Rule{
		{Name: "interrogative-pronoun", Category: category.Pronoun, Strategy: Lexical, Words: wordSet(ov.Pronouns...)},
		{Name: "interrogative-adverb", Category: category.Adverb, Strategy: Lexical, Words: wordSet(ov.Adverbs...)},
		{Name: "date", Category: category.Noun, Strategy: Tags, AnyTags: []string{"Date"}},
		{Name: "existential", Category: category.Adverb, Strategy: Tags, AnyTags: []string{"There"}},
		{Name: "question-pronoun", Category: category.Pronoun, Strategy: Lexical, Words: wordSet(questionPronouns...), AnyTags: []string{"QuestionWord"}},
		{Name: "question-adverb", Category: category.Adverb, Strategy: Tags, AnyTags: []string{"QuestionWord"}},
		{Name: "to", Category: category.Preposition, Strategy: Lexical, Words: wordSet("to")},
		{Name: "determiner", Category: category.Determiner, Strategy: Tags, AnyTags: []string{"Determiner", "Article"}},
		{Name: "article", Category: category.Determiner, Strategy: Lexical, Words: wordSet("the", "a", "an")},
		{Name: "pronoun", Category: category.Pronoun, Strategy: Tags, AnyTags: []string{"Pronoun"}},
		{Name: "possessive-noun", Category: category.Pronoun, Strategy: Tags, AllTags: []string{"Noun", "Possessive"}},
	}

	if extended {
		rs = append(rs, Rule{
			Name: "auxiliary", Category: category.Auxiliary, Strategy: Tags,
			AnyTags: []string{"Auxiliary", "Modal", "Copula"}, NoneTags: []string{"Possessive"},
		})
	}

	rs = append(rs,
		Rule{Name: "verb", Category: category.Verb, Strategy: Tags, AnyTags: verbTags, NoneTags: []string{"Possessive"}},
		Rule{Name: "adjective", Category: category.Adjective, Strategy: Tags, AnyTags: []string{"Adjective"}},
	)

	if extended {
		rs = append(rs, Rule{Name: "particle", Category: category.Particle, Strategy: Tags, AnyTags: []string{"Particle"}})
	}

	quantity := category.Determiner
	if extended {
		quantity = category.Number
	}

	rs = append(rs,
		Rule{Name: "adverb", Category: category.Adverb, Strategy: Tags, AnyTags: []string{"Adverb", "Negative"}},
		Rule{Name: "preposition", Category: category.Preposition, Strategy: Tags, AnyTags: []string{"Preposition"}},
		Rule{Name: "conjunction", Category: category.Conjunction, Strategy: Tags, AnyTags: []string{"Conjunction"}},
		Rule{Name: "quantity", Category: quantity, Strategy: Tags, AnyTags: quantityTags},
		Rule{Name: "interjection", Category: category.Interjection, Strategy: Tags, AnyTags: []string{"Expression", "Interjection"}},
	)

	if extended {
		rs = append(rs, Rule{Name: "abbreviation", Category: category.Abbreviation, Strategy: Tags, AnyTags: []string{"Abbreviation", "Acronym"}})
	}

	return append(rs,
		Rule{Name: "noun", Category: category.Noun, Strategy: Tags, AnyTags: []string{"Noun", "Singular", "Plural", "Uncountable"}, NoneTags: []string{"Pronoun"}},
		// Hyphenated text the tagger did not mark as a compound.
		Rule{Name: "hyphen-noun", Category: category.Noun, Strategy: Literal, Substring: "-", AnyTags: []string{"Noun"}, NoneTags: []string{"Hyphenated"}},
		Rule{Name: "hyphen-adjective", Category: category.Adjective, Strategy: Literal, Substring: "-", AnyTags: []string{"Adjective"}, NoneTags: []string{"Hyphenated"}},
		Rule{Name: "hyphen-verb", Category: category.Verb, Strategy: Literal, Substring: "-", AnyTags: []string{"Verb"}, NoneTags: []string{"Hyphenated"}},
	)
}
