package tagger

import (
	"strings"
	"testing"
)

func TestTagSet(t *testing.T) {
	set := NewTagSet("Noun", "Singular", "", "Noun")
	if len(set) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(set))
	}
	if !set.Has("Noun") || set.Has("Verb") {
		t.Error("Has returned wrong membership")
	}
	if !set.HasAny("Verb", "Singular") {
		t.Error("HasAny should find Singular")
	}
	if set.HasAny() {
		t.Error("HasAny with no labels should be false")
	}

	set.Union(NewTagSet("Hyphenated"))
	got := strings.Join(set.Sorted(), ",")
	if got != "Hyphenated,Noun,Singular" {
		t.Errorf("unexpected sorted tags %s", got)
	}
}

func TestNilTagSetIsEmpty(t *testing.T) {
	var set TagSet
	if set.Has("Noun") || set.HasAny("Noun", "Verb") {
		t.Error("nil TagSet should behave as empty")
	}
}

func TestReplayNormalizesKey(t *testing.T) {
	r := NewReplay()
	want := []Sentence{{Text: "hello world", Terms: []Term{{Text: "hello"}, {Text: "world"}}}}
	r.Add("Hello   World", want)

	got := r.Tag("hello world")
	if len(got) != 1 || len(got[0].Terms) != 2 {
		t.Fatalf("expected recorded sentence, got %+v", got)
	}
	if r.Tag("something else") != nil {
		t.Error("unknown text should yield no sentences")
	}
}

func TestStatic(t *testing.T) {
	sents := []Sentence{{Terms: []Term{{Text: "a", Tags: []string{"Determiner"}}}}}
	tg := Static(sents)
	if len(tg.Tag("anything")) != 1 {
		t.Error("static tagger should ignore input text")
	}
}

func TestDecodeJSON(t *testing.T) {
	input := `[{"text":"the fox","terms":[
		{"text":"the","tags":["Determiner"],"pre":"","post":" "},
		{"text":"fox","tags":["Noun","Singular"]}]}]`

	sents, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if len(sents) != 1 || len(sents[0].Terms) != 2 {
		t.Fatalf("unexpected decode result %+v", sents)
	}
	if sents[0].Terms[1].Tags[1] != "Singular" {
		t.Errorf("tags not decoded: %+v", sents[0].Terms[1])
	}

	if _, err := DecodeJSON(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}
