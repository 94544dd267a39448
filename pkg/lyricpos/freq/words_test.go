package freq

import (
	"reflect"
	"testing"
)

type stops map[string]bool

func (s stops) Contains(w string) bool { return s[w] }

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		lyrics   string
		expected []WordCount
	}{
		{
			name:   "Normal case",
			lyrics: "hello, world! Hello?",
			expected: []WordCount{
				{Word: "hello", Count: 2},
				{Word: "world", Count: 1},
			},
		},
		{
			name:   "Numbers and punctuation",
			lyrics: "123, hello! 123... Hello, world?",
			expected: []WordCount{
				{Word: "123", Count: 2},
				{Word: "hello", Count: 2},
				{Word: "world", Count: 1},
			},
		},
		{
			name:     "Empty string",
			lyrics:   "",
			expected: nil,
		},
		{
			name:   "Contractions and hyphens",
			lyrics: "it's a well-known fact. Couldn't complain.",
			expected: []WordCount{
				{Word: "a", Count: 1},
				{Word: "complain", Count: 1},
				{Word: "couldn't", Count: 1},
				{Word: "fact", Count: 1},
				{Word: "it's", Count: 1},
				{Word: "well-known", Count: 1},
			},
		},
		{
			name:   "Lone dash is not a word",
			lyrics: "Heel okay! - Hoekom-die-hell nie?",
			expected: []WordCount{
				{Word: "heel", Count: 1},
				{Word: "hoekom-die-hell", Count: 1},
				{Word: "nie", Count: 1},
				{Word: "okay", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CountWords(tt.lyrics, nil)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("CountWords(%q) = %v, want %v", tt.lyrics, result, tt.expected)
			}
		})
	}
}

func TestCountWordsSkipsStops(t *testing.T) {
	got := CountWords("the fox and the hound", stops{"the": true, "and": true})
	want := []WordCount{{Word: "fox", Count: 1}, {Word: "hound", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
