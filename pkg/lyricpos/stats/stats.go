// Package stats computes lyric statistics for tracks and albums.
package stats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/ingest"
)

// DefaultTopWords is the album word-frequency list length.
const DefaultTopWords = 20

// Track is the input for one song.
type Track struct {
	Name          string
	Lyrics        string // plain text
	LengthSeconds int
	Categories    freq.Result // optional, summed into the album
}

// TrackStats describes one song's lyrics.
type TrackStats struct {
	Name               string           `json:"name"`
	TotalWords         int              `json:"total_words"`
	UniqueWords        int              `json:"unique_words"`
	Vowels             int              `json:"vowels"`
	Consonants         int              `json:"consonants"`
	WordLengths        map[int]int      `json:"word_lengths"`
	Characters         int              `json:"characters"`
	CharactersNoSpaces int              `json:"characters_no_spaces"`
	Lines              int              `json:"lines"`
	WordsPerMinute     float64          `json:"words_per_minute"`
	Frequencies        []freq.WordCount `json:"frequencies"`
}

// ForTrack computes statistics for t, skipping stops in the frequency list
// (stops may be nil).
func ForTrack(t Track, stops ingest.Stoplist) TrackStats {
	st := TrackStats{
		Name:        t.Name,
		TotalWords:  len(strings.Fields(t.Lyrics)),
		WordLengths: make(map[int]int),
		Frequencies: freq.CountWords(t.Lyrics, stops),
		Lines:       countLines(t.Lyrics),
		Characters:  utf8.RuneCountInString(t.Lyrics),
	}
	st.UniqueWords = len(st.Frequencies)

	for _, r := range t.Lyrics {
		if !unicode.IsSpace(r) {
			st.CharactersNoSpaces++
		}
	}
	for _, w := range freq.Words(t.Lyrics) {
		st.WordLengths[utf8.RuneCountInString(w)]++
		v, c := letterCounts(w)
		st.Vowels += v
		st.Consonants += c
	}
	st.WordsPerMinute = wpm(st.TotalWords, t.LengthSeconds)
	return st
}

// AlbumStats aggregates the tracks of one album.
type AlbumStats struct {
	Tracks               []TrackStats     `json:"tracks"`
	TotalWords           int              `json:"total_words"`
	UniqueWords          int              `json:"unique_words"`
	AverageWordsPerTrack int              `json:"average_words_per_track"`
	Vowels               int              `json:"vowels"`
	Consonants           int              `json:"consonants"`
	WordLengths          map[int]int      `json:"word_lengths"`
	Characters           int              `json:"characters"`
	CharactersNoSpaces   int              `json:"characters_no_spaces"`
	Lines                int              `json:"lines"`
	LengthSeconds        int              `json:"length_seconds"`
	WordsPerMinute       float64          `json:"words_per_minute"`
	TopWords             []freq.WordCount `json:"top_words"`
	Categories           freq.Result      `json:"categories,omitempty"`
}

// ForAlbum aggregates tracks. topN bounds the album word list; zero selects
// DefaultTopWords and a negative value keeps every word.
func ForAlbum(tracks []Track, topN int, stops ingest.Stoplist) AlbumStats {
	if topN == 0 {
		topN = DefaultTopWords
	}

	album := AlbumStats{
		Tracks:      make([]TrackStats, 0, len(tracks)),
		WordLengths: make(map[int]int),
	}
	counts := make(map[string]int)

	for _, t := range tracks {
		st := ForTrack(t, stops)
		album.Tracks = append(album.Tracks, st)

		album.TotalWords += st.TotalWords
		album.Vowels += st.Vowels
		album.Consonants += st.Consonants
		album.Characters += st.Characters
		album.CharactersNoSpaces += st.CharactersNoSpaces
		album.Lines += st.Lines
		album.LengthSeconds += t.LengthSeconds
		for l, n := range st.WordLengths {
			album.WordLengths[l] += n
		}
		for _, wc := range st.Frequencies {
			counts[wc.Word] += wc.Count
		}

		if t.Categories != nil {
			if album.Categories == nil {
				album.Categories = make(freq.Result)
			}
			album.Categories.Merge(t.Categories)
		}
	}

	album.UniqueWords = len(counts)
	if len(tracks) > 0 {
		album.AverageWordsPerTrack = album.TotalWords / len(tracks)
	}
	album.WordsPerMinute = wpm(album.TotalWords, album.LengthSeconds)

	album.TopWords = freq.SortCounts(counts)
	if topN > 0 && len(album.TopWords) > topN {
		album.TopWords = album.TopWords[:topN]
	}
	return album
}

func wpm(words, seconds int) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(words) / (float64(seconds) / 60)
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func letterCounts(word string) (vowels, consonants int) {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if isVowel(r) {
			vowels++
		} else {
			consonants++
		}
	}
	return vowels, consonants
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u',
		'à', 'á', 'â', 'ã', 'ä', 'å',
		'è', 'é', 'ê', 'ë',
		'ì', 'í', 'î', 'ï',
		'ò', 'ó', 'ô', 'õ', 'ö',
		'ù', 'ú', 'û', 'ü':
		return true
	}
	return false
}
