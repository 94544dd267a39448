package diagnostics

import (
	"crypto/rand"
	"encoding/json"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

// Export is the flat, human-readable debug record of one analysed track.
type Export struct {
	ID           string            `json:"id"`
	TrackIndex   int               `json:"track_index"`
	Analysis     freq.Result       `json:"analysis"`
	Text         string            `json:"text"`
	IgnoredWords string            `json:"ignored_words"`
	Debug        Debug             `json:"debug"`
	RawTerms     []tagger.Sentence `json:"raw_terms"`
}

// Debug holds the word sets of an export.
type Debug struct {
	MissingWords   []string          `json:"missing_words"`
	AllWords       []string          `json:"all_words"`
	ProcessedWords []string          `json:"processed_words"`
	Matches        map[string]string `json:"matches"`
}

// Exporter stamps exports with monotonic ULIDs.
type Exporter struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewID returns a fresh ULID.
func (e *Exporter) NewID(now time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), e.entropy).String()
}

// Export builds the debug record for one track.
func (e *Exporter) Export(trackIndex int, text, ignoreConfig string, result freq.Result, b Bundle) Export {
	return Export{
		ID:           e.NewID(time.Now()),
		TrackIndex:   trackIndex,
		Analysis:     result,
		Text:         text,
		IgnoredWords: ignoreConfig,
		Debug: Debug{
			MissingWords:   b.MissedWords,
			AllWords:       b.AllWords,
			ProcessedWords: b.ProcessedWords,
			Matches:        b.Matches,
		},
		RawTerms: b.RawTerms,
	}
}

// JSON renders the export indented for humans.
func (x Export) JSON() ([]byte, error) {
	return json.MarshalIndent(x, "", "  ")
}

// JSON renders the bundle indented for humans.
func (b Bundle) JSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
