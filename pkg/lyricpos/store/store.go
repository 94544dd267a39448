package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
)

// Store persists tracks and their categorization results
type Store interface {
	Close() error

	// Tracks
	UpsertTrack(ctx context.Context, t Track) error
	GetTrack(ctx context.Context, id string) (Track, bool, error)
	ListTracks(ctx context.Context, album string) ([]Track, error)

	// Analyses
	SaveAnalysis(ctx context.Context, a Analysis) error
	GetAnalysis(ctx context.Context, trackID string) (Analysis, bool, error)
	AlbumTotals(ctx context.Context, album string) (map[string]int, error)
}

// Track is a stored song
type Track struct {
	ID            string
	Album         string
	Artist        string
	Name          string
	Lyrics        string
	IgnoredWords  string // raw ignore configuration
	LengthSeconds int
}

// Analysis is a stored categorization result. ID is a ULID, so the latest
// analysis of a track sorts last.
type Analysis struct {
	ID        string
	TrackID   string
	Registry  string
	CreatedAt time.Time
	Result    freq.Result
	Debug     json.RawMessage // diagnostics export, optional
}
