package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/internalerr"
	"github.com/cognicore/lyricpos/pkg/lyricpos/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	tracks   map[string]store.Track
	analyses map[string][]store.Analysis // by track ID, ascending ID
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		tracks:   make(map[string]store.Track),
		analyses: make(map[string][]store.Analysis),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertTrack inserts or replaces a track, keyed by ID.
func (s *Store) UpsertTrack(ctx context.Context, t store.Track) error {
	if t.ID == "" {
		return fmt.Errorf("%w: track without id", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracks[t.ID] = t
	return nil
}

// GetTrack returns a track by ID.
func (s *Store) GetTrack(ctx context.Context, id string) (store.Track, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tracks[id]
	return t, ok, nil
}

// ListTracks returns the tracks of album ordered by ID. An empty album lists
// every track.
func (s *Store) ListTracks(ctx context.Context, album string) ([]store.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Track
	for _, t := range s.tracks {
		if album == "" || t.Album == album {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaveAnalysis stores an analysis of an existing track.
func (s *Store) SaveAnalysis(ctx context.Context, a store.Analysis) error {
	if a.ID == "" {
		return fmt.Errorf("%w: analysis without id", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tracks[a.TrackID]; !ok {
		return fmt.Errorf("%w: track %q", internalerr.ErrNotFound, a.TrackID)
	}

	list := s.analyses[a.TrackID]
	for i := range list {
		if list[i].ID == a.ID {
			list[i] = copyAnalysis(a)
			return nil
		}
	}
	list = append(list, copyAnalysis(a))
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	s.analyses[a.TrackID] = list
	return nil
}

// GetAnalysis returns the latest analysis of a track.
func (s *Store) GetAnalysis(ctx context.Context, trackID string) (store.Analysis, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.analyses[trackID]
	if len(list) == 0 {
		return store.Analysis{}, false, nil
	}
	return copyAnalysis(list[len(list)-1]), true, nil
}

// AlbumTotals sums category totals over the latest analysis of every track
// in album.
func (s *Store) AlbumTotals(ctx context.Context, album string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)
	for id, t := range s.tracks {
		if t.Album != album {
			continue
		}
		list := s.analyses[id]
		if len(list) == 0 {
			continue
		}
		for c, b := range list[len(list)-1].Result {
			totals[string(c)] += b.Total
		}
	}
	return totals, nil
}

func copyAnalysis(a store.Analysis) store.Analysis {
	out := a
	out.Result = make(freq.Result, len(a.Result))
	out.Result.Merge(a.Result)
	if a.Debug != nil {
		out.Debug = append(json.RawMessage(nil), a.Debug...)
	}
	return out
}
