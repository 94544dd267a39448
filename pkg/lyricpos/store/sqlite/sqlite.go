package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/internalerr"
	"github.com/cognicore/lyricpos/pkg/lyricpos/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS tracks (
	id TEXT PRIMARY KEY,
	album TEXT NOT NULL DEFAULT '',
	artist TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	lyrics TEXT NOT NULL DEFAULT '',
	ignored_words TEXT NOT NULL DEFAULT '',
	length_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album);

CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	track_id TEXT NOT NULL,
	registry TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	debug TEXT,
	FOREIGN KEY(track_id) REFERENCES tracks(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analyses_track ON analyses(track_id, id);

CREATE TABLE IF NOT EXISTS category_counts (
	analysis_id TEXT NOT NULL,
	category TEXT NOT NULL,
	total INTEGER NOT NULL,
	unique_words TEXT NOT NULL,
	PRIMARY KEY(analysis_id, category),
	FOREIGN KEY(analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertTrack inserts or updates a track
func (s *sqliteStore) UpsertTrack(ctx context.Context, t store.Track) error {
	if t.ID == "" {
		return fmt.Errorf("%w: track without id", internalerr.ErrInvalidInput)
	}

	const stmt = `
INSERT INTO tracks (id, album, artist, name, lyrics, ignored_words, length_seconds)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	album=excluded.album,
	artist=excluded.artist,
	name=excluded.name,
	lyrics=excluded.lyrics,
	ignored_words=excluded.ignored_words,
	length_seconds=excluded.length_seconds;
`
	_, err := s.db.ExecContext(ctx, stmt,
		t.ID, t.Album, t.Artist, t.Name, t.Lyrics, t.IgnoredWords, t.LengthSeconds)
	return err
}

const trackColumns = `id, album, artist, name, lyrics, ignored_words, length_seconds`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrack(row scanner) (store.Track, error) {
	var t store.Track
	err := row.Scan(&t.ID, &t.Album, &t.Artist, &t.Name, &t.Lyrics, &t.IgnoredWords, &t.LengthSeconds)
	return t, err
}

// GetTrack retrieves a track by ID
func (s *sqliteStore) GetTrack(ctx context.Context, id string) (store.Track, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM tracks WHERE id = ?`, id)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Track{}, false, nil
	}
	if err != nil {
		return store.Track{}, false, err
	}
	return t, true, nil
}

// ListTracks returns the tracks of album ordered by ID; an empty album lists
// every track
func (s *sqliteStore) ListTracks(ctx context.Context, album string) ([]store.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE album = ? ORDER BY id`
	args := []any{album}
	if album == "" {
		query = `SELECT ` + trackColumns + ` FROM tracks ORDER BY id`
		args = nil
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SaveAnalysis stores an analysis and its per-category counts
func (s *sqliteStore) SaveAnalysis(ctx context.Context, a store.Analysis) error {
	if a.ID == "" {
		return fmt.Errorf("%w: analysis without id", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM tracks WHERE id = ?`, a.TrackID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: track %q", internalerr.ErrNotFound, a.TrackID)
	}
	if err != nil {
		return err
	}

	var debug sql.NullString
	if len(a.Debug) > 0 {
		debug = sql.NullString{String: string(a.Debug), Valid: true}
	}

	const stmt = `
INSERT INTO analyses (id, track_id, registry, created_at, debug)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	track_id=excluded.track_id,
	registry=excluded.registry,
	created_at=excluded.created_at,
	debug=excluded.debug;
`
	if _, err := tx.ExecContext(ctx, stmt,
		a.ID, a.TrackID, a.Registry, a.CreatedAt.UTC().Format(time.RFC3339Nano), debug); err != nil {
		return err
	}

	if err := replaceCategoryCounts(ctx, tx, a.ID, a.Result); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceCategoryCounts(ctx context.Context, tx *sql.Tx, analysisID string, res freq.Result) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM category_counts WHERE analysis_id=?`, analysisID); err != nil {
		return err
	}
	if len(res) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO category_counts (analysis_id, category, total, unique_words) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for c, b := range res {
		unique := b.Unique
		if unique == nil {
			unique = []string{}
		}
		words, err := json.Marshal(unique)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, analysisID, string(c), b.Total, string(words)); err != nil {
			return err
		}
	}
	return nil
}

// GetAnalysis returns the latest analysis of a track
func (s *sqliteStore) GetAnalysis(ctx context.Context, trackID string) (store.Analysis, bool, error) {
	var (
		a       store.Analysis
		created string
		debug   sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, track_id, registry, created_at, debug
FROM analyses WHERE track_id = ?
ORDER BY id DESC LIMIT 1`, trackID).Scan(&a.ID, &a.TrackID, &a.Registry, &created, &debug)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Analysis{}, false, nil
	}
	if err != nil {
		return store.Analysis{}, false, err
	}

	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return store.Analysis{}, false, err
	}
	if debug.Valid {
		a.Debug = json.RawMessage(debug.String)
	}

	a.Result, err = s.loadCategoryCounts(ctx, a.ID)
	if err != nil {
		return store.Analysis{}, false, err
	}
	return a, true, nil
}

func (s *sqliteStore) loadCategoryCounts(ctx context.Context, analysisID string) (freq.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, total, unique_words FROM category_counts WHERE analysis_id = ?`, analysisID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(freq.Result)
	for rows.Next() {
		var (
			name  string
			b     freq.Bucket
			words string
		)
		if err := rows.Scan(&name, &b.Total, &words); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(words), &b.Unique); err != nil {
			return nil, err
		}
		res[category.Category(name)] = b
	}
	return res, rows.Err()
}

// AlbumTotals sums category totals over the latest analysis of every track
// in album
func (s *sqliteStore) AlbumTotals(ctx context.Context, album string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT c.category, SUM(c.total)
FROM category_counts c
JOIN analyses a ON a.id = c.analysis_id
JOIN tracks t ON t.id = a.track_id
WHERE t.album = ?
  AND a.id = (SELECT MAX(id) FROM analyses WHERE track_id = t.id)
GROUP BY c.category`, album)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var (
			name  string
			total int
		)
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		totals[name] = total
	}
	return totals, rows.Err()
}
