package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cognicore/lyricpos/internal/trackfile"
	"github.com/cognicore/lyricpos/pkg/lyricpos/config"
	"github.com/cognicore/lyricpos/pkg/lyricpos/diagnostics"
	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/ingest"
	"github.com/cognicore/lyricpos/pkg/lyricpos/stats"
	"github.com/cognicore/lyricpos/pkg/lyricpos/store"
	"github.com/cognicore/lyricpos/pkg/lyricpos/store/memstore"
	"github.com/cognicore/lyricpos/pkg/lyricpos/store/sqlite"
	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

type options struct {
	input    string
	config   string
	stoplist string
	db       string
	debugDir string
	multi    bool
	extended bool
	top      int
	format   string
	tagged   string
}

// TrackReport is the per-track section of the output.
type TrackReport struct {
	ID       string           `json:"id"`
	Album    string           `json:"album"`
	Name     string           `json:"name"`
	Analysis freq.Result      `json:"analysis"`
	Missed   []string         `json:"missed_words"`
	Stats    stats.TrackStats `json:"stats"`
}

// Report is the document printed to stdout.
type Report struct {
	Tracks []TrackReport               `json:"tracks"`
	Albums map[string]stats.AlbumStats `json:"albums"`
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "input", "", "Track JSONL file (required)")
	flag.StringVar(&opts.config, "config", "", "YAML config file (optional)")
	flag.StringVar(&opts.stoplist, "stoplist", "", "Stoplist for word frequencies (optional)")
	flag.StringVar(&opts.db, "db", "", "SQLite database path; overrides store.path")
	flag.StringVar(&opts.debugDir, "debug", "", "Directory for per-track debug exports")
	flag.BoolVar(&opts.multi, "multi", false, "Count words under every matching category")
	flag.BoolVar(&opts.extended, "extended", false, "Use the extended category registry")
	flag.IntVar(&opts.top, "top", stats.DefaultTopWords, "Album top words (-1 for all)")
	flag.StringVar(&opts.format, "format", "json", "Output format: json or table")
	flag.StringVar(&opts.tagged, "tagged", "", "Directory of <track id>.json tagger output for tracks without sentences")
	flag.Parse()

	if opts.input == "" {
		log.Fatal("--input required")
	}
	if opts.format != "json" && opts.format != "table" {
		log.Fatal("--format must be json or table")
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.WithError(err).Fatal("lyricpos failed")
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	replay := tagger.NewReplay()

	loader := config.Loader{
		ConfigPath:    opts.config,
		StoplistPath:  opts.stoplist,
		Tagger:        replay,
		MultiCategory: opts.multi,
	}
	if opts.extended {
		loader.Registry = "extended"
	}
	comp, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if comp.Config.LogLevel != "" {
		lvl, err := log.ParseLevel(comp.Config.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
	}

	st, err := openStore(ctx, opts.db, comp.Config.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	tracks, err := trackfile.LoadFromJSONL(opts.input)
	if err != nil {
		return fmt.Errorf("load tracks: %w", err)
	}
	log.WithFields(log.Fields{"tracks": len(tracks), "file": opts.input}).Info("loaded tracks")

	if opts.debugDir != "" {
		if err := os.MkdirAll(opts.debugDir, 0o755); err != nil {
			return err
		}
	}

	var (
		exporter = diagnostics.NewExporter()
		reporter = diagnostics.NewReporter(log.StandardLogger())
		once     diagnostics.Once
		report   = Report{Albums: make(map[string]stats.AlbumStats)}
		byAlbum  = make(map[string][]stats.Track)
		albums   []string
	)

	for i, tr := range tracks {
		ignoreSet := comp.Engine.IgnoreSet(tr.IgnoredWords)
		text := ignoreSet.StripLines(ingest.NormalizeText(ingest.ExtractText(tr.Lyrics)))
		sentences := tr.Sentences
		if len(sentences) == 0 && opts.tagged != "" {
			if sentences, err = loadTagged(opts.tagged, tr.ID); err != nil {
				return err
			}
		}
		if len(sentences) == 0 {
			log.WithField("track", tr.ID).Warn("no tagger output, categories will be empty")
		}
		replay.Add(text, sentences)

		an := comp.Engine.Analyze(text, tr.IgnoredWords)
		reporter.Report(tr.ID, an.Diagnostics, &once)

		exp := exporter.Export(i, text, tr.IgnoredWords, an.Result, an.Diagnostics)
		debug, err := exp.JSON()
		if err != nil {
			return err
		}
		if opts.debugDir != "" {
			path := filepath.Join(opts.debugDir, exp.ID+".json")
			if err := os.WriteFile(path, debug, 0o644); err != nil {
				return fmt.Errorf("write debug export: %w", err)
			}
		}

		if err := persist(ctx, st, tr, exp, comp.Engine.Registry().Name(), debug); err != nil {
			log.WithField("track", tr.ID).WithError(err).Error("persist failed")
		}

		statTrack := stats.Track{
			Name:          tr.Name,
			Lyrics:        text,
			LengthSeconds: tr.LengthSeconds,
			Categories:    an.Result,
		}
		if _, ok := byAlbum[tr.Album]; !ok {
			albums = append(albums, tr.Album)
		}
		byAlbum[tr.Album] = append(byAlbum[tr.Album], statTrack)

		report.Tracks = append(report.Tracks, TrackReport{
			ID:       tr.ID,
			Album:    tr.Album,
			Name:     tr.Name,
			Analysis: an.Result,
			Missed:   an.Diagnostics.MissedWords,
			Stats:    stats.ForTrack(statTrack, comp.Stops),
		})
	}

	for _, album := range albums {
		report.Albums[album] = stats.ForAlbum(byAlbum[album], opts.top, comp.Stops)

		totals, err := st.AlbumTotals(ctx, album)
		if err != nil {
			log.WithField("album", album).WithError(err).Warn("album totals unavailable")
			continue
		}
		log.WithFields(log.Fields{"album": album, "totals": totals}).Debug("stored album totals")
	}

	if opts.format == "table" {
		writeTable(out, comp.Engine.Registry(), report, albums)
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// loadTagged reads the tagger output stored for a track. A missing file
// yields no sentences.
func loadTagged(dir, trackID string) ([]tagger.Sentence, error) {
	f, err := os.Open(filepath.Join(dir, trackID+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sentences, err := tagger.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", trackID, err)
	}
	return sentences, nil
}

func openStore(ctx context.Context, flagPath, cfgPath string) (store.Store, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		return memstore.New(), nil
	}
	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func persist(ctx context.Context, st store.Store, tr trackfile.Track, exp diagnostics.Export, registry string, debug []byte) error {
	if err := st.UpsertTrack(ctx, store.Track{
		ID:            tr.ID,
		Album:         tr.Album,
		Artist:        tr.Artist,
		Name:          tr.Name,
		Lyrics:        tr.Lyrics,
		IgnoredWords:  tr.IgnoredWords,
		LengthSeconds: tr.LengthSeconds,
	}); err != nil {
		return err
	}
	return st.SaveAnalysis(ctx, store.Analysis{
		ID:        exp.ID,
		TrackID:   tr.ID,
		Registry:  registry,
		CreatedAt: time.Now(),
		Result:    exp.Analysis,
		Debug:     debug,
	})
}
