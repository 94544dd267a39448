package diagnostics

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
	"github.com/cognicore/lyricpos/pkg/lyricpos/freq"
	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

func TestCollectorBundle(t *testing.T) {
	c := NewCollector()
	for _, w := range []string{"the", "fox", "zzz", "fox", "yeah"} {
		c.Seen(w)
	}
	c.Processed("the", "determiner")
	c.Processed("fox", "noun")
	c.Processed("fox", "verb")
	c.Ignored("yeah")

	b := c.Bundle()
	if !reflect.DeepEqual(b.AllWords, []string{"the", "fox", "zzz", "yeah"}) {
		t.Errorf("unexpected all words %v", b.AllWords)
	}
	if !reflect.DeepEqual(b.ProcessedWords, []string{"the", "fox"}) {
		t.Errorf("unexpected processed words %v", b.ProcessedWords)
	}
	if !reflect.DeepEqual(b.MissedWords, []string{"zzz"}) {
		t.Errorf("missed should exclude processed and ignored, got %v", b.MissedWords)
	}
	if b.Matches["fox"] != "noun" {
		t.Errorf("first matching rule should be kept, got %q", b.Matches["fox"])
	}
}

func TestEmptyBundleSerializes(t *testing.T) {
	b := NewCollector().Bundle()
	data, err := b.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("bundle JSON should round-trip: %v", err)
	}
	if decoded["missed_words"] == nil || decoded["raw_terms"] == nil {
		t.Errorf("empty lists should serialize as [], got %s", data)
	}
}

func TestExporter(t *testing.T) {
	c := NewCollector()
	c.Seen("fox")
	c.Processed("fox", "noun")
	c.Raw([]tagger.Sentence{{Text: "fox", Terms: []tagger.Term{{Text: "fox", Tags: []string{"Noun"}}}}})

	agg := freq.NewAggregator(category.Canonical())
	agg.Add(category.Noun, "fox")

	exp := NewExporter()
	x := exp.Export(2, "Fox", "the", agg.Result(), c.Bundle())
	if _, err := ulid.ParseStrict(x.ID); err != nil {
		t.Errorf("export ID should be a ULID: %v", err)
	}
	if x.TrackIndex != 2 || x.IgnoredWords != "the" {
		t.Errorf("unexpected export header %+v", x)
	}

	data, err := x.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded struct {
		Analysis map[string]struct {
			Unique []string `json:"unique"`
			Total  int      `json:"total"`
		} `json:"analysis"`
		Debug struct {
			ProcessedWords []string `json:"processed_words"`
		} `json:"debug"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Analysis["noun"].Total != 1 || len(decoded.Analysis) != 9 {
		t.Errorf("analysis not exported correctly: %+v", decoded.Analysis)
	}
	if len(decoded.Debug.ProcessedWords) != 1 {
		t.Errorf("debug sets missing: %s", data)
	}
}

func TestExporterIDsAreMonotonic(t *testing.T) {
	exp := NewExporter()
	now := time.Now()
	a := exp.NewID(now)
	b := exp.NewID(now)
	if a >= b {
		t.Errorf("IDs within one millisecond should increase: %s >= %s", a, b)
	}
}

func TestReporterLogsFullOnce(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	rep := NewReporter(logger)

	b := Bundle{AllWords: []string{"a", "zzz"}, ProcessedWords: []string{"a"}, MissedWords: []string{"zzz"}}
	var once Once

	rep.Report("track-1", b, &once)
	rep.Report("track-2", b, &once)

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != logrus.InfoLevel || entries[0].Data["missed_words"] == nil {
		t.Errorf("first report should be full at info: %+v", entries[0])
	}
	if entries[1].Level != logrus.DebugLevel || entries[1].Data["missed_words"] != nil {
		t.Errorf("second report should be a debug summary: %+v", entries[1])
	}
	if !once.Done() {
		t.Error("once should be marked done")
	}

	once.Reset()
	hook.Reset()
	rep.Report("track-3", b, &once)
	if hook.LastEntry().Level != logrus.InfoLevel {
		t.Error("reset once should log in full again")
	}
}

func TestReporterNilOnce(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	rep := NewReporter(logger)
	rep.Report("x", Bundle{}, nil)
	rep.Report("x", Bundle{}, nil)
	if len(hook.AllEntries()) != 2 {
		t.Fatalf("expected two full reports, got %d", len(hook.AllEntries()))
	}
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.InfoLevel {
			t.Errorf("nil once should always log in full, got %s", e.Level)
		}
	}
}
