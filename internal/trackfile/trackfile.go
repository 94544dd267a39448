// Package trackfile reads track records from JSONL files.
package trackfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/cognicore/lyricpos/pkg/lyricpos/tagger"
)

// Track is one song record. Lyrics may hold an HTML fragment; Sentences
// carry the tagger output for the lyrics when it was produced upstream.
type Track struct {
	ID            string            `json:"id"`
	Album         string            `json:"album"`
	Artist        string            `json:"artist"`
	Name          string            `json:"name"`
	Lyrics        string            `json:"lyrics"`
	IgnoredWords  string            `json:"ignored_words"`
	LengthSeconds int               `json:"length_seconds"`
	Sentences     []tagger.Sentence `json:"sentences,omitempty"`
}

// LoadFromJSONL loads tracks from a JSONL file, skipping malformed lines
// and records without an id.
func LoadFromJSONL(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	defer f.Close()

	var tracks []Track
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var t Track
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			log.WithFields(log.Fields{"file": path, "line": n}).
				WithError(err).Warn("skipping malformed track")
			continue
		}
		if t.ID == "" {
			log.WithFields(log.Fields{"file": path, "line": n}).Warn("skipping track without id")
			continue
		}
		tracks = append(tracks, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("no valid tracks found in %s", path)
	}

	return tracks, nil
}
