package ingest

import "strings"

// CleanWord lowercases word and strips any leading or trailing character
// outside [A-Za-z0-9À-ž'-]. Presentation layers must apply the same rule to
// correlate their word identifiers with analysis results.
func CleanWord(word string) string {
	return strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '\'' || r == '-':
		return true
	case r >= 'À' && r <= 'ž':
		return true
	}
	return false
}
