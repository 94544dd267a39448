// Package freq accumulates per-category word frequencies.
package freq

import (
	"sort"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
)

// Bucket holds the distinct word forms of one category in first-seen order
// and the number of occurrences.
type Bucket struct {
	Unique []string `json:"unique"`
	Total  int      `json:"total"`
}

// Result maps every registry category to its bucket.
type Result map[category.Category]Bucket

// Aggregator maintains per-category counts for one analysis.
type Aggregator struct {
	reg     category.Registry
	buckets map[category.Category]*Bucket
	seen    map[category.Category]map[string]struct{}
}

// NewAggregator creates an aggregator with an empty bucket per category of reg.
func NewAggregator(reg category.Registry) *Aggregator {
	a := &Aggregator{
		reg:     reg,
		buckets: make(map[category.Category]*Bucket, reg.Len()),
		seen:    make(map[category.Category]map[string]struct{}, reg.Len()),
	}
	for _, c := range reg.Categories() {
		a.buckets[c] = &Bucket{Unique: []string{}}
		a.seen[c] = make(map[string]struct{})
	}
	return a
}

// Add records one occurrence of word under c. Categories outside the registry
// are dropped and reported as false.
func (a *Aggregator) Add(c category.Category, word string) bool {
	b, ok := a.buckets[c]
	if !ok {
		return false
	}
	if _, dup := a.seen[c][word]; !dup {
		a.seen[c][word] = struct{}{}
		b.Unique = append(b.Unique, word)
	}
	b.Total++
	return true
}

// Result returns a snapshot of the buckets.
func (a *Aggregator) Result() Result {
	out := make(Result, len(a.buckets))
	for c, b := range a.buckets {
		unique := make([]string, len(b.Unique))
		copy(unique, b.Unique)
		out[c] = Bucket{Unique: unique, Total: b.Total}
	}
	return out
}

// Total sums occurrences across categories.
func (r Result) Total() int {
	n := 0
	for _, b := range r {
		n += b.Total
	}
	return n
}

// Categories returns the categories whose unique list contains word.
func (r Result) Categories(word string) []category.Category {
	var out []category.Category
	for c, b := range r {
		for _, w := range b.Unique {
			if w == word {
				out = append(out, c)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entry is one category with its bucket.
type Entry struct {
	Category category.Category `json:"category"`
	Bucket
}

// Sorted returns the non-empty categories by total descending, ties broken by
// category name.
func (r Result) Sorted() []Entry {
	out := make([]Entry, 0, len(r))
	for c, b := range r {
		if b.Total == 0 {
			continue
		}
		out = append(out, Entry{Category: c, Bucket: b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Merge adds other's counts into r, appending unseen words in other's order.
func (r Result) Merge(other Result) {
	for c, ob := range other {
		b := r[c]
		seen := make(map[string]struct{}, len(b.Unique))
		for _, w := range b.Unique {
			seen[w] = struct{}{}
		}
		unique := append([]string{}, b.Unique...)
		for _, w := range ob.Unique {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				unique = append(unique, w)
			}
		}
		r[c] = Bucket{Unique: unique, Total: b.Total + ob.Total}
	}
}
