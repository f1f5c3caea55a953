// Package summary groups parsed clip records by the game or program they
// were captured from.
//
// Capture programs disagree on how they spell a title (NVIDIA keeps the
// window title, AMD upper-cases it), so records are grouped under a folded
// key: NFKC normalization, Unicode case folding, width folding, and
// collapsed whitespace. The displayed name is the first spelling seen.
package summary

import (
	"sort"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"clipmeta/internal/clip"
)

// Source aggregates the clips recorded from one title.
type Source struct {
	Name     string
	Key      string
	Clips    int
	Grammars []string
	First    civil.DateTime
	Last     civil.DateTime
}

var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC, cases.Fold(), width.Fold)
	},
}

// Key returns the grouping key for a source name.
func Key(name string) string {
	tr := foldPool.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, name)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		folded = strings.ToLower(name)
	}
	return strings.Join(strings.Fields(folded), " ")
}

// Summarize groups records by Key. Sources are sorted by key; within a source
// First and Last bound the capture timestamps.
func Summarize(records []clip.Record) []Source {
	index := make(map[string]int, len(records))
	sources := make([]Source, 0, len(records))
	for _, rec := range records {
		key := Key(rec.SourceName)
		when := rec.DateTime()
		pos, ok := index[key]
		if !ok {
			index[key] = len(sources)
			sources = append(sources, Source{
				Name:     rec.SourceName,
				Key:      key,
				Clips:    1,
				Grammars: []string{rec.Grammar},
				First:    when,
				Last:     when,
			})
			continue
		}
		src := &sources[pos]
		src.Clips++
		if when.Before(src.First) {
			src.First = when
		}
		if when.After(src.Last) {
			src.Last = when
		}
		if !contains(src.Grammars, rec.Grammar) {
			src.Grammars = append(src.Grammars, rec.Grammar)
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Key < sources[j].Key })
	return sources
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
