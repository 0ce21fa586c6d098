// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns the project documentation corpus into typed records.
// Each category has its own Extractor that knows where its sources live,
// how a source splits into one span per record, and how a span's fields are
// read. Walk drives an Extractor over a document root in document order.
package extract

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/docmigrate/pkg/types"
)

// Fixed locations of each category under the document root.
const (
	tasksFile     = "agile/tasks.md"
	storiesFile   = "agile/user-stories.md"
	sprintsDir    = "agile/sprints"
	archiveDir    = "archive"
	componentsDir = "components"
	adrDir        = "architecture"
)

// Layout lists the directories a complete corpus contains.
var Layout = []string{
	"agile",
	filepath.Join(sprintsDir, archiveDir),
	componentsDir,
	adrDir,
}

// Source is one file an extractor reads.
type Source struct {
	Path string

	// Archived is set for sprint files under the archive directory.
	Archived bool
}

// Span is the slice of a source that holds exactly one record.
type Span struct {
	Source Source

	// Heading is the boundary heading text for multi-record files; empty when
	// the whole file is the span.
	Heading string

	Text string

	// Index is the zero-based position of the span within its category,
	// counted across all sources in document order.
	Index int
}

// Extractor recovers the records of one category.
type Extractor interface {
	Category() types.Category

	// Sources lists the files to read, in order. It returns an error wrapping
	// ErrSourceMissing when the category's conventional path does not exist.
	Sources(root string) ([]Source, error)

	// Spans splits the text of src into per-record spans. Index is assigned
	// by Walk.
	Spans(src Source, text string) []Span

	// Parse builds the record for one span. Errors are only returned when a
	// structurally required field is missing.
	Parse(span Span) (types.Record, error)
}

// Outcome is the result of parsing one span. Exactly one of Record and Err
// is set.
type Outcome struct {
	Span   Span
	Record types.Record
	Err    error
}

// Walk yields one Outcome per span of e under root, in document order. A
// non-nil error in the second position is fatal and ends the sequence: it
// is either the ErrSourceMissing skip signal from Sources or an I/O failure
// reading a source that exists.
func Walk(e Extractor, root string) iter.Seq2[Outcome, error] {
	return func(yield func(Outcome, error) bool) {
		sources, err := e.Sources(root)
		if err != nil {
			yield(Outcome{}, err)
			return
		}

		index := 0
		for _, src := range sources {
			data, err := os.ReadFile(src.Path)
			if err != nil {
				yield(Outcome{}, fmt.Errorf("reading %s source %s: %w", e.Category(), src.Path, err))
				return
			}
			for _, span := range e.Spans(src, string(data)) {
				span.Index = index
				index++

				out := Outcome{Span: span}
				rec, err := e.Parse(span)
				if err != nil {
					out.Err = wrapParseError(e.Category(), span, err)
				} else {
					out.Record = rec
				}
				if !yield(out, nil) {
					return
				}
			}
		}
	}
}

// All returns the five extractors in migration order, sharing one clock.
// A nil now uses time.Now.
func All(now func() time.Time) []Extractor {
	return []Extractor{
		&TaskExtractor{Now: now},
		&SprintExtractor{Now: now},
		&UserStoryExtractor{Now: now},
		&ComponentExtractor{Now: now},
		&ADRExtractor{Now: now},
	}
}

func stamp(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}

// requireFile returns root/rel, or an ErrSourceMissing error when it does
// not exist.
func requireFile(root, rel string) (string, error) {
	path := filepath.Join(root, rel)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrSourceMissing)
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	return path, nil
}

// markdownFiles lists the regular .md files directly inside dir, sorted by
// name, that keep accepts.
func markdownFiles(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		if keep != nil && !keep(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func strPtr(s string) *string {
	return &s
}

func optional(s string, ok bool) *string {
	if !ok || s == "" {
		return nil
	}
	return &s
}
