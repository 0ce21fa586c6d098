// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package migrate runs the extractors over a document root in a fixed order
// and hands every recovered record to a Store. Per-record failures are
// collected in the run's Stats; only an I/O failure reading a source stops
// the run.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/docmigrate/internal/extract"
	"github.com/pdiddy/docmigrate/pkg/types"
)

// Store is the persistence boundary. Inserting an existing key replaces it.
type Store interface {
	Insert(ctx context.Context, category types.Category, id string, rec types.Record) error
}

// Options configures one migration run.
type Options struct {
	// DocsDir is the document root.
	DocsDir string

	// DryRun extracts every record but never calls the Store.
	DryRun bool

	// Out receives dry-run preview lines. Nil discards them.
	Out io.Writer

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Now stamps created_at and updated_at. Defaults to time.Now.
	Now func() time.Time

	// Extractors overrides the category extractors, in run order. Defaults
	// to extract.All.
	Extractors []extract.Extractor
}

// Migrator runs migrations against one Store. A Migrator holds no state
// between runs; concurrent runs against the same store are not coordinated.
type Migrator struct {
	store Store
	opts  Options
}

// New returns a Migrator writing to store. store may be nil for dry runs.
func New(store Store, opts Options) *Migrator {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Extractors == nil {
		opts.Extractors = extract.All(opts.Now)
	}
	return &Migrator{store: store, opts: opts}
}

// Run migrates every category in order and returns the run's statistics.
// The returned error is non-nil only when a source that exists could not be
// read; Stats then holds the categories completed before the failure.
func (m *Migrator) Run(ctx context.Context) (*Stats, error) {
	if !m.opts.DryRun && m.store == nil {
		return nil, errors.New("migrate: no store configured")
	}

	stats := &Stats{
		RunID:   uuid.NewString(),
		DocsDir: m.opts.DocsDir,
		DryRun:  m.opts.DryRun,
	}
	log := m.opts.Logger.With("run", stats.RunID)
	log.Info("starting migration", "docs_dir", m.opts.DocsDir, "dry_run", m.opts.DryRun)

	for _, e := range m.opts.Extractors {
		result, err := m.migrateCategory(ctx, log, e)
		stats.add(result)
		if err != nil {
			log.Error("migration aborted", "category", e.Category(), "error", err)
			return stats, err
		}
	}

	log.Info("migration finished",
		"found", stats.TotalFound(),
		"migrated", stats.TotalMigrated(),
		"errors", len(stats.Errors),
	)
	return stats, nil
}

// categoryResult is what one category contributes to the run.
type categoryResult struct {
	CategoryStats
	errors []string
}

func (m *Migrator) migrateCategory(ctx context.Context, log *slog.Logger, e extract.Extractor) (categoryResult, error) {
	c := e.Category()
	res := categoryResult{CategoryStats: CategoryStats{Category: c}}
	log = log.With("category", c)

	for out, err := range extract.Walk(e, m.opts.DocsDir) {
		if errors.Is(err, extract.ErrSourceMissing) {
			log.Warn("source not found, skipping category", "error", err)
			res.Skipped = true
			return res, nil
		}
		if err != nil {
			return res, err
		}

		res.Found++
		if out.Err != nil {
			log.Debug("record not extracted", "source", out.Span.Source.Path, "error", out.Err)
			res.errors = append(res.errors, out.Err.Error())
			continue
		}

		rec := out.Record
		if m.opts.DryRun {
			fmt.Fprintln(m.opts.Out, previewLine(rec))
			res.Migrated++
			continue
		}

		if err := m.store.Insert(ctx, c, rec.RecordID(), rec); err != nil {
			log.Debug("insert failed", "id", rec.RecordID(), "error", err)
			res.errors = append(res.errors, fmt.Sprintf("Failed to create %s %s: %v", c.Noun(), rec.RecordID(), err))
			continue
		}
		log.Debug("record migrated", "id", rec.RecordID())
		res.Migrated++
	}

	log.Info("category done", "found", res.Found, "migrated", res.Migrated)
	return res, nil
}

func previewLine(rec types.Record) string {
	line := fmt.Sprintf("  Would create %s: %s", rec.Category().Noun(), rec.RecordID())
	if name := rec.DisplayName(); name != "" {
		line += " - " + name
	}
	return line
}
