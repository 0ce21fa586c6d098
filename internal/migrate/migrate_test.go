// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package migrate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docmigrate/internal/store"
	"github.com/pdiddy/docmigrate/pkg/types"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type insertCall struct {
	Category types.Category
	ID       string
}

// recordingStore records every Insert and fails the ids listed in fail.
type recordingStore struct {
	calls []insertCall
	fail  map[string]error
}

func (r *recordingStore) Insert(_ context.Context, c types.Category, id string, _ types.Record) error {
	r.calls = append(r.calls, insertCall{c, id})
	return r.fail[id]
}

var sampleCorpus = map[string]string{
	"agile/tasks.md": `# Tasks

### TASK-001: Set up database
**Status:** Mystery

### TASK-002: Write loader
**Status:** Done
`,
	"agile/user-stories.md": `## Import docs
As a maintainer, I want to import docs, so that nothing is retyped.
`,
	"agile/sprints/sprint-2.md":             "# Sprint 2: Loader\n",
	"agile/sprints/archive/sprint-1.md":     "# Sprint 1\n",
	"agile/sprints/archive/sprint-notes.md": "notes\n",
	"components/record_store.md":            "# Record Store\n",
}

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDryRunNeverCallsStore(t *testing.T) {
	root := writeCorpus(t, sampleCorpus)
	rec := &recordingStore{}
	var out bytes.Buffer

	m := New(rec, Options{DocsDir: root, DryRun: true, Out: &out, Logger: quietLogger(), Now: func() time.Time { return fixedNow }})
	stats, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, rec.calls)
	assert.True(t, stats.DryRun)
	assert.NotEmpty(t, stats.RunID)
	assert.Equal(t, 7, stats.TotalFound())
	assert.Equal(t, 6, stats.TotalMigrated())
	assert.True(t, stats.Category(types.CategoryADR).Skipped)

	require.NoError(t, WriteReport(&out, stats))
	g := goldie.New(t)
	g.Assert(t, "dry_run", out.Bytes())
}

func TestDryRunWithoutStore(t *testing.T) {
	root := writeCorpus(t, sampleCorpus)
	stats, err := New(nil, Options{DocsDir: root, DryRun: true, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalMigrated())
}

func TestRunRequiresStore(t *testing.T) {
	_, err := New(nil, Options{DocsDir: t.TempDir(), Logger: quietLogger()}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunInsertsInOrder(t *testing.T) {
	root := writeCorpus(t, sampleCorpus)
	rec := &recordingStore{}

	stats, err := New(rec, Options{DocsDir: root, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []insertCall{
		{types.CategoryTask, "TASK-001"},
		{types.CategoryTask, "TASK-002"},
		{types.CategorySprint, "sprint-2"},
		{types.CategorySprint, "sprint-1"},
		{types.CategoryUserStory, "US-001"},
		{types.CategoryComponent, "comp-record-store"},
	}, rec.calls)

	var order []types.Category
	for _, cs := range stats.Categories {
		order = append(order, cs.Category)
	}
	assert.Equal(t, types.Categories, order)
}

func TestStoreFailureIsCollected(t *testing.T) {
	root := writeCorpus(t, sampleCorpus)
	rec := &recordingStore{fail: map[string]error{
		"TASK-002": errors.New("disk full"),
	}}

	stats, err := New(rec, Options{DocsDir: root, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)

	tasks := stats.Category(types.CategoryTask)
	assert.Equal(t, 2, tasks.Found)
	assert.Equal(t, 1, tasks.Migrated)
	assert.Contains(t, stats.Errors, "Failed to create task TASK-002: disk full")
	assert.Equal(t, 1, stats.Category(types.CategoryComponent).Migrated, "later categories still run")
}

func TestMissingCorpusSkipsEveryCategory(t *testing.T) {
	rec := &recordingStore{}
	stats, err := New(rec, Options{DocsDir: t.TempDir(), Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Categories, len(types.Categories))
	for _, cs := range stats.Categories {
		assert.True(t, cs.Skipped, cs.Category)
		assert.Zero(t, cs.Found)
	}
	assert.Empty(t, stats.Errors)
}

func TestUnreadableSourceIsFatal(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"components/a.md": "# A\n",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "agile", "tasks.md"), 0o755))

	rec := &recordingStore{}
	stats, err := New(rec, Options{DocsDir: root, Logger: quietLogger()}).Run(context.Background())
	require.Error(t, err)
	require.NotNil(t, stats)
	assert.Empty(t, rec.calls, "no category after the failure runs")
}

func TestEndToEndWithSQLiteStore(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"agile/tasks.md": `### TASK-001: First
**Status:** somewhere over the rainbow

### TASK-002: Second
**Status:** in-progress
`,
	})
	st, err := store.Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "docmigrate.db")})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	stats, err := New(st, Options{DocsDir: root, Logger: quietLogger()}).Run(ctx)
	require.NoError(t, err)

	recs, err := st.List(ctx, types.CategoryTask)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, types.TaskTodo, recs[0].(*types.Task).Status)
	assert.Equal(t, types.TaskInProgress, recs[1].(*types.Task).Status)

	var report bytes.Buffer
	require.NoError(t, WriteReport(&report, stats))
	assert.Contains(t, report.String(), "Tasks: 2 found, 2 migrated")
	assert.NotContains(t, report.String(), "dry run")

	// A second run overwrites the same ids.
	_, err = New(st, Options{DocsDir: root, Logger: quietLogger()}).Run(ctx)
	require.NoError(t, err)
	recs, err = st.List(ctx, types.CategoryTask)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestWriteReportJSON(t *testing.T) {
	stats := &Stats{
		RunID:      "run-1",
		DocsDir:    "docs",
		Categories: []CategoryStats{{Category: types.CategoryTask, Found: 1, Migrated: 1}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReportJSON(&buf, stats))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, false, got["dry_run"])
	assert.Equal(t, []any{}, got["errors"])
	assert.Nil(t, stats.Errors, "input is not modified")
}
