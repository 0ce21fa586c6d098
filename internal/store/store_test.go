// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docmigrate/pkg/types"
)

var stamp = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "nested", "docmigrate.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTask(id, title string) *types.Task {
	points := uint8(3)
	return &types.Task{
		ID:           id,
		Title:        title,
		Status:       types.TaskInProgress,
		Type:         types.TypeBug,
		Priority:     types.PriorityHigh,
		StoryPoints:  &points,
		Labels:       []string{"db"},
		Dependencies: []string{},
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	s := testStore(t)
	var count int
	err := s.db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open(types.StoreConfig{})
	assert.Error(t, err)
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	want := sampleTask("TASK-001", "Set up database")
	require.NoError(t, s.Insert(ctx, types.CategoryTask, want.ID, want))

	got, err := s.Get(ctx, types.CategoryTask, "TASK-001")
	require.NoError(t, err)
	if diff := cmp.Diff(types.Record(want), got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertOverwrites(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, types.CategoryTask, "TASK-001", sampleTask("TASK-001", "first")))
	require.NoError(t, s.Insert(ctx, types.CategoryTask, "TASK-001", sampleTask("TASK-001", "second")))

	recs, err := s.List(ctx, types.CategoryTask)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "second", recs[0].DisplayName())
}

func TestInsertRejectsEmptyID(t *testing.T) {
	s := testStore(t)
	err := s.Insert(context.Background(), types.CategoryTask, "", sampleTask("", "x"))
	assert.Error(t, err)
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), types.CategoryADR, "ADR999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoriesAreSeparateKeys(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, types.CategoryTask, "X-1", sampleTask("X-1", "task")))
	require.NoError(t, s.Insert(ctx, types.CategoryComponent, "X-1", &types.Component{ID: "X-1", Name: "component"}))

	task, err := s.Get(ctx, types.CategoryTask, "X-1")
	require.NoError(t, err)
	assert.IsType(t, &types.Task{}, task)

	comp, err := s.Get(ctx, types.CategoryComponent, "X-1")
	require.NoError(t, err)
	assert.Equal(t, "component", comp.DisplayName())
}

func TestListOrderAndCounts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, id := range []string{"T-3", "T-1", "T-2"} {
		require.NoError(t, s.Insert(ctx, types.CategoryTask, id, sampleTask(id, id)))
	}
	require.NoError(t, s.Insert(ctx, types.CategoryADR, "ADR001", &types.ADR{ID: "ADR001"}))

	recs, err := s.List(ctx, types.CategoryTask)
	require.NoError(t, err)
	var ids []string
	for _, r := range recs {
		ids = append(ids, r.RecordID())
	}
	assert.Equal(t, []string{"T-1", "T-2", "T-3"}, ids)

	empty, err := s.List(ctx, types.CategorySprint)
	require.NoError(t, err)
	assert.Empty(t, empty)

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[types.Category]int{
		types.CategoryTask:      3,
		types.CategorySprint:    0,
		types.CategoryUserStory: 0,
		types.CategoryComponent: 0,
		types.CategoryADR:       1,
	}, counts)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, types.CategoryTask, "T-1", sampleTask("T-1", "one")))

	tests := []struct {
		format types.ExportFormat
		decode func([]byte, any) error
	}{
		{types.ExportYAML, yaml.Unmarshal},
		{types.ExportJSON, json.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			paths, err := s.Export(ctx, dir, tt.format, types.CategoryTask, types.CategorySprint)
			require.NoError(t, err)
			require.Equal(t, []string{
				filepath.Join(dir, "task."+string(tt.format)),
				filepath.Join(dir, "sprint."+string(tt.format)),
			}, paths)

			data, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			var tasks []types.Task
			require.NoError(t, tt.decode(data, &tasks))
			require.Len(t, tasks, 1)
			assert.Equal(t, "one", tasks[0].Title)
			assert.Equal(t, types.TaskInProgress, tasks[0].Status)

			data, err = os.ReadFile(paths[1])
			require.NoError(t, err)
			var sprints []types.Sprint
			require.NoError(t, tt.decode(data, &sprints))
			assert.Empty(t, sprints)
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode("toml", []int{1})
	assert.Error(t, err)
}
