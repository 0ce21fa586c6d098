// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docmigrate/pkg/types"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a much longer title", 10, "a much ..."},
		{"ééééééééééé", 6, "ééé..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}

func TestFormatRecordList(t *testing.T) {
	recs := []types.Record{
		&types.Task{ID: "TASK-001", Title: "Set up database", Status: types.TaskDone},
		&types.Task{ID: "TASK-002", Title: "Write loader", Status: types.TaskTodo},
	}

	var buf bytes.Buffer
	require.NoError(t, formatRecordList(&buf, types.CategoryTask, recs, false))
	out := buf.String()
	assert.Contains(t, out, "TASK-001")
	assert.Contains(t, out, "Set up database")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "2 TASKS", "footer")

	buf.Reset()
	require.NoError(t, formatRecordList(&buf, types.CategoryTask, nil, false))
	assert.Equal(t, "No task records found.\n", buf.String())

	buf.Reset()
	require.NoError(t, formatRecordList(&buf, types.CategoryTask, nil, true))
	assert.Equal(t, "[]\n", buf.String())
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	})

	assert.Error(t, setupLogging(types.LogConfig{Level: "loud"}, false))

	path := filepath.Join(t.TempDir(), "logs", "docmigrate.log")
	require.NoError(t, setupLogging(types.LogConfig{Level: "warn", File: path}, false))
	slog.Info("hidden")
	slog.Warn("visible", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "msg=visible k=v")
}

func TestMigrateDryRunCommand(t *testing.T) {
	root := t.TempDir()
	tasks := filepath.Join(root, "agile", "tasks.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(tasks), 0o755))
	require.NoError(t, os.WriteFile(tasks, []byte("### TASK-001: First\n\n### TASK-002: Second\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"migrate", "--docs-dir", root, "--dry-run"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "  Would create task: TASK-001 - First\n")
	assert.Contains(t, got, "Tasks: 2 found, 2 migrated")
	assert.Contains(t, got, "Migration report (dry run)")
	assert.True(t, strings.HasSuffix(got, "Run without --dry-run to migrate.\n"))
}
