// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/docmigrate/pkg/types"
)

func TestKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"In Progress", "in progress"},
		{"in-progress", "in progress"},
		{"IN_PROGRESS", "in progress"},
		{"  **Done** ✅ ", "done"},
		{"won't   do", "won t do"},
		{"", ""},
		{"ÉTÉ", "été"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.raw))
		})
	}
}

func TestTaskStatusSynonyms(t *testing.T) {
	for _, raw := range []string{"in-progress", "In Progress", "doing", "in_progress", "WIP"} {
		assert.Equal(t, types.TaskInProgress, TaskStatus.Normalize(raw), raw)
	}
	for _, raw := range []string{"Done", "completed", "Complete ✅"} {
		assert.Equal(t, types.TaskDone, TaskStatus.Normalize(raw), raw)
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"task status", string(TaskStatus.Normalize("Reticulating")), string(types.TaskTodo)},
		{"task type", string(TaskType.Normalize("")), string(types.TypeTask)},
		{"priority", string(Priority.Normalize("someday")), string(types.PriorityMedium)},
		{"sprint status", string(SprintStatus.Normalize("??")), string(types.SprintPlanning)},
		{"component type", string(ComponentType.Normalize("gizmo")), string(types.ComponentOther)},
		{"adr status", string(AdrStatus.Normalize("maybe")), string(types.AdrUnspecified)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLookupLeadingWords(t *testing.T) {
	got, ok := AdrStatus.Lookup("Superseded by ADR005")
	assert.True(t, ok)
	assert.Equal(t, types.AdrSuperseded, got)

	_, ok = AdrStatus.Lookup("maybe later")
	assert.False(t, ok)
}

func TestTaskTypeSynonyms(t *testing.T) {
	assert.Equal(t, types.TypeBug, TaskType.Normalize("Bugfix"))
	assert.Equal(t, types.TypeStory, TaskType.Normalize("User Story"))
	assert.Equal(t, types.TypeSpike, TaskType.Normalize("research"))
	assert.Equal(t, types.TypeFeature, TaskType.Normalize("FEATURE"))
}

func TestMembersAreClosed(t *testing.T) {
	assert.ElementsMatch(t, []types.TaskStatus{
		types.TaskTodo, types.TaskInProgress, types.TaskDone, types.TaskBlocked, types.TaskCancelled,
	}, TaskStatus.Members())
	assert.Equal(t, types.TaskTodo, TaskStatus.Fallback())
	assert.Equal(t, "task status", TaskStatus.Name())
}
