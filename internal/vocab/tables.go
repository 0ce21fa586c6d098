// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import "github.com/pdiddy/docmigrate/pkg/types"

// TaskStatus normalizes task status text. Unrecognized text is Todo.
var TaskStatus = NewTable("task status", types.TaskTodo, map[types.TaskStatus][]string{
	types.TaskTodo:       {"todo", "to do", "to-do", "open", "new", "backlog", "not started"},
	types.TaskInProgress: {"in progress", "in_progress", "in-progress", "doing", "wip", "started", "active"},
	types.TaskDone:       {"done", "completed", "complete", "finished", "closed", "resolved"},
	types.TaskBlocked:    {"blocked", "on hold", "waiting"},
	types.TaskCancelled:  {"cancelled", "canceled", "wont do", "won't do", "abandoned"},
})

// TaskType normalizes task type text. Unrecognized text is Task.
var TaskType = NewTable("task type", types.TypeTask, map[types.TaskType][]string{
	types.TypeFeature: {"feature", "enhancement"},
	types.TypeBug:     {"bug", "bugfix", "bug fix", "fix", "defect"},
	types.TypeTask:    {"task", "chore"},
	types.TypeEpic:    {"epic"},
	types.TypeStory:   {"story", "user story", "userstory"},
	types.TypeSpike:   {"spike", "research", "investigation"},
})

// Priority normalizes priority text. Unrecognized text is Medium.
var Priority = NewTable("priority", types.PriorityMedium, map[types.Priority][]string{
	types.PriorityLow:      {"low", "minor", "p3", "nice to have"},
	types.PriorityMedium:   {"medium", "normal", "med", "p2"},
	types.PriorityHigh:     {"high", "major", "important", "p1"},
	types.PriorityCritical: {"critical", "urgent", "blocker", "highest", "p0"},
})

// SprintStatus normalizes sprint status text. Unrecognized text is Planning.
var SprintStatus = NewTable("sprint status", types.SprintPlanning, map[types.SprintStatus][]string{
	types.SprintPlanning:  {"planning", "planned", "upcoming", "future"},
	types.SprintActive:    {"active", "current", "in progress", "ongoing"},
	types.SprintCompleted: {"completed", "complete", "done", "closed", "archived", "finished"},
	types.SprintCancelled: {"cancelled", "canceled", "aborted"},
})

// ComponentType normalizes component type text. Unrecognized text is Other.
var ComponentType = NewTable("component type", types.ComponentOther, map[types.ComponentType][]string{
	types.ComponentModule:   {"module", "package", "crate"},
	types.ComponentService:  {"service", "microservice", "daemon", "worker"},
	types.ComponentLibrary:  {"library", "lib", "sdk"},
	types.ComponentDatabase: {"database", "db", "datastore", "data store", "storage"},
	types.ComponentAPI:      {"api", "endpoint", "interface", "gateway"},
	types.ComponentOther:    {"other", "misc"},
})

// AdrStatus normalizes ADR status text. Unrecognized text is Unspecified.
var AdrStatus = NewTable("adr status", types.AdrUnspecified, map[types.AdrStatus][]string{
	types.AdrProposed:   {"proposed", "draft", "under review", "in review", "pending"},
	types.AdrAccepted:   {"accepted", "approved", "adopted", "active"},
	types.AdrDeprecated: {"deprecated", "obsolete"},
	types.AdrSuperseded: {"superseded", "replaced"},
	types.AdrRejected:   {"rejected", "declined"},
})
