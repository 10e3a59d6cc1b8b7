// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the console core to remain independent of specific
// implementations like the SQLite store, the state file, or the TUI shell.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Store, Navigator, KeyValue)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.cyberdeck/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// TaskFilter narrows ListTasks results. Zero value matches everything.
type TaskFilter struct {
	Priority domain.Priority
}

// TaskPatch carries the mutable task fields for an update. Nil fields are
// left untouched.
type TaskPatch struct {
	Completed *bool
}

// TaskStore persists todo items.
type TaskStore interface {
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
}

// TimeEntryStore persists finished blocks of tracked work.
type TimeEntryStore interface {
	CreateTimeEntry(ctx context.Context, entry domain.TimeEntry) (domain.TimeEntry, error)
	ListTimeEntriesOn(ctx context.Context, day string) ([]domain.TimeEntry, error)
}

// EventStore persists calendar events.
type EventStore interface {
	CreateEvent(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error)
	ListEventsOn(ctx context.Context, day string) ([]domain.CalendarEvent, error)
}

// NoteStore persists notes and serves keyword search.
type NoteStore interface {
	CreateNote(ctx context.Context, note domain.Note) (domain.Note, error)
	SearchNotes(ctx context.Context, keyword string) ([]domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
}

// Store groups the four record kinds behind one persistence collaborator.
type Store interface {
	TaskStore
	TimeEntryStore
	EventStore
	NoteStore
}

// Navigator switches the active view and reports the current one. GoTo may
// fail when the target cannot be activated; Reload asks the surrounding
// shell to rebuild itself from persisted state.
type Navigator interface {
	GoTo(view domain.View) error
	Current() domain.View
	Reload()
}

// KeyValue is the small persistent store for session state (theme, active
// timer, command history). Get reports presence distinctly from errors so
// absent keys are not failures.
type KeyValue interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Clipboard provides cross-platform clipboard integration for copying output.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
