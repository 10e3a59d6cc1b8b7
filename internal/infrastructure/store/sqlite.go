package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/clock"
	"github.com/nkzrv/cyberdeck/internal/pkg/filesystem"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

// SQLite persists the four record kinds in one SQLite database file.
// Records are keyed by ULIDs; lookups accept a full id or a unique prefix.
type SQLite struct {
	db    *sql.DB
	path  string
	clock clock.Clock
	mu    sync.Mutex
}

// Open creates (or opens) the database at path and runs migrations.
func Open(path string, clk clock.Clock) (*SQLite, error) {
	if clk == nil {
		clk = clock.Real()
	}
	if err := filesystem.EnsureDir(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	s := &SQLite{db: db, path: path, clock: clk}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			priority TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS time_entries (
			id TEXT PRIMARY KEY,
			activity TEXT NOT NULL,
			minutes INTEGER NOT NULL,
			day TEXT NOT NULL,
			logged_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_time_entries_day ON time_entries(day);
		CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			day TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_day ON events(day);
		CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		);
	`)
	return err
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Path returns the sqlite database path.
func (s *SQLite) Path() string {
	return s.path
}

// Ping verifies the database answers queries.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	if strings.TrimSpace(task.Text) == "" {
		return domain.Task{}, fmt.Errorf("%w: task text must not be empty", domain.ErrInvalid)
	}
	if task.Priority == "" {
		task.Priority = domain.DefaultPriority
	}
	task.ID = s.newULID()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.clock.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, text, priority, completed, created_at) VALUES (?, ?, ?, ?, ?)`,
		task.ID, task.Text, string(task.Priority), boolToInt(task.Completed), task.CreatedAt.Format(domain.TimestampFormat),
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (s *SQLite) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]domain.Task, error) {
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, text, priority, completed, created_at FROM tasks`)
	var args []interface{}
	if filter.Priority != "" {
		builder.WriteString(" WHERE priority = ?")
		args = append(args, string(filter.Priority))
	}
	builder.WriteString(" ORDER BY datetime(created_at) ASC, id ASC")

	rows, err := s.db.QueryContext(ctx, builder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		var completed int
		var created string
		if err := rows.Scan(&task.ID, &task.Text, (*string)(&task.Priority), &completed, &created); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task.Completed = completed == 1
		task.CreatedAt = parseTimestamp(created)
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *SQLite) UpdateTask(ctx context.Context, id string, patch ports.TaskPatch) error {
	if patch.Completed == nil {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalid)
	}
	resolved, err := s.resolveID(ctx, "tasks", id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, boolToInt(*patch.Completed), resolved)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (s *SQLite) DeleteTask(ctx context.Context, id string) error {
	resolved, err := s.resolveID(ctx, "tasks", id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, resolved)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *SQLite) CreateTimeEntry(ctx context.Context, entry domain.TimeEntry) (domain.TimeEntry, error) {
	if strings.TrimSpace(entry.Activity) == "" {
		return domain.TimeEntry{}, fmt.Errorf("%w: activity must not be empty", domain.ErrInvalid)
	}
	if entry.Minutes < 0 {
		return domain.TimeEntry{}, fmt.Errorf("%w: minutes must not be negative", domain.ErrInvalid)
	}
	entry.ID = s.newULID()
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = s.clock.Now().UTC()
	}
	if entry.Day == "" {
		entry.Day = entry.LoggedAt.Format(domain.DayFormat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO time_entries (id, activity, minutes, day, logged_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Activity, entry.Minutes, entry.Day, entry.LoggedAt.Format(domain.TimestampFormat),
	)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("insert time entry: %w", err)
	}
	return entry, nil
}

// ListTimeEntriesOn returns the day's entries, most recent first.
func (s *SQLite) ListTimeEntriesOn(ctx context.Context, day string) ([]domain.TimeEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, activity, minutes, day, logged_at FROM time_entries WHERE day = ? ORDER BY datetime(logged_at) DESC, id DESC`,
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		var entry domain.TimeEntry
		var logged string
		if err := rows.Scan(&entry.ID, &entry.Activity, &entry.Minutes, &entry.Day, &logged); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		entry.LoggedAt = parseTimestamp(logged)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLite) CreateEvent(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	if strings.TrimSpace(event.Title) == "" {
		return domain.CalendarEvent{}, fmt.Errorf("%w: event title must not be empty", domain.ErrInvalid)
	}
	if event.Day == "" {
		event.Day = s.clock.Now().Format(domain.DayFormat)
	}
	if _, err := time.Parse(domain.DayFormat, event.Day); err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("%w: day %q is not a valid calendar day", domain.ErrInvalid, event.Day)
	}
	event.ID = s.newULID()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.clock.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, title, day, created_at) VALUES (?, ?, ?, ?)`,
		event.ID, event.Title, event.Day, event.CreatedAt.Format(domain.TimestampFormat),
	)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (s *SQLite) ListEventsOn(ctx context.Context, day string) ([]domain.CalendarEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, day, created_at FROM events WHERE day = ? ORDER BY datetime(created_at) ASC, id ASC`,
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		var event domain.CalendarEvent
		var created string
		if err := rows.Scan(&event.ID, &event.Title, &event.Day, &created); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.CreatedAt = parseTimestamp(created)
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *SQLite) CreateNote(ctx context.Context, note domain.Note) (domain.Note, error) {
	if strings.TrimSpace(note.Title) == "" {
		return domain.Note{}, fmt.Errorf("%w: note title must not be empty", domain.ErrInvalid)
	}
	if strings.TrimSpace(note.Content) == "" {
		return domain.Note{}, fmt.Errorf("%w: note content must not be empty", domain.ErrInvalid)
	}
	note.ID = s.newULID()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = s.clock.Now().UTC()
	}
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return domain.Note{}, fmt.Errorf("encode tags: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, tags, created_at) VALUES (?, ?, ?, ?, ?)`,
		note.ID, note.Title, note.Content, string(tags), note.CreatedAt.Format(domain.TimestampFormat),
	)
	if err != nil {
		return domain.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return note, nil
}

// SearchNotes matches the keyword case-insensitively against note titles and
// content.
func (s *SQLite) SearchNotes(ctx context.Context, keyword string) ([]domain.Note, error) {
	needle := "%" + strings.ToLower(keyword) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, tags, created_at FROM notes
		 WHERE lower(title) LIKE ? OR lower(content) LIKE ?
		 ORDER BY datetime(created_at) DESC, id DESC`,
		needle, needle,
	)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

func (s *SQLite) ListNotes(ctx context.Context) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, tags, created_at FROM notes ORDER BY datetime(created_at) DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]domain.Note, error) {
	var notes []domain.Note
	for rows.Next() {
		var note domain.Note
		var tags, created string
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &tags, &created); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &note.Tags); err != nil {
				note.Tags = nil
			}
		}
		note.CreatedAt = parseTimestamp(created)
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// resolveID accepts a full id or a unique prefix of at least
// domain.MinIDPrefixLength characters. Ambiguous prefixes report a conflict
// with the match count.
func (s *SQLite) resolveID(ctx context.Context, table, raw string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	if id == "" {
		return "", fmt.Errorf("%w: id must not be empty", domain.ErrInvalid)
	}

	var exact string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE id = ?`, id).Scan(&exact)
	if err == nil {
		return exact, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("resolve id: %w", err)
	}

	if len(id) < domain.MinIDPrefixLength {
		return "", fmt.Errorf("%w: id %q", domain.ErrNotFound, raw)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM `+table+` WHERE id LIKE ? ORDER BY id ASC`, id+"%")
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return "", fmt.Errorf("resolve id: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: id %q", domain.ErrNotFound, raw)
	case 1:
		return matches[0], nil
	default:
		return "", &domain.PrefixConflictError{Prefix: raw, Matches: len(matches)}
	}
}

func (s *SQLite) newULID() string {
	t := ulid.Timestamp(s.clock.Now())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// Entropy read failed; a timestamp id keeps the write flowing.
		return fmt.Sprintf("%026d", s.clock.Now().UnixNano())
	}
	return strings.ToUpper(id.String())
}

func parseTimestamp(raw string) time.Time {
	if t, err := time.Parse(domain.TimestampFormat, raw); err == nil {
		return t
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compile-time interface compliance check
var _ ports.Store = (*SQLite)(nil)
