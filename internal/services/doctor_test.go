package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

func testDoctor(t *testing.T) (*DoctorService, *doctorKV) {
	t.Helper()
	dir := t.TempDir()
	kv := &doctorKV{values: map[string]string{}}
	return &DoctorService{
		ConfigProvider: &doctorConfig{cfg: domain.Config{
			ConfigFormatVersion: "1",
			Storage:             domain.StorageSettings{DataDir: dir},
		}},
		ConfigPath:   filepath.Join(dir, "config.yaml"),
		Store:        &doctorStore{},
		DatabasePath: filepath.Join(dir, "cyberdeck.db"),
		KV:           kv,
		StatePath:    filepath.Join(dir, "state.json"),
		Clipboard:    &doctorClipboard{enabled: true},
		Clock:        func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) },
	}, kv
}

func TestDoctorHealthyRun(t *testing.T) {
	doctor, _ := testDoctor(t)

	report, err := doctor.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Healthy() {
		t.Errorf("Healthy() = false, report %+v", report)
	}
	if len(report.Checks) != 6 {
		t.Errorf("got %d checks, want 6", len(report.Checks))
	}
}

func TestDoctorConfigLoadFailureAborts(t *testing.T) {
	doctor, _ := testDoctor(t)
	doctor.ConfigProvider = &doctorConfig{err: errors.New("yaml exploded")}

	report, err := doctor.Run(context.Background())
	if err == nil {
		t.Fatal("Run() error = nil, want config failure")
	}
	if report.Healthy() {
		t.Error("Healthy() = true after config failure")
	}
	if len(report.Checks) != 1 {
		t.Errorf("got %d checks, want only the failed config check", len(report.Checks))
	}
}

func TestDoctorDatabaseFailure(t *testing.T) {
	doctor, _ := testDoctor(t)
	doctor.Store = &doctorStore{err: errors.New("disk detached")}

	report, err := doctor.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Healthy() {
		t.Error("Healthy() = true with a broken database")
	}
	if got := findCheck(t, report, "Database"); got.Status != domain.HealthError {
		t.Errorf("Database status = %s, want error", got.Status)
	}
}

func TestDoctorTimerChecks(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		doctor, _ := testDoctor(t)
		report, _ := doctor.Run(context.Background())
		if got := findCheck(t, report, "Active timer"); got.Details != "idle" {
			t.Errorf("timer details = %q, want idle", got.Details)
		}
	})

	t.Run("running", func(t *testing.T) {
		doctor, kv := testDoctor(t)
		timer, _ := json.Marshal(domain.ActiveTimer{
			Activity:  "deep work",
			StartedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		})
		kv.values[domain.StateKeyTimer] = string(timer)

		report, _ := doctor.Run(context.Background())
		if got := findCheck(t, report, "Active timer"); got.Status != domain.HealthOK {
			t.Errorf("timer status = %s, want ok", got.Status)
		}
	})

	t.Run("started in the future", func(t *testing.T) {
		doctor, kv := testDoctor(t)
		timer, _ := json.Marshal(domain.ActiveTimer{
			Activity:  "time travel",
			StartedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		kv.values[domain.StateKeyTimer] = string(timer)

		report, _ := doctor.Run(context.Background())
		if got := findCheck(t, report, "Active timer"); got.Status != domain.HealthWarn {
			t.Errorf("timer status = %s, want warn", got.Status)
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		doctor, kv := testDoctor(t)
		kv.values[domain.StateKeyTimer] = "{broken"

		report, _ := doctor.Run(context.Background())
		if got := findCheck(t, report, "Active timer"); got.Status != domain.HealthWarn {
			t.Errorf("timer status = %s, want warn", got.Status)
		}
	})
}

func TestDoctorClipboardWarningStaysHealthy(t *testing.T) {
	doctor, _ := testDoctor(t)
	doctor.Clipboard = &doctorClipboard{enabled: false}

	report, err := doctor.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := findCheck(t, report, "Clipboard"); got.Status != domain.HealthWarn {
		t.Errorf("clipboard status = %s, want warn", got.Status)
	}
	if !report.Healthy() {
		t.Error("Healthy() = false, warnings must not fail the report")
	}
}

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q missing from report %+v", name, report)
	return domain.HealthCheck{}
}

type doctorConfig struct {
	cfg domain.Config
	err error
}

func (c *doctorConfig) Load(context.Context) (domain.Config, error) {
	return c.cfg, c.err
}

type doctorStore struct {
	err error
}

func (s *doctorStore) CreateTask(_ context.Context, task domain.Task) (domain.Task, error) {
	return task, s.err
}

func (s *doctorStore) ListTasks(context.Context, ports.TaskFilter) ([]domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Task{{ID: "T1", Text: "one"}}, nil
}

func (s *doctorStore) UpdateTask(context.Context, string, ports.TaskPatch) error { return s.err }
func (s *doctorStore) DeleteTask(context.Context, string) error                  { return s.err }

func (s *doctorStore) CreateTimeEntry(_ context.Context, entry domain.TimeEntry) (domain.TimeEntry, error) {
	return entry, s.err
}

func (s *doctorStore) ListTimeEntriesOn(context.Context, string) ([]domain.TimeEntry, error) {
	return nil, s.err
}

func (s *doctorStore) CreateEvent(_ context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	return event, s.err
}

func (s *doctorStore) ListEventsOn(context.Context, string) ([]domain.CalendarEvent, error) {
	return nil, s.err
}

func (s *doctorStore) CreateNote(_ context.Context, note domain.Note) (domain.Note, error) {
	return note, s.err
}

func (s *doctorStore) SearchNotes(context.Context, string) ([]domain.Note, error) {
	return nil, s.err
}

func (s *doctorStore) ListNotes(context.Context) ([]domain.Note, error) {
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

type doctorKV struct {
	values map[string]string
}

func (k *doctorKV) Get(key string) (string, bool, error) {
	v, ok := k.values[key]
	return v, ok, nil
}

func (k *doctorKV) Set(key, value string) error {
	k.values[key] = value
	return nil
}

func (k *doctorKV) Remove(key string) error {
	delete(k.values, key)
	return nil
}

type doctorClipboard struct {
	enabled bool
}

func (c *doctorClipboard) Copy(string) error { return nil }
func (c *doctorClipboard) Enabled() bool     { return c.enabled }
