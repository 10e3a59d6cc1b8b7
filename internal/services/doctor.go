package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/filesystem"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// DoctorService runs environment diagnostics over the deck's moving parts:
// configuration, data directory, database, state file, timer, clipboard.
type DoctorService struct {
	ConfigProvider ports.ConfigProvider
	ConfigPath     string
	Store          ports.Store
	DatabasePath   string
	KV             ports.KeyValue
	StatePath      string
	Clipboard      ports.Clipboard
	Clock          func() time.Time
}

// Run executes checks and returns a report. Only a config load failure aborts
// the run; every other problem lands in the report.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format %s at %s", cfg.ConfigFormatVersion, s.ConfigPath)))

	checks = append(checks, s.dataDirCheck(cfg))
	checks = append(checks, s.databaseCheck(ctx))
	checks = append(checks, s.stateFileCheck())
	checks = append(checks, s.timerCheck())
	checks = append(checks, s.clipboardCheck())

	return domain.HealthReport{Checks: checks}, nil
}

func (s *DoctorService) dataDirCheck(cfg domain.Config) domain.HealthCheck {
	dir := expandPath(cfg.Storage.DataDir)
	info, err := os.Stat(dir)
	if err != nil {
		return warn("Data directory", fmt.Sprintf("missing at %s, created on first write", dir))
	}
	if !info.IsDir() {
		return fail("Data directory", fmt.Sprintf("%s is not a directory", dir))
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fail("Data directory", fmt.Sprintf("not writable: %v", err))
	}
	probe.Close()
	os.Remove(probe.Name())
	return ok("Data directory", dir)
}

func (s *DoctorService) databaseCheck(ctx context.Context) domain.HealthCheck {
	if s.Store == nil {
		return warn("Database", "store not initialized")
	}
	tasks, err := s.Store.ListTasks(ctx, ports.TaskFilter{})
	if err != nil {
		return fail("Database", err.Error())
	}
	notes, err := s.Store.ListNotes(ctx)
	if err != nil {
		return fail("Database", err.Error())
	}
	size := "empty"
	if info, err := os.Stat(s.DatabasePath); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	return ok("Database", fmt.Sprintf("%d tasks, %d notes, %s on disk", len(tasks), len(notes), size))
}

func (s *DoctorService) stateFileCheck() domain.HealthCheck {
	if s.KV == nil {
		return warn("State file", "state store not initialized")
	}
	// Any key exercises the whole document parse.
	if _, _, err := s.KV.Get(domain.StateKeyTheme); err != nil {
		return fail("State file", err.Error())
	}
	info, err := os.Stat(s.StatePath)
	if err != nil {
		return ok("State file", "not created yet")
	}
	return ok("State file", fmt.Sprintf("%s, %s", s.StatePath, humanize.Bytes(uint64(info.Size()))))
}

func (s *DoctorService) timerCheck() domain.HealthCheck {
	if s.KV == nil {
		return warn("Active timer", "state store not initialized")
	}
	raw, found, err := s.KV.Get(domain.StateKeyTimer)
	if err != nil || !found {
		return ok("Active timer", "idle")
	}
	var timer domain.ActiveTimer
	if err := json.Unmarshal([]byte(raw), &timer); err != nil {
		return warn("Active timer", "stored timer is unreadable, stop and restart it")
	}
	if timer.StartedAt.After(s.now()) {
		return warn("Active timer", fmt.Sprintf("%s started in the future, check the system clock", timer.Activity))
	}
	return ok("Active timer", fmt.Sprintf("%s, running %s", timer.Activity, humanize.Time(timer.StartedAt)))
}

func (s *DoctorService) clipboardCheck() domain.HealthCheck {
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return warn("Clipboard", "no clipboard tool found, copy shortcut disabled")
	}
	return ok("Clipboard", "copy shortcut available")
}

func (s *DoctorService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
