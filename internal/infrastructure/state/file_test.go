package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "state.json"))
}

func TestGetAbsentKey(t *testing.T) {
	f := newTestStore(t)

	value, ok, err := f.Get("console.theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get(absent) = (%q, %v), want empty and false", value, ok)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	f := newTestStore(t)

	if err := f.Set("console.theme", "green"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, ok, err := f.Get("console.theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != "green" {
		t.Errorf("Get() = (%q, %v), want (\"green\", true)", value, ok)
	}
}

func TestSetCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	f := NewFileStore(filepath.Join(dir, "nested", "deeper", "state.json"))

	if err := f.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := os.Stat(f.Path()); err != nil {
		t.Errorf("state file missing after Set: %v", err)
	}
}

func TestFilePermissionsOwnerOnly(t *testing.T) {
	f := newTestStore(t)

	if err := f.Set("console.history", `["secret command"]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	info, err := os.Stat(f.Path())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("state file mode = %o, want 600", perm)
	}
}

func TestRemove(t *testing.T) {
	f := newTestStore(t)

	if err := f.Set("console.timer", `{"activity":"focus"}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := f.Remove("console.timer"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, _ := f.Get("console.timer"); ok {
		t.Error("key still present after Remove")
	}
	if err := f.Remove("console.timer"); err != nil {
		t.Errorf("Remove(absent) error = %v, want nil", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	first := NewFileStore(path)
	if err := first.Set("console.theme", "red"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	second := NewFileStore(path)
	value, ok, err := second.Get("console.theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != "red" {
		t.Errorf("Get() after reopen = (%q, %v), want (\"red\", true)", value, ok)
	}
}

func TestCorruptFileReportsErrorOnGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	f := NewFileStore(path)

	if _, _, err := f.Get("console.theme"); err == nil {
		t.Error("Get() on corrupt file returned nil error")
	}
}

func TestSetHealsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	f := NewFileStore(path)

	if err := f.Set("console.theme", "black"); err != nil {
		t.Fatalf("Set() on corrupt file error = %v", err)
	}
	value, ok, err := f.Get("console.theme")
	if err != nil {
		t.Fatalf("Get() after heal error = %v", err)
	}
	if !ok || value != "black" {
		t.Errorf("Get() after heal = (%q, %v), want (\"black\", true)", value, ok)
	}
}

func TestEntriesSortedKeys(t *testing.T) {
	f := newTestStore(t)
	for key, value := range map[string]string{
		"console.timer": "t",
		"console.theme": "green",
		"anchor":        "a",
	} {
		if err := f.Set(key, value); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	entries, keys, err := f.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if diff := cmp.Diff([]string{"anchor", "console.theme", "console.timer"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if entries["console.theme"] != "green" {
		t.Errorf("entries[console.theme] = %q, want green", entries["console.theme"])
	}
}

func TestClearRemovesFile(t *testing.T) {
	f := newTestStore(t)
	if err := f.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := f.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := os.Stat(f.Path()); !os.IsNotExist(err) {
		t.Errorf("state file still present after Clear, stat err = %v", err)
	}
	if err := f.Clear(); err != nil {
		t.Errorf("Clear() with no file error = %v, want nil", err)
	}
}
