package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/filesystem"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// FileStore keeps session state (theme, active timer, command history) as a
// single JSON document rewritten atomically on every change. The file carries
// personal command history, so it is written with owner-only permissions.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the JSON document at path. The file
// is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get retrieves a value. Absent keys and an absent file report ok=false
// without an error.
func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return "", false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

// Set stores a value and rewrites the document. A corrupt existing document
// is replaced rather than blocking writes forever.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		doc = map[string]string{}
	}
	doc[key] = value
	return f.save(doc)
}

// Remove deletes a key. Removing an absent key is not an error.
func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		doc = map[string]string{}
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return f.save(doc)
}

// Entries returns a copy of the whole document with its keys sorted, for
// inspection commands.
func (f *FileStore) Entries() (map[string]string, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return nil, nil, err
	}
	out := make(map[string]string, len(doc))
	keys := make([]string, 0, len(doc))
	for k, v := range doc {
		out[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return out, keys, nil
}

// Clear removes the state file entirely.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path exposes the state file location.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	doc := map[string]string{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("state file %s is not valid JSON: %w", f.path, err)
	}
	return doc, nil
}

func (f *FileStore) save(doc map[string]string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := filesystem.EnsureDir(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return filesystem.WriteAtomic(f.path, data, domain.SecureFilePermissions)
}

var _ ports.KeyValue = (*FileStore)(nil)
