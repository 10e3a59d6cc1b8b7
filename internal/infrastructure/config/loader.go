package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nkzrv/cyberdeck/assets"
	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/filesystem"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// FileLoader loads YAML configuration from ~/.cyberdeck/config.yaml
// (overridable via CYBERDECK_CONFIG). A missing file is seeded from the
// embedded default so a fresh install starts with a commented template.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path defers to the environment
// and the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Save writes the configuration back to the resolved path.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Reset rewrites the embedded default template and returns the hydrated
// result.
func (l *FileLoader) Reset() (domain.Config, error) {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}
	if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
		return domain.Config{}, err
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Path reports the config file location the loader resolves to.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("CYBERDECK_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".cyberdeck", "config.yaml")
}

// DatabasePath resolves the sqlite database location from the configuration.
func DatabasePath(cfg domain.Config) string {
	return resolveDataFile(cfg, cfg.Storage.DatabaseFile)
}

// StatePath resolves the session state file location from the configuration.
func StatePath(cfg domain.Config) string {
	return resolveDataFile(cfg, cfg.Storage.StateFile)
}

// LogPath resolves the verbose log file location from the configuration.
func LogPath(cfg domain.Config) string {
	return resolveDataFile(cfg, "console.log")
}

func resolveDataFile(cfg domain.Config, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(expandPath(cfg.Storage.DataDir), file)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Preferences.DefaultTheme == "" {
		cfg.Preferences.DefaultTheme = string(domain.DefaultTheme)
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = filepath.Join(filesystem.UserHomeDir(), ".cyberdeck")
	}
	if cfg.Storage.DatabaseFile == "" {
		cfg.Storage.DatabaseFile = "cyberdeck.db"
	}
	if cfg.Storage.StateFile == "" {
		cfg.Storage.StateFile = "state.json"
	}
	if cfg.Console.HistoryKeep == 0 {
		cfg.Console.HistoryKeep = domain.DefaultHistoryKeep
	}
	if cfg.Console.TranscriptRows == 0 {
		cfg.Console.TranscriptRows = domain.DefaultTranscriptKeep
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
