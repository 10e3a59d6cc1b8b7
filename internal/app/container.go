package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nkzrv/cyberdeck/internal/console"
	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/infrastructure/config"
	"github.com/nkzrv/cyberdeck/internal/infrastructure/nav"
	"github.com/nkzrv/cyberdeck/internal/infrastructure/state"
	"github.com/nkzrv/cyberdeck/internal/infrastructure/store"
	"github.com/nkzrv/cyberdeck/internal/pkg/clock"
	"github.com/nkzrv/cyberdeck/internal/pkg/filesystem"
	"github.com/nkzrv/cyberdeck/internal/pkg/logger"
	"github.com/nkzrv/cyberdeck/internal/ports"
	"github.com/nkzrv/cyberdeck/internal/services"
)

// Container wires up the console core with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Store         *store.SQLite
	State         *state.FileStore
	Nav           *nav.Local
	Console       *console.Console
	DoctorService *services.DoctorService
	Logger        ports.Logger
	// Clipboard is attached by the CLI layer, which owns the platform
	// lookup. It stays nil in tests that never copy.
	Clipboard ports.Clipboard

	logFile *os.File
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Verbose logs go to a file under the data dir so debug output does
	// not tear the interactive shell's screen. Stderr is the fallback.
	var log ports.Logger = logger.NewStd(verbose)
	var logFile *os.File
	if verbose {
		logPath := config.LogPath(cfg)
		if err := filesystem.EnsureDir(filepath.Dir(logPath), domain.DirectoryPermissions); err == nil {
			if f, ferr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.SecureFilePermissions); ferr == nil {
				log = logger.NewWriter(true, f)
				logFile = f
			}
		}
	}
	clk := clock.Real()

	db, err := store.Open(config.DatabasePath(cfg), clk)
	if err != nil {
		return nil, err
	}

	kv := state.NewFileStore(config.StatePath(cfg))
	navigator := nav.NewLocal(domain.ViewDashboard)

	theme, err := domain.ParseTheme(cfg.Preferences.DefaultTheme)
	if err != nil {
		log.Warn("config default_theme is not a known theme", map[string]interface{}{
			"value": cfg.Preferences.DefaultTheme,
		})
		theme = domain.DefaultTheme
	}

	cons, err := console.New(console.Options{
		Store:          db,
		Navigator:      navigator,
		KV:             kv,
		Logger:         log,
		Clock:          clk,
		HistoryKeep:    cfg.Console.HistoryKeep,
		TranscriptKeep: cfg.Console.TranscriptRows,
		DefaultTheme:   theme,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	doctor := &services.DoctorService{
		ConfigProvider: cfgLoader,
		ConfigPath:     cfgLoader.Path(),
		Store:          db,
		DatabasePath:   db.Path(),
		KV:             kv,
		StatePath:      kv.Path(),
	}

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		Store:         db,
		State:         kv,
		Nav:           navigator,
		Console:       cons,
		DoctorService: doctor,
		Logger:        log,
		logFile:       logFile,
	}, nil
}

// Close releases held resources: the database handle and the verbose log
// file when one was opened.
func (c *Container) Close() error {
	var err error
	if c.Store != nil {
		err = c.Store.Close()
	}
	if c.logFile != nil {
		c.logFile.Close()
	}
	return err
}
