// Package cli wires the engines to the dailies command surface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sadopc/dailies/internal/backup"
	"github.com/sadopc/dailies/internal/config"
	"github.com/sadopc/dailies/internal/stats"
	"github.com/sadopc/dailies/internal/store"
	"github.com/sadopc/dailies/internal/task"
	"github.com/sadopc/dailies/internal/timer"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "dailies",
	Short:         "Track daily habits, goals and time",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// App bundles one opened store with the engines on top of it. Commands
// open it, use it, close it.
type App struct {
	Cfg     config.Config
	Store   *store.Store
	Tasks   *task.Service
	Tracker *timer.Tracker
	Stats   *stats.Service
	Engine  *backup.Engine
}

func openApp() (*App, error) {
	cfg := config.MustLoad(cfgPath)

	dbPath := cfg.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		return nil, err
	}

	return &App{
		Cfg:     cfg,
		Store:   s,
		Tasks:   task.New(s),
		Tracker: timer.New(s),
		Stats:   stats.New(s),
		Engine:  backup.NewEngine(s),
	}, nil
}

func (a *App) Close() {
	a.Store.Close()
}

// Manager builds the cloud mirror over the configured backup directory.
func (a *App) Manager() (*backup.Manager, error) {
	dir := a.Cfg.BackupDir
	if dir == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve backup directory: %w", err)
		}
		dir = filepath.Join(cfgDir, "dailies", "backups")
	}
	ds, err := backup.NewDirStore(dir)
	if err != nil {
		return nil, err
	}
	return backup.NewManager(a.Engine, ds, a.Cfg.MaxBackups), nil
}
