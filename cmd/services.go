package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/focusflow/internal/adapters/git"
	"github.com/xvierd/focusflow/internal/adapters/notification"
	"github.com/xvierd/focusflow/internal/adapters/storage"
	"github.com/xvierd/focusflow/internal/adapters/tui"
	"github.com/xvierd/focusflow/internal/config"
	"github.com/xvierd/focusflow/internal/ports"
	"github.com/xvierd/focusflow/internal/services"
)

// debugLogName is the log file used by --debug when log.file is unset.
const debugLogName = "focusflow-debug.log"

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	store      ports.PreferenceStore
	theme      *services.ThemeService
	notifier   *notification.Notifier
	git        ports.GitDetector
	logFile    io.Closer
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error

	app.configPath = configPath
	if app.configPath == "" {
		if app.configPath, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	app.config, err = config.Load(app.configPath)
	if err != nil {
		// A broken config file should not lock the user out.
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		app.config = config.DefaultConfig()
	}

	if err := setupLogging(app.config); err != nil {
		return err
	}

	app.notifier = notification.New(&app.config.Notifications)

	path := dbPath
	if path == "" {
		path = config.GetDBPath(app.config)
	}
	if path != storage.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	app.store, err = storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.git = git.NewDetector()
	app.theme = services.NewThemeService(app.store, tui.TerminalAppearance{})

	log.Printf("focusflow %s: config=%s db=%s", Version, app.configPath, path)
	return nil
}

// dashboardOptions maps the loaded config onto a fresh dashboard.
func dashboardOptions(cfg *config.Config) services.DashboardOptions {
	workingDir, _ := os.Getwd()

	opts := services.DefaultDashboardOptions()
	opts.ConfirmWindow = time.Duration(cfg.ConfirmWindow)
	opts.TickInterval = time.Duration(cfg.TickInterval)
	opts.SeedTasks = cfg.ToDomainSeeds()
	opts.Notes = cfg.Dashboard.Notes
	opts.Session = services.SessionOptions{
		AutoStart:  cfg.Focus.AutoStart,
		GitContext: cfg.Focus.GitContext,
		WorkingDir: workingDir,
	}
	return opts
}

// setupLogging routes the standard logger to a file when --debug or
// log.file asks for one. The terminal belongs to the TUI otherwise.
func setupLogging(cfg *config.Config) error {
	path := cfg.Log.File
	if path == "" && debug {
		path = filepath.Join(cfg.Storage.DataDir, debugLogName)
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "focusflow")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	app.logFile = f
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var err error
	if app.store != nil {
		err = app.store.Close()
		app.store = nil
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
		log.SetOutput(io.Discard)
	}
	return err
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
