package app

import (
	"fmt"
	"io"

	"github.com/dshills/gridstorm/script"
	"github.com/dshills/gridstorm/storage"
)

// Options configures the application.
type Options struct {
	// DatasetPath is the TOML dataset file to display.
	DatasetPath string

	// ScriptPath optionally names a Lua script run against the store
	// after the dataset loads.
	ScriptPath string

	// Watch reloads the dataset whenever the file changes.
	Watch bool

	// LogLevel filters log output.
	LogLevel LogLevel

	// LogOutput is where logs are written; nil discards them (the
	// terminal is owned by the view).
	LogOutput io.Writer
}

// App owns the engine, the view observing it, and the optional watcher
// and script runner.
type App struct {
	opts    Options
	log     *Logger
	store   *storage.Engine
	view    *View
	watcher *Watcher
}

// New builds the application: engine, dataset, view, and collaborators.
func New(opts Options) (*App, error) {
	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	log := NewLogger(opts.LogLevel, out)

	a := &App{opts: opts, log: log}
	a.store = storage.New(
		storage.WithHeaderKind(HeaderKind),
		storage.WithFooterKind(FooterKind),
		storage.WithDiagnostics(log.WithComponent("storage").Warnf),
	)

	dataset, err := LoadDataset(opts.DatasetPath)
	if err != nil {
		return nil, err
	}
	dataset.Apply(a.store)
	log.Infof("loaded dataset %s: %d sections", opts.DatasetPath, a.store.SectionCount())

	view, err := NewView(a.store, dataset.Title, log)
	if err != nil {
		return nil, fmt.Errorf("creating view: %w", err)
	}
	a.view = view
	view.OnReload = a.reloadDataset

	// The observer attaches after the initial load so the first paint is
	// the view's own renderAll rather than a burst of reload signals.
	a.store.SetObserver(view)

	if opts.ScriptPath != "" {
		if err := a.runScript(opts.ScriptPath); err != nil {
			view.Close()
			return nil, err
		}
	}

	if opts.Watch {
		w, err := NewWatcher(opts.DatasetPath, log, view.PostReload)
		if err != nil {
			view.Close()
			return nil, fmt.Errorf("watching dataset: %w", err)
		}
		a.watcher = w
	}

	return a, nil
}

// Run drives the view's event loop until the user quits.
func (a *App) Run() error {
	return a.view.Run()
}

// Shutdown releases the watcher and the terminal.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	a.view.Close()
}

func (a *App) runScript(path string) error {
	runner := script.NewRunner(a.store)
	defer runner.Close()
	if err := runner.RunFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	a.log.Infof("ran script %s", path)
	return nil
}

// reloadDataset re-reads the dataset file and replaces the store contents.
// Runs on the view's event loop.
func (a *App) reloadDataset() {
	dataset, err := LoadDataset(a.opts.DatasetPath)
	if err != nil {
		a.log.Errorf("reload failed: %v", err)
		return
	}
	dataset.Apply(a.store)
	a.view.SetTitle(dataset.Title)
	a.log.Infof("reloaded dataset %s", a.opts.DatasetPath)
}
