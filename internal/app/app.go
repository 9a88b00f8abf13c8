package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hiremap/internal/config"
	"github.com/five82/hiremap/internal/panes"
	"github.com/five82/hiremap/internal/prefs"
	"github.com/five82/hiremap/internal/source"
	"github.com/five82/hiremap/internal/state"
	"github.com/five82/hiremap/internal/ui"
)

// Options configure the hiremap application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/hiremap/prefs.toml
	Source     string
	StartTab   string
	Watch      bool
}

// LoadConfig reads the config file and applies command line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if src := strings.TrimSpace(opts.Source); src != "" {
		cfg.Source = config.SourcePath(src)
	}
	if tab := strings.TrimSpace(opts.StartTab); tab != "" {
		cfg.StartTab = tab
	}
	if opts.Watch {
		cfg.Watch = true
	}
	return cfg, nil
}

// NewLoader builds the document loader for the configured source.
func NewLoader(cfg config.Config) (*source.Loader, error) {
	fetcher, err := source.New(cfg.Source, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init source: %w", err)
	}
	return source.NewLoader(fetcher), nil
}

// Run boots the hiremap TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	startPane, err := panes.ParseID(panes.Default(), cfg.StartTab)
	if err != nil {
		return fmt.Errorf("start tab: %w", err)
	}

	loader, err := NewLoader(cfg)
	if err != nil {
		return err
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	watching := cfg.Watch && !cfg.IsRemote()
	if cfg.Watch && cfg.IsRemote() {
		log.Printf("watch ignored for remote source %s", cfg.Source)
	}

	program := ui.NewProgram(ui.Options{
		Context:     ctx,
		Loader:      loader,
		Store:       &state.Store{},
		StartPane:   startPane,
		SourceLabel: cfg.Source,
		ThemeName:   userPrefs.Theme,
		KindFilter:  userPrefs.Kind(),
		PrefsPath:   opts.PrefsPath,
		Watching:    watching,
	})

	if watching {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := WatchFile(watchCtx, cfg.Source, defaultDebounce, func() {
			program.Send(ui.ReloadMsg{})
		})
		if err != nil {
			return fmt.Errorf("watch source: %w", err)
		}
	}

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogging routes the standard logger to path while the TUI owns the
// terminal, or discards it when no path is configured.
func setupLogging(path string) (func(), error) {
	if strings.TrimSpace(path) == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "hiremap")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		_ = f.Close()
		log.SetOutput(os.Stderr)
	}, nil
}
