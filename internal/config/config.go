package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where hiremap reads its document and how the TUI starts.
type Config struct {
	Source         string
	StartTab       string
	LogFile        string
	Watch          bool
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/hiremap/config.toml"
	defaultSource         = "~/.local/share/hiremap/consolidated.json"
	defaultStartTab       = "overview"
	defaultRequestTimeout = 5 * time.Second
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Source:         mustExpandSource(defaultSource),
		StartTab:       defaultStartTab,
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load locates and parses the hiremap config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source         string `toml:"source"`
		StartTab       string `toml:"start_tab"`
		LogFile        string `toml:"log_file"`
		Watch          bool   `toml:"watch"`
		RequestTimeout int    `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if src := strings.TrimSpace(raw.Source); src != "" {
		cfg.Source = mustExpandSource(src)
	}
	if tab := strings.TrimSpace(raw.StartTab); tab != "" {
		cfg.StartTab = strings.ToLower(tab)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.Watch = raw.Watch
	if raw.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("parse config: request_timeout must not be negative")
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}

	return cfg, nil
}

// IsRemote reports whether the source is fetched over HTTP.
func (c Config) IsRemote() bool {
	return isURL(c.Source)
}

// SourcePath expands a user-provided source. URLs are returned unchanged.
func SourcePath(source string) string {
	return mustExpandSource(source)
}

func isURL(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func mustExpandSource(source string) string {
	if isURL(source) {
		return strings.TrimSpace(source)
	}
	return mustExpand(source)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
