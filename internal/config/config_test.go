package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantSource, err := expandPath(defaultSource)
	if err != nil {
		t.Fatalf("expandPath(defaultSource) returned error: %v", err)
	}
	if cfg.Source != wantSource {
		t.Fatalf("Source = %q, want %q", cfg.Source, wantSource)
	}
	if cfg.StartTab != defaultStartTab {
		t.Fatalf("StartTab = %q, want %q", cfg.StartTab, defaultStartTab)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.Watch || cfg.LogFile != "" {
		t.Fatalf("Watch/LogFile = %v/%q, want off", cfg.Watch, cfg.LogFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
source = "  ~/data/hiring.yaml  "
start_tab = " Hiring "
log_file = "~/hiremap.log"
watch = true
request_timeout = 12
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != filepath.Join(home, "data/hiring.yaml") {
		t.Fatalf("Source = %q, want it under HOME %q", cfg.Source, home)
	}
	if cfg.StartTab != "hiring" {
		t.Fatalf("StartTab = %q, want %q", cfg.StartTab, "hiring")
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if !cfg.Watch {
		t.Fatal("Watch = false, want true")
	}
	if cfg.RequestTimeout != 12*time.Second {
		t.Fatalf("RequestTimeout = %v, want 12s", cfg.RequestTimeout)
	}
	if cfg.IsRemote() {
		t.Fatal("IsRemote = true for a local path")
	}
}

func TestLoad_URLSourceIsNotExpanded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`source = " https://example.com/consolidated.json "`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != "https://example.com/consolidated.json" {
		t.Fatalf("Source = %q, want the URL unchanged", cfg.Source)
	}
	if !cfg.IsRemote() {
		t.Fatal("IsRemote = false for an https source")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
source = "   "
start_tab = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`source = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_NegativeTimeoutFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`request_timeout = -1`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load returned nil error for a negative timeout")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestSourcePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := SourcePath("http://host/doc.yaml"); got != "http://host/doc.yaml" {
		t.Fatalf("SourcePath(url) = %q", got)
	}
	if got := SourcePath("~/doc.json"); got != filepath.Join(home, "doc.json") {
		t.Fatalf("SourcePath(~/doc.json) = %q", got)
	}
}
