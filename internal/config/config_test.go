package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpcli/jobeff/internal/render"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Format != render.DefaultFormat {
		t.Fatalf("Format = %q, want %q", cfg.Format, render.DefaultFormat)
	}
	if cfg.Color != defaultColor {
		t.Fatalf("Color = %q, want %q", cfg.Color, defaultColor)
	}
	if cfg.PagerThreshold != defaultPagerThreshold {
		t.Fatalf("PagerThreshold = %d, want %d", cfg.PagerThreshold, defaultPagerThreshold)
	}
	if cfg.SacctPath != "" {
		t.Fatalf("SacctPath = %q, want empty", cfg.SacctPath)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
format = "  JobID%>,State  "
color = "  never  "
pager_threshold = 5
sacct_path = "  /opt/slurm/bin/sacct  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Format != "JobID%>,State" {
		t.Fatalf("Format = %q, want %q", cfg.Format, "JobID%>,State")
	}
	if cfg.Color != "never" {
		t.Fatalf("Color = %q, want %q", cfg.Color, "never")
	}
	if cfg.PagerThreshold != 5 {
		t.Fatalf("PagerThreshold = %d, want 5", cfg.PagerThreshold)
	}
	if cfg.SacctPath != "/opt/slurm/bin/sacct" {
		t.Fatalf("SacctPath = %q, want %q", cfg.SacctPath, "/opt/slurm/bin/sacct")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
format = "   "
color = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Format != render.DefaultFormat {
		t.Fatalf("Format = %q, want %q", cfg.Format, render.DefaultFormat)
	}
	if cfg.Color != defaultColor {
		t.Fatalf("Color = %q, want %q", cfg.Color, defaultColor)
	}
}

func TestLoad_InvalidColorFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`color = "sometimes"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want color error")
	}
	if !strings.Contains(err.Error(), "color") {
		t.Fatalf("Load error = %q, want it to mention color", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`format = [`), 0o600); err != nil {
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
