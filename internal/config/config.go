package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/hpcli/jobeff/internal/render"
)

// Config captures the user's jobeff defaults. Every field has a working
// default so no config file is required.
type Config struct {
	Format         string // default column specification
	Color          string // "auto", "always", or "never"
	PagerThreshold int    // page output above this many jobs
	SacctPath      string // override for the sacct binary
}

const (
	defaultConfigPath     = "~/.config/jobeff/config.toml"
	defaultColor          = "auto"
	defaultPagerThreshold = 20
)

// Load locates and parses the jobeff config, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Format:         render.DefaultFormat,
		Color:          defaultColor,
		PagerThreshold: defaultPagerThreshold,
	}

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
		Format         string `toml:"format"`
		Color          string `toml:"color"`
		PagerThreshold *int   `toml:"pager_threshold"`
		SacctPath      string `toml:"sacct_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if format := strings.TrimSpace(raw.Format); format != "" {
		cfg.Format = format
	}
	if color := strings.TrimSpace(raw.Color); color != "" {
		switch color {
		case "auto", "always", "never":
			cfg.Color = color
		default:
			return Config{}, fmt.Errorf("parse config: color must be auto, always, or never, got %q", color)
		}
	}
	if raw.PagerThreshold != nil && *raw.PagerThreshold >= 0 {
		cfg.PagerThreshold = *raw.PagerThreshold
	}
	cfg.SacctPath = strings.TrimSpace(raw.SacctPath)

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
