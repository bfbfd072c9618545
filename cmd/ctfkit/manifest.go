package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const noCtfkitTomlMessage = "no ctfkit.toml found\nplease run record from a directory with a manifest, e.g.:\n  ctfkit record path/to/project"

type recordManifest struct {
	Path   string
	Root   string
	Config recordConfig
}

type recordConfig struct {
	Session sessionConfig `toml:"session"`
	Record  captureConfig `toml:"record"`
}

type sessionConfig struct {
	Name   string `toml:"name"`
	Domain string `toml:"domain"`
	Output string `toml:"output"`
}

type captureConfig struct {
	Events   []string `toml:"events"`
	Contexts []string `toml:"contexts"`
	Duration string   `toml:"duration"`
}

func findCtfkitToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ctfkit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadRecordManifest(startDir string) (*recordManifest, bool, error) {
	manifestPath, ok, err := findCtfkitToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadRecordConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &recordManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadRecordConfig(path string) (recordConfig, error) {
	var cfg recordConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return recordConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("session") {
		return recordConfig{}, fmt.Errorf("%s: missing [session]", path)
	}
	if !meta.IsDefined("session", "name") || strings.TrimSpace(cfg.Session.Name) == "" {
		return recordConfig{}, fmt.Errorf("%s: missing [session].name", path)
	}
	if !meta.IsDefined("session", "domain") || strings.TrimSpace(cfg.Session.Domain) == "" {
		return recordConfig{}, fmt.Errorf("%s: missing [session].domain", path)
	}
	if cfg.Record.Duration != "" {
		if _, err := time.ParseDuration(cfg.Record.Duration); err != nil {
			return recordConfig{}, fmt.Errorf("%s: invalid [record].duration: %w", path, err)
		}
	}
	return cfg, nil
}

// resolveOutputDir anchors a relative [session].output at the manifest root.
// An empty output falls back to <root>/traces/<name>.
func resolveOutputDir(manifest *recordManifest) string {
	out := strings.TrimSpace(manifest.Config.Session.Output)
	if out == "" {
		return filepath.Join(manifest.Root, "traces", manifest.Config.Session.Name)
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(manifest.Root, filepath.FromSlash(out))
}
