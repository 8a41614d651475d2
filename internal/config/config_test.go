package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Convert.Extension != ".gml" {
		t.Errorf("expected .gml extension, got %q", cfg.Convert.Extension)
	}
	if cfg.Convert.Workers != 1 {
		t.Errorf("expected sequential default, got %d workers", cfg.Convert.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "citymesh.yaml")

	yaml := `convert:
  workers: 4
  axis_order: lat-lon-height
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Convert.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Convert.Workers)
	}
	if cfg.Convert.AxisOrder != "lat-lon-height" {
		t.Errorf("expected axis order override, got %q", cfg.Convert.AxisOrder)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Convert.Extension != ".gml" {
		t.Errorf("expected default extension, got %q", cfg.Convert.Extension)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}
