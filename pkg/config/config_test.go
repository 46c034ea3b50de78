package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Clipping.DefaultPercent != 50 {
		t.Errorf("expected default percent 50, got %v", cfg.Clipping.DefaultPercent)
	}
	if cfg.Clipping.PlaneMargin != 1.3 {
		t.Errorf("expected plane margin 1.3, got %v", cfg.Clipping.PlaneMargin)
	}
	if cfg.Colors.X == cfg.Colors.Y || cfg.Colors.Y == cfg.Colors.Z {
		t.Errorf("axis colors must be distinct: %+v", cfg.Colors)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should yield defaults, got error: %v", err)
	}
	if cfg.Window.Width != 1400 {
		t.Errorf("expected default window width, got %d", cfg.Window.Width)
	}
}

func TestLoadConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "clipping:\n  defaultPercent: 25\nwindow:\n  width: 800\n  height: 600\n  targetFPS: 30\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Clipping.DefaultPercent != 25 {
		t.Errorf("override failed: got %v", cfg.Clipping.DefaultPercent)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("override failed: got width %d", cfg.Window.Width)
	}
	// Untouched values keep their defaults
	if cfg.Clipping.PlaneMargin != 1.3 {
		t.Errorf("default should survive partial override, got %v", cfg.Clipping.PlaneMargin)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "clipping:\n  defaultPercent: 150\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected validation error for percent out of range")
	}
}
