package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	d := Default()
	if d.Agents != 1000 || d.Steps != 1000 || d.Batches != 250 || d.ChangeThreshold != 0.001 {
		t.Errorf("Default() = %+v, want {1000 1000 250 0.001}", d)
	}
}

func TestLoadConfigOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fvswalk.toml")
	if err := os.WriteFile(path, []byte("agents = 50\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Agents != 50 {
		t.Errorf("Agents = %d, want 50", cfg.Agents)
	}
	if cfg.Steps != 1000 || cfg.Batches != 250 || cfg.ChangeThreshold != 0.001 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig() on a missing file should error")
	}
}

func TestLoadConfigRejectsOutOfRangeValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fvswalk.toml")
	if err := os.WriteFile(path, []byte("agents = 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with agents = 0 should error")
	}
}
