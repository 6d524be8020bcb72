package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the config lookup at an empty temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("DOABLE_DATA_DIR", "")
	t.Setenv("DOABLE_LOG_LEVEL", "")
	t.Setenv("DOABLE_IMPORT_MODE", "")
	t.Setenv("DOABLE_THEME_FILE", "")
	os.Unsetenv("DOABLE_DATA_DIR")
	os.Unsetenv("DOABLE_LOG_LEVEL")
	os.Unsetenv("DOABLE_IMPORT_MODE")
	os.Unsetenv("DOABLE_THEME_FILE")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "doable")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ToggleTask != "space" {
		t.Errorf("Default ToggleTask key = %q, want space", defaults.ToggleTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.DataDir != DefaultDataDir() {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, DefaultDataDir())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.ImportMode != "merge" {
		t.Errorf("ImportMode = %s, want merge", cfg.ImportMode)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `data_dir: /tmp/doable-data
import_mode: replace
key_mappings:
  quit: "x"
  add_task: "n"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DataDir != "/tmp/doable-data" {
		t.Errorf("DataDir = %s, want /tmp/doable-data", cfg.DataDir)
	}
	if cfg.ImportMode != "replace" {
		t.Errorf("ImportMode = %s, want replace", cfg.ImportMode)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("Loaded EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `data_dir: /from/file
log_level: warn
`)
	t.Setenv("DOABLE_DATA_DIR", "/from/env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DataDir != "/from/env" {
		t.Errorf("DataDir = %s, want /from/env", cfg.DataDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn from file", cfg.LogLevel)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "key_mappings: [not, a, map")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := isolate(t)

	cfg := &Config{
		DataDir: "/tmp/saved",
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddTask: "n",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "doable", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.DataDir != "/tmp/saved" {
		t.Errorf("Reloaded DataDir = %s, want /tmp/saved", cfg2.DataDir)
	}
}
