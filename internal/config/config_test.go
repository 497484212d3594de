package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GuidelinesFile != "" {
		t.Error("Default config should not override the guidelines file")
	}
	if cfg.Version == "" {
		t.Error("Default config should carry a version")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Config{
		GuidelinesFile: "/home/dev/guidelines.md",
		LogLevel:       "debug",
		Version:        "1.0",
	}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.GuidelinesFile != cfg.GuidelinesFile {
		t.Errorf("GuidelinesFile mismatch: %q != %q", loaded.GuidelinesFile, cfg.GuidelinesFile)
	}
	if loaded.LogLevel != cfg.LogLevel {
		t.Errorf("LogLevel mismatch: %q != %q", loaded.LogLevel, cfg.LogLevel)
	}
	if loaded.Version != cfg.Version {
		t.Errorf("Version mismatch: %q != %q", loaded.Version, cfg.Version)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom("/definitely/does/not/exist/config.yaml")
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "failed to open config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("guidelines_file: [not: valid"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("Expected error for malformed config file")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSaveToUsesRestrictivePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected 0600 permissions, got %o", perm)
	}
}
