package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Pattern.CacheSize != 1024 {
		t.Errorf("Pattern.CacheSize = %d, want 1024", cfg.Pattern.CacheSize)
	}
	if cfg.RegexTimeout().Milliseconds() != 500 {
		t.Errorf("RegexTimeout() = %v, want 500ms", cfg.RegexTimeout())
	}
	if cfg.Bundle.StrictDecoding {
		t.Error("Bundle.StrictDecoding should default to false")
	}
	if !cfg.Bundle.ValidateEnvelope {
		t.Error("Bundle.ValidateEnvelope should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stixcore.yaml")
	content := `
pattern:
  cache_size: 64
  regex_timeout_ms: 100
bundle:
  strict_decoding: true
identifiers:
  custom_types:
    - x-acme-widget
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.Pattern.CacheSize != 64 {
		t.Errorf("Pattern.CacheSize = %d, want 64", cfg.Pattern.CacheSize)
	}
	if !cfg.Bundle.StrictDecoding {
		t.Error("Bundle.StrictDecoding = false, want true")
	}
	if len(cfg.Identifiers.CustomTypes) != 1 || cfg.Identifiers.CustomTypes[0] != "x-acme-widget" {
		t.Errorf("Identifiers.CustomTypes = %v", cfg.Identifiers.CustomTypes)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadConfigFile() should fail for missing file")
	}
}

func TestLoadConfigFile_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero cache size", "pattern:\n  cache_size: 0\n"},
		{"negative timeout", "pattern:\n  regex_timeout_ms: -5\n"},
		{"bad log level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "stixcore.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfigFile(path); err == nil {
				t.Error("LoadConfigFile() should reject invalid config")
			}
		})
	}
}
