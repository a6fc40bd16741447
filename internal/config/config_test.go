package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected default version 1, got %d", cfg.Version)
	}
	if len(cfg.Navigation.FileExtensions) == 0 {
		t.Error("expected default file extensions")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".mcshader")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	content := `{
  "version": 1,
  "navigation": {"maxMatches": 50},
  "logging": {"format": "json", "level": "debug"}
}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Navigation.MaxMatches != 50 {
		t.Errorf("maxMatches = %d, want 50", cfg.Navigation.MaxMatches)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Navigation.MaxMatches = 25
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Navigation.MaxMatches != 25 {
		t.Errorf("maxMatches = %d, want 25", loaded.Navigation.MaxMatches)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad version", func(c *Config) { c.Version = 9 }, true},
		{"negative maxMatches", func(c *Config) { c.Navigation.MaxMatches = -1 }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
