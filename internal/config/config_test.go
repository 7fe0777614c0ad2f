package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Editor.HistoryDebounceMS != 500 {
		t.Errorf("HistoryDebounceMS = %d, want 500", cfg.Editor.HistoryDebounceMS)
	}
	if cfg.Editor.HistoryCapacity != 30 {
		t.Errorf("HistoryCapacity = %d, want 30", cfg.Editor.HistoryCapacity)
	}
	if cfg.Output.ColorFormat != "oklch" {
		t.Errorf("ColorFormat = %q, want oklch", cfg.Output.ColorFormat)
	}
	if cfg.Output.CSSVersion != 4 {
		t.Errorf("CSSVersion = %d, want 4", cfg.Output.CSSVersion)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: myapp
  environment: production
database:
  driver: sqlite
  filename: themes.db
editor:
  history_debounce_ms: 250
  autosave_delay_ms: 1000
output:
  color_format: hsl
  css_version: 3
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Name != "myapp" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.HistoryDebounce() != 250*time.Millisecond {
		t.Errorf("HistoryDebounce = %v", cfg.HistoryDebounce())
	}
	if cfg.AutosaveDelay() != time.Second {
		t.Errorf("AutosaveDelay = %v", cfg.AutosaveDelay())
	}
	if cfg.Output.ColorFormat != "hsl" || cfg.Output.CSSVersion != 3 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	// Unset fields keep their defaults.
	if cfg.Editor.HistoryCapacity != 30 {
		t.Errorf("HistoryCapacity = %d, want default 30", cfg.Editor.HistoryCapacity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty app name", func(c *Config) { c.App.Name = "" }},
		{"bad driver", func(c *Config) { c.Database.Driver = "postgres" }},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }},
		{"bad color format", func(c *Config) { c.Output.ColorFormat = "cmyk" }},
		{"bad css version", func(c *Config) { c.Output.CSSVersion = 5 }},
		{"negative debounce", func(c *Config) { c.Editor.HistoryDebounceMS = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}
