// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sitewise/themekit/internal/color"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

// EditorConfig holds the session tunables. Zero values fall back to the
// engine defaults.
type EditorConfig struct {
	HistoryDebounceMS int `yaml:"history_debounce_ms"`
	HistoryCapacity   int `yaml:"history_capacity"`
	AutosaveDelayMS   int `yaml:"autosave_delay_ms"`
}

// OutputConfig sets the default CSS emission options.
type OutputConfig struct {
	ColorFormat string `yaml:"color_format"`
	CSSVersion  int    `yaml:"css_version"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Editor   EditorConfig   `yaml:"editor"`
	Output   OutputConfig   `yaml:"output"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "themekit"
	cfg.App.Environment = "development"
	cfg.Database.Driver = "sqlite"
	cfg.Database.Filename = "themekit.db"
	cfg.Editor.HistoryDebounceMS = 500
	cfg.Editor.HistoryCapacity = 30
	cfg.Editor.AutosaveDelayMS = 2000
	cfg.Output.ColorFormat = string(color.FormatOKLCH)
	cfg.Output.CSSVersion = 4
	return cfg
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required for sqlite")
	}
	if _, ok := color.ParseFormat(c.Output.ColorFormat); !ok {
		return fmt.Errorf("unsupported output color format: %s", c.Output.ColorFormat)
	}
	if c.Output.CSSVersion != 3 && c.Output.CSSVersion != 4 {
		return fmt.Errorf("css_version must be 3 or 4")
	}
	if c.Editor.HistoryDebounceMS < 0 || c.Editor.AutosaveDelayMS < 0 {
		return fmt.Errorf("editor delays must not be negative")
	}
	return nil
}

// HistoryDebounce returns the debounce window as a duration.
func (c *Config) HistoryDebounce() time.Duration {
	return time.Duration(c.Editor.HistoryDebounceMS) * time.Millisecond
}

// AutosaveDelay returns the idle-save delay as a duration.
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.Editor.AutosaveDelayMS) * time.Millisecond
}
