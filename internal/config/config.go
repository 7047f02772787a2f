package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/LFroesch/cdnav/internal/logger"
)

// Shell hand-off targets
const (
	TargetStdout    = "stdout"
	TargetFile      = "file"
	TargetClipboard = "clipboard"
)

// Config holds all cdnav configuration
type Config struct {
	HidePatterns []string    `yaml:"hide_patterns"` // glob patterns, e.g. "*.pyc"
	Watch        bool        `yaml:"watch"`         // refresh the listing when the directory changes on disk
	LogLevel     string      `yaml:"log_level"`
	Shell        ShellConfig `yaml:"shell"`
	Theme        Theme       `yaml:"theme"`
}

// ShellConfig controls where the final cd command goes.
type ShellConfig struct {
	Target string `yaml:"target"`  // stdout, file or clipboard
	CdFile string `yaml:"cd_file"` // used when target is file
}

// Theme holds lipgloss colors (ANSI numbers or hex).
type Theme struct {
	Directory string `yaml:"directory"`
	File      string `yaml:"file"`
	Border    string `yaml:"border"`
	Highlight string `yaml:"highlight"`
	Accent    string `yaml:"accent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HidePatterns: []string{},
		Watch:        true,
		LogLevel:     "info",
		Shell: ShellConfig{
			Target: TargetStdout,
		},
		Theme: DefaultTheme(),
	}
}

// DefaultTheme is a green-on-dark palette.
func DefaultTheme() Theme {
	return Theme{
		Directory: "#90EE90",
		File:      "34",
		Border:    "34",
		Highlight: "226",
		Accent:    "51",
	}
}

// Dir returns ~/.config/cdnav
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "cdnav"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads config from ~/.config/cdnav/config.yaml, writing the defaults
// there on first run. It never fails; problems are logged and defaults used.
func Load() *Config {
	configPath, err := GetConfigPath()
	if err != nil {
		logger.Error("Failed to locate config: %v", err)
		return Default()
	}

	cfg, err := LoadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		if err := SaveFile(cfg, configPath); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return cfg
	}
	if err != nil {
		logger.Warn("Failed to load config file %s: %v, using defaults", configPath, err)
		return Default()
	}
	return cfg
}

// LoadFile reads and validates a config file. Missing keys keep their
// default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces invalid values with defaults.
func (c *Config) normalize() {
	defaults := Default()

	if c.HidePatterns == nil {
		c.HidePatterns = []string{}
	}

	switch c.Shell.Target {
	case TargetStdout, TargetClipboard:
	case TargetFile:
		if c.Shell.CdFile == "" {
			logger.Warn("shell.target is %q but shell.cd_file is empty, using %s", TargetFile, TargetStdout)
			c.Shell.Target = TargetStdout
		}
	case "":
		c.Shell.Target = defaults.Shell.Target
	default:
		logger.Warn("Unknown shell.target %q, using %s", c.Shell.Target, TargetStdout)
		c.Shell.Target = defaults.Shell.Target
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		if c.LogLevel != "" {
			logger.Warn("Unknown log_level %q, using info", c.LogLevel)
		}
		c.LogLevel = defaults.LogLevel
	}

	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&c.Theme.Directory, defaults.Theme.Directory)
	fill(&c.Theme.File, defaults.Theme.File)
	fill(&c.Theme.Border, defaults.Theme.Border)
	fill(&c.Theme.Highlight, defaults.Theme.Highlight)
	fill(&c.Theme.Accent, defaults.Theme.Accent)
}

// Save writes config to ~/.config/cdnav/config.yaml
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(config, configPath)
}

// SaveFile writes config to path, creating its directory.
func SaveFile(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(path), err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", path, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}
	return nil
}
