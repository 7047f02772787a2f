package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	homeDir := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", homeDir)

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.HidePatterns)
	assert.True(t, cfg.Watch)
	assert.Equal(t, TargetStdout, cfg.Shell.Target)

	// First run writes the defaults so users can edit them
	assert.FileExists(t, filepath.Join(homeDir, ".config", "cdnav", "config.yaml"))
}

func TestSaveAndLoadConfig(t *testing.T) {
	homeDir := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", homeDir)

	cfg := &Config{
		HidePatterns: []string{"*.pyc", "node_modules"},
		Watch:        false,
		LogLevel:     "debug",
		Shell:        ShellConfig{Target: TargetFile, CdFile: "/tmp/cdnav.last"},
		Theme:        Theme{Directory: "99", File: "252", Border: "105", Highlight: "214", Accent: "51"},
	}
	require.NoError(t, Save(cfg))

	loaded := Load()
	assert.Equal(t, cfg, loaded)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hide_patterns: ['.git']\ntheme:\n  border: \"200\"\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".git"}, cfg.HidePatterns)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "200", cfg.Theme.Border)
	assert.Equal(t, DefaultTheme().Directory, cfg.Theme.Directory)
	assert.Equal(t, TargetStdout, cfg.Shell.Target)
}

func TestLoadFileNormalizesInvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantTarget string
		wantLevel  string
	}{
		{"unknown target", "shell:\n  target: printer\n", TargetStdout, "info"},
		{"file without path", "shell:\n  target: file\n", TargetStdout, "info"},
		{"file with path", "shell:\n  target: file\n  cd_file: /tmp/x\n", TargetFile, "info"},
		{"clipboard", "shell:\n  target: clipboard\n", TargetClipboard, "info"},
		{"bad log level", "log_level: loud\n", TargetStdout, "info"},
		{"debug level", "log_level: debug\n", TargetStdout, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTarget, cfg.Shell.Target)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch: [unterminated"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFallsBackOnBrokenFile(t *testing.T) {
	homeDir := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", homeDir)

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte("watch: [unterminated"), 0644))

	assert.Equal(t, Default(), Load())
}
