package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryIcon(t *testing.T) {
	tests := []struct {
		name  string
		isDir bool
		want  string
	}{
		{"src", true, DirIcon},
		{"main.go", false, "🐹"},
		{"README.MD", false, "📝"},
		{"config.yaml", false, "📋"},
		{"Makefile", false, "📄"},
		{"archive.tar", false, "📦"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntryIcon(tt.name, tt.isDir))
		})
	}
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(file, make([]byte, 2000), 0644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a"), nil, 0644))

	assert.Equal(t, "2.0 kB", Describe(file))
	assert.Equal(t, "1 item", Describe(sub))
	assert.Equal(t, "2 items", Describe(dir))
	assert.Equal(t, "", Describe(filepath.Join(dir, "missing")))
}

func TestCountItems(t *testing.T) {
	assert.Equal(t, "0 items", CountItems(0))
	assert.Equal(t, "1 item", CountItems(1))
	assert.Equal(t, "1,024 items", CountItems(1024))
}

func TestShortenPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "~", ShortenPath(home))
	assert.Equal(t, "~"+string(filepath.Separator)+"code", ShortenPath(filepath.Join(home, "code")))
	assert.Equal(t, "/etc", ShortenPath("/etc"))
}
