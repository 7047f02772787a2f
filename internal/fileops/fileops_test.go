package fileops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEntries(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"zeta.txt", "Alpha", "beta.md", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "dir"), 0755))
	// Nested files are not part of the listing
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "dir", "inner.txt"), nil, 0644))

	names, err := ListEntries(tempDir)
	require.NoError(t, err)

	assert.Equal(t, []string{".hidden", "Alpha", "beta.md", "dir", "zeta.txt"}, names)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestListEntriesEmptyDir(t *testing.T) {
	names, err := ListEntries(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListEntriesMissingDir(t *testing.T) {
	_, err := ListEntries(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLister(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"main.go", "main.pyc", "notes.txt", ".DS_Store"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), nil, 0644))
	}

	t.Run("no patterns", func(t *testing.T) {
		l, err := NewLister(nil)
		require.NoError(t, err)

		names, err := l.List(tempDir)
		require.NoError(t, err)
		assert.Len(t, names, 4)
	})

	t.Run("hides matches", func(t *testing.T) {
		l, err := NewLister([]string{"*.pyc", ".DS_Store"})
		require.NoError(t, err)

		names, err := l.List(tempDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"main.go", "notes.txt"}, names)
		assert.Equal(t, []string{"*.pyc", ".DS_Store"}, l.Patterns())
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := NewLister([]string{"[unclosed"})
		assert.Error(t, err)
	})
}

func TestCreateFile(t *testing.T) {
	tempDir := t.TempDir()

	err := CreateFile(tempDir, "testfile.txt")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(tempDir, "testfile.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	// Creating a file that already exists must fail and leave it alone
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "testfile.txt"), []byte("keep"), 0644))
	err = CreateFile(tempDir, "testfile.txt")
	assert.ErrorIs(t, err, fs.ErrExist)

	data, err := os.ReadFile(filepath.Join(tempDir, "testfile.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestCreateDir(t *testing.T) {
	tempDir := t.TempDir()

	err := CreateDir(tempDir, "testdir")
	require.NoError(t, err)
	assert.True(t, IsDir(filepath.Join(tempDir, "testdir")))

	err = CreateDir(tempDir, "testdir")
	assert.ErrorIs(t, err, fs.ErrExist)
}

func TestDelete(t *testing.T) {
	tempDir := t.TempDir()

	file := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	require.NoError(t, Delete(file))
	assert.False(t, Exists(file))

	dir := filepath.Join(tempDir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "c.txt"), nil, 0644))
	require.NoError(t, Delete(dir))
	assert.False(t, Exists(dir))

	err := Delete(filepath.Join(tempDir, "gone"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDeleteSymlinkToDirKeepsTarget(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), nil, 0644))

	link := filepath.Join(tempDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	require.NoError(t, Delete(link))
	assert.False(t, Exists(link))
	assert.True(t, Exists(filepath.Join(target, "keep.txt")))
}

func TestRename(t *testing.T) {
	tempDir := t.TempDir()

	oldPath := filepath.Join(tempDir, "oldname.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("test content"), 0644))

	newPath := filepath.Join(tempDir, "newname.txt")
	require.NoError(t, Rename(oldPath, newPath))

	assert.True(t, Exists(newPath))
	assert.False(t, Exists(oldPath))

	err := Rename(oldPath, newPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestExistsAndIsDir(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, Exists(file))
	assert.False(t, IsDir(file))
	assert.True(t, IsDir(tempDir))
	assert.False(t, Exists(filepath.Join(tempDir, "nope")))
}

func TestFormatError(t *testing.T) {
	assert.NoError(t, FormatError(nil, "/test/path", "test operation"))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not exist", fs.ErrNotExist, "read file.txt: no longer exists: file does not exist"},
		{"permission", fs.ErrPermission, "read file.txt: permission denied: permission denied"},
		{"exists", fs.ErrExist, "read file.txt: already exists: file already exists"},
		{"other", fs.ErrClosed, "read file.txt: file already closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FormatError(tt.err, "/test/file.txt", "read")
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
