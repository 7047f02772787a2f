package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// ListEntries returns the sorted names of the immediate children of dir.
// Nothing is filtered and symlinks are not resolved.
func ListEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Lister lists directories, dropping names that match any hide pattern.
type Lister struct {
	patterns []string
	hide     []glob.Glob
}

// NewLister compiles the given glob patterns (e.g. "*.pyc", ".git").
// A nil or empty pattern list hides nothing.
func NewLister(patterns []string) (*Lister, error) {
	l := &Lister{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		l.patterns = append(l.patterns, p)
		l.hide = append(l.hide, g)
	}
	return l, nil
}

// Patterns returns the source patterns the lister was built from.
func (l *Lister) Patterns() []string {
	return l.patterns
}

// List returns the sorted, filtered children of dir.
func (l *Lister) List(dir string) ([]string, error) {
	names, err := ListEntries(dir)
	if err != nil || len(l.hide) == 0 {
		return names, err
	}

	kept := names[:0]
	for _, name := range names {
		if !l.hidden(name) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}

func (l *Lister) hidden(name string) bool {
	for _, g := range l.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Exists reports whether anything (including a dangling symlink) is at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDir reports whether path is a directory, following symlinks.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateFile creates a new empty file. It fails if the path already exists.
func CreateFile(dir, name string) error {
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return FormatError(err, path, "create file")
	}
	return file.Close()
}

// CreateDir creates a new directory
func CreateDir(dir, name string) error {
	path := filepath.Join(dir, name)
	if err := os.Mkdir(path, 0755); err != nil {
		return FormatError(err, path, "create directory")
	}
	return nil
}

// Delete removes path. Real directories are removed recursively; files and
// symlinks (even ones pointing at directories) are removed as single entries.
func Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return FormatError(err, path, "delete")
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return FormatError(err, path, "delete")
	}
	return nil
}

// Rename moves oldPath to newPath.
func Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return FormatError(err, oldPath, "rename")
	}
	return nil
}

// FormatError wraps err with the operation and a short reason suitable for a
// one-line status message. A nil err stays nil.
func FormatError(err error, path, op string) error {
	if err == nil {
		return nil
	}

	name := filepath.Base(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %s: no longer exists: %w", op, name, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %s: permission denied: %w", op, name, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%s %s: already exists: %w", op, name, err)
	default:
		return fmt.Errorf("%s %s: %w", op, name, err)
	}
}
