package browser

import (
	"path/filepath"

	"github.com/sahilm/fuzzy"

	"github.com/LFroesch/cdnav/internal/fileops"
)

// ListFunc returns the sorted child names of a directory.
type ListFunc func(dir string) ([]string, error)

// DirectoryView is the focus directory, its sorted entries and the cursor.
type DirectoryView struct {
	dir      string
	entries  []string
	selected int
	list     ListFunc
}

// NewDirectoryView lists dir and selects its first entry.
func NewDirectoryView(dir string, list ListFunc) (*DirectoryView, error) {
	if list == nil {
		list = fileops.ListEntries
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	entries, err := list(abs)
	if err != nil {
		return nil, err
	}

	return &DirectoryView{dir: abs, entries: entries, list: list}, nil
}

func (v *DirectoryView) Dir() string       { return v.dir }
func (v *DirectoryView) Selected() int     { return v.selected }
func (v *DirectoryView) Len() int          { return len(v.entries) }
func (v *DirectoryView) Entries() []string { return append([]string(nil), v.entries...) }

// SelectedName returns the selected entry, or false when the listing is empty.
func (v *DirectoryView) SelectedName() (string, bool) {
	if len(v.entries) == 0 {
		return "", false
	}
	return v.entries[v.selected], true
}

// SelectedPath is the absolute path of the selected entry.
func (v *DirectoryView) SelectedPath() (string, bool) {
	name, ok := v.SelectedName()
	if !ok {
		return "", false
	}
	return filepath.Join(v.dir, name), true
}

// Path joins name onto the focus directory.
func (v *DirectoryView) Path(name string) string {
	return filepath.Join(v.dir, name)
}

func (v *DirectoryView) MoveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

func (v *DirectoryView) MoveDown() {
	if v.selected+1 < len(v.entries) {
		v.selected++
	}
}

// Enter descends into the selected entry if it is a directory. The view is
// only changed once the new directory has been listed successfully.
func (v *DirectoryView) Enter() error {
	path, ok := v.SelectedPath()
	if !ok || !fileops.IsDir(path) {
		return nil
	}
	return v.moveTo(path)
}

// Leave moves to the parent directory. At the filesystem root it re-lists
// the root.
func (v *DirectoryView) Leave() error {
	return v.moveTo(filepath.Dir(v.dir))
}

func (v *DirectoryView) moveTo(dir string) error {
	entries, err := v.list(dir)
	if err != nil {
		return err
	}
	v.dir = dir
	v.entries = entries
	v.selected = 0
	return nil
}

// Refresh re-lists the focus directory and clamps the cursor into range.
func (v *DirectoryView) Refresh() error {
	entries, err := v.list(v.dir)
	if err != nil {
		return err
	}
	v.entries = entries
	v.clamp()
	return nil
}

func (v *DirectoryView) clamp() {
	switch {
	case len(v.entries) == 0:
		v.selected = 0
	case v.selected >= len(v.entries):
		v.selected = len(v.entries) - 1
	case v.selected < 0:
		v.selected = 0
	}
}

// SelectMatch moves the cursor to the best fuzzy match for query and reports
// whether anything matched.
func (v *DirectoryView) SelectMatch(query string) bool {
	if query == "" {
		return false
	}
	matches := fuzzy.Find(query, v.entries)
	if len(matches) == 0 {
		return false
	}
	v.selected = matches[0].Index
	return true
}
