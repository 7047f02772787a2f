// Package browser is the key-driven state machine behind the file browser:
// the directory view, the modal prompts and the router between them.
package browser

import (
	"fmt"

	"github.com/LFroesch/cdnav/internal/fileops"
)

// Opener hands a path to an external application.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) error

func (f OpenerFunc) Open(path string) error { return f(path) }

// Options configures a new AppState. Zero values are usable.
type Options struct {
	List   ListFunc
	Opener Opener
}

// AppState owns the directory view, the active modal and its buffer, and the
// exit flags. It is driven by one key at a time through HandleKey.
type AppState struct {
	view    *DirectoryView
	mode    Mode
	buffer  string
	exit    bool
	aborted bool
	opener  Opener
}

// New builds the state for dir. It fails if dir cannot be listed.
func New(dir string, opts Options) (*AppState, error) {
	view, err := NewDirectoryView(dir, opts.List)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	return &AppState{view: view, opener: opts.Opener}, nil
}

func (s *AppState) View() *DirectoryView { return s.view }
func (s *AppState) Mode() Mode           { return s.mode }
func (s *AppState) Buffer() string       { return s.buffer }
func (s *AppState) Dir() string          { return s.view.Dir() }

// Exit reports whether the main loop should stop.
func (s *AppState) Exit() bool { return s.exit }

// Aborted reports whether the user quit without wanting the shell to follow.
func (s *AppState) Aborted() bool { return s.aborted }

// Refresh re-lists the focus directory.
func (s *AppState) Refresh() error {
	return s.view.Refresh()
}

// HandleKey routes k to the active modal, or to navigation when none is open.
func (s *AppState) HandleKey(k Key) error {
	if s.mode != ModeNone {
		return s.handleModalKey(k)
	}
	return s.handleNavKey(k)
}

func (s *AppState) handleNavKey(k Key) error {
	switch {
	case k.Code == KeyEnter, k.Code == KeyEsc:
		s.exit = true
	case k.Code == KeyCtrlC:
		s.exit = true
		s.aborted = true
	case k.Code == KeyUp:
		s.view.MoveUp()
	case k.Code == KeyDown:
		s.view.MoveDown()
	case k.Code == KeyRight:
		return s.view.Enter()
	case k.Code == KeyLeft:
		return s.view.Leave()
	case k.is('n', 'N'):
		if k.Shift {
			s.openModal(ModeCreateDir, "")
		} else {
			s.openModal(ModeCreateFile, "")
		}
	case k.is('d', 'D'):
		if s.view.Len() > 0 {
			s.openModal(ModeDelete, "")
		}
	case k.is('r', 'R'):
		if name, ok := s.view.SelectedName(); ok {
			s.openModal(ModeRename, name)
		}
	case k.is('o', 'O'):
		return s.openSelected()
	}
	return nil
}

func (s *AppState) openSelected() error {
	path, ok := s.view.SelectedPath()
	if !ok || s.opener == nil {
		return nil
	}
	if err := s.opener.Open(path); err != nil {
		return fileops.FormatError(err, path, "open")
	}
	return nil
}

// EntryView is one listed entry as the renderer sees it.
type EntryView struct {
	Name  string
	IsDir bool
}

// Snapshot is a read-only copy of everything the renderer draws.
type Snapshot struct {
	Dir      string
	Entries  []EntryView
	Selected int
	Mode     Mode
	Title    string
	Prompt   string
	Buffer   string
	// Target is the entry a Delete or Rename modal acts on.
	Target string
}

// Snapshot copies the current state for rendering.
func (s *AppState) Snapshot() Snapshot {
	entries := make([]EntryView, 0, s.view.Len())
	for _, name := range s.view.entries {
		entries = append(entries, EntryView{
			Name:  name,
			IsDir: fileops.IsDir(s.view.Path(name)),
		})
	}

	snap := Snapshot{
		Dir:      s.view.Dir(),
		Entries:  entries,
		Selected: s.view.Selected(),
		Mode:     s.mode,
		Buffer:   s.buffer,
	}
	if s.mode != ModeNone {
		snap.Title = s.mode.Title()
		snap.Prompt = s.mode.Prompt()
	}
	if s.mode == ModeDelete || s.mode == ModeRename {
		snap.Target, _ = s.view.SelectedName()
	}
	return snap
}
