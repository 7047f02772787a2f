package browser

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/LFroesch/cdnav/internal/fileops"
)

// Mode is the active modal prompt. ModeNone means keys drive navigation.
type Mode int

const (
	ModeNone Mode = iota
	ModeCreateFile
	ModeCreateDir
	ModeDelete
	ModeRename
)

type modalSpec struct {
	title  string
	prompt string
	action func(s *AppState) error
}

// modals is the action table behind every non-None mode.
var modals = map[Mode]modalSpec{
	ModeCreateFile: {"Create New File", "Enter filename:", (*AppState).createFile},
	ModeCreateDir:  {"Create New Directory", "Enter directory name:", (*AppState).createDir},
	ModeDelete:     {"Delete Confirmation", "Type 'y' or 'yes' to confirm:", (*AppState).deleteSelected},
	ModeRename:     {"Rename Item", "Enter new name:", (*AppState).renameSelected},
}

func (m Mode) String() string {
	switch m {
	case ModeCreateFile:
		return "create-file"
	case ModeCreateDir:
		return "create-dir"
	case ModeDelete:
		return "delete"
	case ModeRename:
		return "rename"
	default:
		return "none"
	}
}

// Title is the popup title for the mode.
func (m Mode) Title() string { return modals[m].title }

// Prompt is the line shown above the input buffer.
func (m Mode) Prompt() string { return modals[m].prompt }

func (s *AppState) openModal(mode Mode, seed string) {
	s.mode = mode
	s.buffer = seed
}

func (s *AppState) closeModal() {
	s.mode = ModeNone
	s.buffer = ""
}

// handleModalKey edits the buffer, cancels, or confirms the active modal.
func (s *AppState) handleModalKey(k Key) error {
	switch k.Code {
	case KeyEsc:
		s.closeModal()
	case KeyEnter:
		return s.confirmModal()
	case KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(s.buffer); size > 0 {
			s.buffer = s.buffer[:len(s.buffer)-size]
		}
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			s.buffer += string(k.Rune)
		}
	}
	return nil
}

// confirmModal runs the mode's action, then closes the modal and re-lists
// the focus directory whether or not the action did anything.
func (s *AppState) confirmModal() error {
	var actionErr error
	if spec, ok := modals[s.mode]; ok {
		actionErr = spec.action(s)
	}
	s.closeModal()
	return errors.Join(actionErr, s.view.Refresh())
}

func (s *AppState) createFile() error {
	if strings.TrimSpace(s.buffer) == "" || fileops.Exists(s.view.Path(s.buffer)) {
		return nil
	}
	return fileops.CreateFile(s.view.Dir(), s.buffer)
}

func (s *AppState) createDir() error {
	if strings.TrimSpace(s.buffer) == "" || fileops.Exists(s.view.Path(s.buffer)) {
		return nil
	}
	return fileops.CreateDir(s.view.Dir(), s.buffer)
}

func (s *AppState) deleteSelected() error {
	answer := strings.ToLower(s.buffer)
	if answer != "y" && answer != "yes" {
		return nil
	}
	path, ok := s.view.SelectedPath()
	if !ok {
		return nil
	}
	return fileops.Delete(path)
}

func (s *AppState) renameSelected() error {
	if strings.TrimSpace(s.buffer) == "" {
		return nil
	}
	oldPath, ok := s.view.SelectedPath()
	if !ok {
		return nil
	}
	newPath := s.view.Path(s.buffer)
	if oldPath == newPath || fileops.Exists(newPath) {
		return nil
	}
	return fileops.Rename(oldPath, newPath)
}
