package main

import (
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/cdnav/internal/browser"
	"github.com/LFroesch/cdnav/internal/git"
	"github.com/LFroesch/cdnav/internal/logger"
	"github.com/LFroesch/cdnav/internal/utils"
	"github.com/LFroesch/cdnav/internal/watch"
)

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("cdnav: "+utils.ShortenPath(m.state.Dir())),
		waitForChange(m.watcher),
		gitStatusCmd(m.state.Dir()),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsErr = false
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minTerminalWidth)
		m.height = max(msg.Height, minTerminalHeight)
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(translateKey(msg))

	case dirChangedMsg:
		if msg.dir == m.state.Dir() {
			if m.state.Mode() == browser.ModeNone {
				m.refresh()
			} else {
				m.stale = true
			}
		}
		return m, tea.Batch(waitForChange(m.watcher), gitStatusCmd(m.state.Dir()))

	case gitStatusMsg:
		// drop answers for a directory we already left
		if msg.dir == m.state.Dir() {
			m.gitStatus = msg.status
			m.inGitRepo = msg.ok
		}
		return m, nil
	}

	return m, nil
}

func (m *model) handleKeys(keys []browser.Key) (tea.Model, tea.Cmd) {
	before := m.state.Dir()
	modalOpen := m.state.Mode() != browser.ModeNone

	for _, k := range keys {
		if err := m.state.HandleKey(k); err != nil {
			m.setError(err)
		}
		if m.state.Exit() {
			return m, tea.Quit
		}
	}

	if m.stale && m.state.Mode() == browser.ModeNone {
		m.refresh()
	}
	// a closed modal may have created, renamed or deleted the selection
	m.describeSelection(modalOpen && m.state.Mode() == browser.ModeNone)

	if dir := m.state.Dir(); dir != before {
		logger.Debug("Focus directory is now %s", dir)
		m.gitStatus = git.Status{}
		m.inGitRepo = false
		m.retarget(dir)
		return m, tea.Batch(
			tea.SetWindowTitle("cdnav: "+utils.ShortenPath(dir)),
			gitStatusCmd(dir),
		)
	}
	return m, nil
}

func (m *model) refresh() {
	m.stale = false
	if err := m.state.Refresh(); err != nil {
		m.setError(err)
	}
	m.describeSelection(true)
}

// retarget points the watcher at dir. A failure only disables live refresh.
func (m *model) retarget(dir string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(dir); err != nil {
		logger.Warn("Cannot watch %s: %v", dir, err)
	}
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		dir, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return dirChangedMsg{dir: dir}
	}
}

func gitStatusCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		status, ok := git.GetStatus(dir)
		return gitStatusMsg{dir: dir, status: status, ok: ok}
	}
}

// translateKey maps a bubbletea key event onto browser keys. Terminals
// report Shift+letter as the upper-case rune, so Shift is inferred from case.
// Pasted text yields one key per rune.
func translateKey(msg tea.KeyMsg) []browser.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return []browser.Key{browser.CodeKey(browser.KeyEnter)}
	case tea.KeyEsc:
		return []browser.Key{browser.CodeKey(browser.KeyEsc)}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []browser.Key{browser.CodeKey(browser.KeyBackspace)}
	case tea.KeyUp:
		return []browser.Key{browser.CodeKey(browser.KeyUp)}
	case tea.KeyDown:
		return []browser.Key{browser.CodeKey(browser.KeyDown)}
	case tea.KeyLeft:
		return []browser.Key{browser.CodeKey(browser.KeyLeft)}
	case tea.KeyRight:
		return []browser.Key{browser.CodeKey(browser.KeyRight)}
	case tea.KeyCtrlC:
		return []browser.Key{browser.CodeKey(browser.KeyCtrlC)}
	case tea.KeySpace:
		return []browser.Key{browser.RuneKey(' ', false)}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]browser.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, browser.RuneKey(r, unicode.IsUpper(r)))
		}
		return keys
	}
	return nil
}
