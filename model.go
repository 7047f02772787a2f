package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/cdnav/internal/browser"
	"github.com/LFroesch/cdnav/internal/config"
	"github.com/LFroesch/cdnav/internal/git"
	"github.com/LFroesch/cdnav/internal/logger"
	"github.com/LFroesch/cdnav/internal/utils"
	"github.com/LFroesch/cdnav/internal/watch"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 12
	statusDuration    = 4 * time.Second
	dialogWidth       = 60
)

// Messages
type dirChangedMsg struct{ dir string }

type gitStatusMsg struct {
	dir    string
	status git.Status
	ok     bool
}

type styles struct {
	directory lipgloss.Style
	file      lipgloss.Style
	selected  lipgloss.Style
	border    lipgloss.Color
	accent    lipgloss.Style
	highlight lipgloss.Style
	status    lipgloss.Style
	errorMsg  lipgloss.Style
	dim       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, theme config.Theme) styles {
	return styles{
		directory: r.NewStyle().Foreground(lipgloss.Color(theme.Directory)),
		file:      r.NewStyle().Foreground(lipgloss.Color(theme.File)),
		selected:  r.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Bold(true),
		border:    lipgloss.Color(theme.Border),
		accent:    r.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		highlight: r.NewStyle().Foreground(lipgloss.Color(theme.Highlight)),
		status: r.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("240")).
			Padding(0, 1),
		errorMsg: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		dim:      r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// newHelp builds the controls box help on r instead of the default renderer.
func newHelp(r *lipgloss.Renderer, theme config.Theme) help.Model {
	keyStyle := r.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	descStyle := r.NewStyle().Foreground(lipgloss.Color("252"))
	sepStyle := r.NewStyle().Foreground(lipgloss.Color("240"))

	h := help.New()
	h.ShowAll = true
	h.Styles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
	return h
}

type model struct {
	state   *browser.AppState
	cfg     *config.Config
	watcher *watch.Watcher // nil when watching is off

	// draws to the program's output, so colour detection follows it
	renderer *lipgloss.Renderer
	styles   styles
	keys     keyMap
	help   help.Model

	width  int
	height int

	// status bar summary of the selected entry, recomputed on change
	selPath string
	selDesc string

	gitStatus git.Status
	inGitRepo bool

	// set when the directory changed while a modal was open
	stale bool

	statusMsg    string
	statusIsErr  bool
	statusExpiry time.Time
}

func newModel(state *browser.AppState, cfg *config.Config, watcher *watch.Watcher, r *lipgloss.Renderer) *model {
	m := &model{
		state:    state,
		cfg:      cfg,
		watcher:  watcher,
		renderer: r,
		styles:   newStyles(r, cfg.Theme),
		keys:     defaultKeyMap(),
		help:     newHelp(r, cfg.Theme),
	}
	m.describeSelection(true)
	return m
}

// describeSelection refreshes selDesc when the selected path changed, or
// always when force is set (the entry itself may have changed on disk).
func (m *model) describeSelection(force bool) {
	path, ok := m.state.View().SelectedPath()
	if !ok {
		m.selPath, m.selDesc = "", ""
		return
	}
	if !force && path == m.selPath {
		return
	}
	m.selPath = path
	m.selDesc = utils.Describe(path)
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
	m.statusExpiry = time.Now().Add(statusDuration)
}

// setError logs err and shows it in the status bar until it expires.
func (m *model) setError(err error) {
	logger.Error("%v", err)
	m.statusMsg = err.Error()
	m.statusIsErr = true
	m.statusExpiry = time.Now().Add(statusDuration)
}
