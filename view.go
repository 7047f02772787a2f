package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/cdnav/internal/browser"
	"github.com/LFroesch/cdnav/internal/utils"
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.state.Snapshot()

	// 1 line for the status bar, the rest split 85/15 between list and boxes
	available := m.height - 1
	listHeight := available * 85 / 100
	bottomHeight := available - listHeight
	if bottomHeight < 6 {
		bottomHeight = 6
		listHeight = max(available-bottomHeight, 3)
	}

	var main string
	if snap.Mode != browser.ModeNone {
		main = m.renderer.Place(m.width, listHeight, lipgloss.Center, lipgloss.Center, m.renderDialog(snap))
	} else {
		main = m.renderList(snap, m.width, listHeight)
	}

	pathWidth := m.width * 70 / 100
	controlsWidth := m.width - pathWidth
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPathBox(snap, pathWidth, bottomHeight),
		m.renderControls(controlsWidth, bottomHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		bottom,
		m.renderStatusBar(snap),
	)
}

func (m *model) box(width, height int) lipgloss.Style {
	return m.renderer.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.styles.border).
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxHeight(height)
}

// renderList draws the entries, scrolled so the selection stays visible.
func (m *model) renderList(snap browser.Snapshot, width, height int) string {
	title := m.styles.accent.Bold(true).Render("CLI Navigation")
	rows := max(height-3, 1) // borders + title

	start := 0
	if snap.Selected >= rows {
		start = snap.Selected - rows + 1
	}
	end := min(start+rows, len(snap.Entries))

	lines := []string{title}
	if len(snap.Entries) == 0 {
		lines = append(lines, m.styles.dim.Render("  (empty)"))
	}
	for i := start; i < end; i++ {
		entry := snap.Entries[i]
		text := utils.EntryIcon(entry.Name, entry.IsDir) + " " + entry.Name
		if entry.IsDir {
			text += "/"
		}

		switch {
		case i == snap.Selected:
			lines = append(lines, m.styles.selected.Render("> "+text))
		case entry.IsDir:
			lines = append(lines, m.styles.directory.Render("  "+text))
		default:
			lines = append(lines, m.styles.file.Render("  "+text))
		}
	}

	return m.box(width, height).Render(strings.Join(lines, "\n"))
}

func (m *model) renderPathBox(snap browser.Snapshot, width, height int) string {
	title := m.styles.accent.Bold(true).Render("Current Path")
	path := m.renderer.NewStyle().Width(max(width-2, 1)).Render(snap.Dir)
	return m.box(width, height).Render(title + "\n" + path)
}

func (m *model) renderControls(width, height int) string {
	title := m.styles.accent.Bold(true).Render("Controls")
	m.help.Width = max(width-2, 1)
	return m.box(width, height).Render(title + "\n" + m.help.View(m.keys))
}

func (m *model) renderStatusBar(snap browser.Snapshot) string {
	var parts []string

	if n := len(snap.Entries); n > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", snap.Selected+1, n))
		if m.selDesc != "" {
			parts = append(parts, m.selDesc)
		}
	} else {
		parts = append(parts, utils.CountItems(0))
	}

	if m.inGitRepo {
		parts = append(parts, "⎇ "+m.gitStatus.String())
	}

	if m.statusMsg != "" {
		if m.statusIsErr {
			parts = append(parts, m.styles.errorMsg.Render("✗ "+m.statusMsg))
		} else {
			parts = append(parts, m.statusMsg)
		}
	}

	return m.styles.status.Width(m.width).Render(strings.Join(parts, " | "))
}

func (m *model) renderDialog(snap browser.Snapshot) string {
	width := min(dialogWidth, m.width-4)

	if snap.Mode == browser.ModeDelete {
		return m.renderDeleteDialog(snap, width)
	}

	dialogStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("105")).
		Padding(1, 2).
		Width(width)

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105"))

	contentStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("252"))

	lines := []string{titleStyle.Render(snap.Title), ""}
	if snap.Mode == browser.ModeRename {
		lines = append(lines, contentStyle.Render("Item: ")+m.styles.highlight.Render(snap.Target))
	}
	lines = append(lines,
		contentStyle.Render(snap.Prompt),
		m.styles.highlight.Render(snap.Buffer+"█"),
		"",
		m.styles.dim.Render("Press Enter to confirm, Esc to cancel"),
	)
	return dialogStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) renderDeleteDialog(snap browser.Snapshot, width int) string {
	dialogStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2).
		Width(width)

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	warn := m.renderer.NewStyle().Foreground(lipgloss.Color("196"))

	lines := []string{
		titleStyle.Render(snap.Title),
		"",
		warn.Render("⚠️  WARNING: Delete item?"),
		"Item: " + m.styles.highlight.Render(snap.Target),
		"",
		snap.Prompt,
		warn.Render(">> ") + m.styles.highlight.Render(snap.Buffer+"█"),
		"",
		m.styles.dim.Render("Press Esc to cancel"),
	}
	return dialogStyle.Render(strings.Join(lines, "\n"))
}
