package themeoverlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

// ---------------------------------------------------------------------------
// Result message
// ---------------------------------------------------------------------------

// ResultMsg is emitted when the user applies or cancels the theme
// selection.
type ResultMsg struct {
	Applied bool
	Theme   ui.Theme
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the theme picker overlay.
type Model struct {
	styles ui.Styles
	active bool
	names  []string
	idx    int
	width  int
	height int
}

// New creates the picker with the current theme pre-selected.
func New(st ui.Styles, current string) Model {
	names := ui.Names()
	idx := 0
	for i, n := range names {
		if strings.EqualFold(n, current) {
			idx = i
			break
		}
	}
	return Model{
		styles: st,
		active: true,
		names:  names,
		idx:    idx,
	}
}

// IsActive reports whether the overlay is currently visible.
func (m Model) IsActive() bool { return m.active }

// SetSize stores terminal dimensions so the overlay can center itself.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.idx++
			if m.idx >= len(m.names) {
				m.idx = 0
			}
			return m, nil
		case "k", "up":
			m.idx--
			if m.idx < 0 {
				m.idx = len(m.names) - 1
			}
			return m, nil
		case "enter":
			theme, ok := ui.ByName(m.names[m.idx])
			if !ok {
				return m, nil
			}
			m.active = false
			return m, emitResult(true, theme)
		case "esc":
			m.active = false
			return m, emitResult(false, ui.Theme{})
		}
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if !m.active {
		return ""
	}

	title := m.styles.Title.
		MarginBottom(1).
		Render("Theme")

	rows := make([]string, 0, len(m.names))
	for i, name := range m.names {
		theme, _ := ui.ByName(name)
		swatch := lipgloss.NewStyle().Foreground(theme.Primary).Render("●")

		cursor := "  "
		label := name
		if i == m.idx {
			cursor = m.styles.Cursor.Render("> ")
			label = m.styles.Cursor.Render(name)
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, swatch, label))
	}

	help := m.styles.Muted.
		MarginTop(1).
		Render("j/k: move  enter: apply  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rows, "\n"),
		help,
	)

	box := m.styles.Box.Width(40).Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}

func emitResult(applied bool, t ui.Theme) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Applied: applied, Theme: t}
	}
}
