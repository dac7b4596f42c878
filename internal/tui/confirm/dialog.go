package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

type Severity int

const (
	SevInfo Severity = iota
	SevWarn
	SevError
)

type ResultMsg struct {
	Confirmed bool
	Action    string
	Data      interface{}
}

// Model is a modal dialog. In confirm mode it asks yes/no and reports
// the answer through ResultMsg; in notice mode it shows a message
// with a single dismiss action.
type Model struct {
	Title    string
	Message  string
	Action   string
	Data     interface{}
	styles   ui.Styles
	severity Severity
	notice   bool
	active   bool
	selected bool // true = confirm selected
	width    int
	height   int
}

func New(st ui.Styles, title, message, action string, data interface{}) Model {
	return Model{
		Title:    title,
		Message:  message,
		Action:   action,
		Data:     data,
		styles:   st,
		severity: SevWarn,
		active:   true,
	}
}

// NewNotice creates a message-only dialog.
func NewNotice(st ui.Styles, sev Severity, title, message string) Model {
	return Model{
		Title:    title,
		Message:  message,
		styles:   st,
		severity: sev,
		notice:   true,
		active:   true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.notice {
		switch keyMsg.String() {
		case "enter", "esc", " ":
			m.active = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.active = false
		return m, func() tea.Msg {
			return ResultMsg{Confirmed: true, Action: m.Action, Data: m.Data}
		}
	case "n", "N", "esc":
		m.active = false
		return m, func() tea.Msg {
			return ResultMsg{Confirmed: false, Action: m.Action, Data: m.Data}
		}
	case "enter":
		m.active = false
		return m, func() tea.Msg {
			return ResultMsg{Confirmed: m.selected, Action: m.Action, Data: m.Data}
		}
	case "tab", "left", "right", "h", "l":
		m.selected = !m.selected
	}
	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	color := m.severityColor()

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 2).
		Width(50)

	title := lipgloss.NewStyle().Bold(true).
		Foreground(color).
		Render(m.Title)

	var content string
	if m.notice {
		content = fmt.Sprintf("%s\n\n%s\n\n%s",
			title, m.Message,
			m.styles.Muted.Render("press enter to close"))
	} else {
		yesStyle := lipgloss.NewStyle().Padding(0, 1)
		noStyle := lipgloss.NewStyle().Padding(0, 1)

		if m.selected {
			yesStyle = yesStyle.Bold(true).Background(ui.ColorSuccess).Foreground(lipgloss.Color("#F9FAFB"))
			noStyle = noStyle.Foreground(lipgloss.Color("#6B7280"))
		} else {
			yesStyle = yesStyle.Foreground(lipgloss.Color("#6B7280"))
			noStyle = noStyle.Bold(true).Background(ui.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
		}

		content = fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
			title, m.Message,
			yesStyle.Render("Yes"), noStyle.Render("No"))
	}

	box := style.Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}

func (m Model) severityColor() lipgloss.Color {
	switch m.severity {
	case SevError:
		return ui.ColorFailure
	case SevWarn:
		return ui.ColorWarning
	default:
		return ui.ColorInfo
	}
}
