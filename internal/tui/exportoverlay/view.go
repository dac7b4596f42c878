package exportoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

// ---------------------------------------------------------------------------
// Result message
// ---------------------------------------------------------------------------

// ResultMsg is emitted when the user confirms or cancels the export.
type ResultMsg struct {
	Confirmed bool
	Path      string
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the save-results overlay: a single file-name prompt. The
// extension picks the export format.
type Model struct {
	styles   ui.Styles
	active   bool
	input    textinput.Model
	rowCount int
	width    int
	height   int
}

// New creates the overlay pre-filled with a suggested file name. The
// overlay starts in the active state with the input focused.
func New(st ui.Styles, defaultName string, rowCount int) Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 512
	input.Width = 44
	input.SetValue(defaultName)
	input.PlaceholderStyle = st.Muted
	input.Focus()

	return Model{
		styles:   st,
		active:   true,
		input:    input,
		rowCount: rowCount,
	}
}

// IsActive reports whether the overlay is currently visible.
func (m Model) IsActive() bool { return m.active }

// SetSize stores terminal dimensions so the overlay can center itself.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

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
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return m, nil
			}
			m.active = false
			return m, emitResult(true, path)
		case "esc":
			m.active = false
			return m, emitResult(false, "")
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
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
		Render("Save Search Results")

	label := m.styles.Label.Render("File name:")
	inputRow := fmt.Sprintf("%s %s", label, m.input.View())

	note := m.styles.Muted.MarginTop(1).Render(fmt.Sprintf(
		"%d results will be written.\n.csv saves a spreadsheet; any other\nextension saves a plain-text report.",
		m.rowCount))

	help := m.styles.Muted.
		MarginTop(1).
		Render("enter: save  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left, title, inputRow, note, help)

	box := m.styles.Box.Width(56).Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}

func emitResult(confirmed bool, path string) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Confirmed: confirmed, Path: path}
	}
}
