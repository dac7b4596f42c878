package browser

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

// ResultMsg is emitted when the user picks a directory or cancels.
type ResultMsg struct {
	Chosen bool
	Path   string
}

// Model is the directory picker for the search path. Files are shown
// but only directories can be chosen.
type Model struct {
	styles ui.Styles
	active bool
	picker filepicker.Model
	width  int
	height int
}

// New creates the browser rooted at startDir, falling back to the
// working directory when startDir is not a directory.
func New(st ui.Styles, startDir string) Model {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.CurrentDirectory = "."
	if info, err := os.Stat(startDir); err == nil && info.IsDir() {
		fp.CurrentDirectory = startDir
	}

	fp.Styles = filepicker.DefaultStyles()
	fp.Styles.Cursor = st.Cursor
	fp.Styles.Directory = st.Accent
	fp.Styles.Selected = st.Cursor
	fp.Styles.EmptyDirectory = st.Muted

	return Model{styles: st, active: true, picker: fp}
}

func (m Model) Init() tea.Cmd { return m.picker.Init() }

func (m Model) IsActive() bool { return m.active }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	ph := h - 4
	if ph < 5 {
		ph = 5
	}
	m.picker.Height = ph
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.active = false
			return m, emitResult(false, "")
		case "s":
			m.active = false
			return m, emitResult(true, m.picker.CurrentDirectory)
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	// The picker reports selection one message later, via its own
	// internal marker message.
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.active = false
		return m, tea.Batch(cmd, emitResult(true, path))
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	title := m.styles.Title.Render(" Select Search Directory")
	current := m.styles.Muted.Render(fmt.Sprintf("  %s", m.picker.CurrentDirectory))
	hints := m.styles.Muted.Render("  enter: open  backspace: up  s: use this directory  esc: cancel")

	return title + "\n" + current + "\n" + m.picker.View() + "\n" + hints
}

func emitResult(chosen bool, path string) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Chosen: chosen, Path: path}
	}
}
