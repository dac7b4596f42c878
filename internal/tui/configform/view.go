package configform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/model"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

type field int

const (
	fieldPath field = iota
	fieldTerms
	fieldRegex
	fieldCase
	fieldVerbose
	fieldCount
)

// Model is the search configuration pane: where to search, what to
// look for, and how. Two modes: navigating between fields, and
// editing the focused text field.
type Model struct {
	styles        ui.Styles
	focused       field
	path          textinput.Model
	terms         textarea.Model
	regex         textarea.Model
	caseSensitive bool
	verbose       bool
	width         int
	height        int
}

func New(st ui.Styles) Model {
	path := textinput.New()
	path.Prompt = ""
	path.CharLimit = 512
	path.SetValue(".")

	terms := textarea.New()
	terms.Placeholder = "Enter search terms, one per line..."
	terms.ShowLineNumbers = false
	terms.CharLimit = 0
	terms.SetHeight(5)

	regex := textarea.New()
	regex.Placeholder = "Enter regex patterns, one per line..."
	regex.ShowLineNumbers = false
	regex.CharLimit = 0
	regex.SetHeight(4)

	m := Model{
		styles:  st,
		focused: fieldPath,
		path:    path,
		terms:   terms,
		regex:   regex,
	}
	m.applyStyles()
	return m
}

func (m *Model) SetStyles(st ui.Styles) {
	m.styles = st
	m.applyStyles()
}

func (m *Model) applyStyles() {
	text := lipgloss.NewStyle().Foreground(m.styles.Theme.Text)
	cursorLine := lipgloss.NewStyle().Background(m.styles.Theme.SurfaceAlt)

	m.path.PlaceholderStyle = m.styles.Muted
	m.path.TextStyle = text

	for _, ta := range []*textarea.Model{&m.terms, &m.regex} {
		ta.FocusedStyle.Placeholder = m.styles.Muted
		ta.BlurredStyle.Placeholder = m.styles.Muted
		ta.FocusedStyle.Text = text
		ta.BlurredStyle.Text = text
		ta.FocusedStyle.CursorLine = cursorLine
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := w - 6
	if inner < 20 {
		inner = 20
	}
	m.path.Width = inner - 16
	m.terms.SetWidth(inner)
	m.regex.SetWidth(inner)
}

// IsEditing reports whether a text field currently owns the keyboard.
func (m Model) IsEditing() bool {
	return m.path.Focused() || m.terms.Focused() || m.regex.Focused()
}

func (m Model) Request() model.SearchRequest {
	return model.SearchRequest{
		SearchPath:    m.path.Value(),
		Terms:         model.SplitList(m.terms.Value()),
		RegexPatterns: model.SplitList(m.regex.Value()),
		CaseSensitive: m.caseSensitive,
		Verbose:       m.verbose,
	}
}

// Apply fills the form from a previous request, e.g. when recalling a
// history entry.
func (m *Model) Apply(req model.SearchRequest) {
	m.path.SetValue(req.SearchPath)
	m.terms.SetValue(strings.Join(req.Terms, "\n"))
	m.regex.SetValue(strings.Join(req.RegexPatterns, "\n"))
	m.caseSensitive = req.CaseSensitive
	m.verbose = req.Verbose
}

func (m Model) SearchPath() string { return m.path.Value() }

func (m Model) CaseSensitive() bool { return m.caseSensitive }

func (m Model) Verbose() bool { return m.verbose }

func (m *Model) SetSearchPath(p string) { m.path.SetValue(p) }

func (m Model) TermsCount() int {
	return len(model.SplitList(m.terms.Value()))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and similar internals go to the focused field.
		return m, m.forwardToFocused(msg)
	}

	if m.IsEditing() {
		switch keyMsg.String() {
		case "esc":
			m.blurAll()
			return m, nil
		case "tab":
			m.blurAll()
			m.moveFocus(1)
			return m, m.focusCurrent()
		case "shift+tab":
			m.blurAll()
			m.moveFocus(-1)
			return m, m.focusCurrent()
		case "enter":
			// Enter finishes the single-line field; the textareas
			// take it as a newline.
			if m.focused == fieldPath {
				m.blurAll()
				return m, nil
			}
		}
		return m, m.forwardToFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, ui.Keys.Down):
		m.moveFocus(1)
		return m, nil
	case key.Matches(keyMsg, ui.Keys.Up):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(keyMsg, ui.Keys.Enter):
		if m.isToggle(m.focused) {
			m.toggle(m.focused)
			return m, nil
		}
		return m, m.focusCurrent()
	}

	switch keyMsg.String() {
	case " ", "l", "h", "right", "left":
		if m.isToggle(m.focused) {
			m.toggle(m.focused)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	st := m.styles

	var b strings.Builder
	b.WriteString(st.Title.Render("Search Configuration"))
	b.WriteString("\n\n")

	b.WriteString(m.cursor(fieldPath))
	b.WriteString(m.label(fieldPath, "Search Path:"))
	b.WriteString(" ")
	b.WriteString(m.path.View())
	b.WriteString("\n\n")

	b.WriteString(m.cursor(fieldTerms))
	b.WriteString(m.label(fieldTerms, "Search Terms (one per line):"))
	b.WriteString("\n")
	b.WriteString(indent(m.terms.View()))
	b.WriteString("\n\n")

	b.WriteString(m.cursor(fieldRegex))
	b.WriteString(m.label(fieldRegex, "Regex Patterns (one per line):"))
	b.WriteString("\n")
	b.WriteString(indent(m.regex.View()))
	b.WriteString("\n\n")

	b.WriteString(st.Title.Render("Options"))
	b.WriteString("\n")
	b.WriteString(m.cursor(fieldCase))
	b.WriteString(m.checkbox("Case Sensitive", m.caseSensitive))
	b.WriteString("\n")
	b.WriteString(m.cursor(fieldVerbose))
	b.WriteString(m.checkbox("Verbose Output", m.verbose))
	b.WriteString("\n")

	return b.String()
}

func (m Model) cursor(f field) string {
	if f == m.focused {
		return m.styles.Cursor.Render("> ")
	}
	return "  "
}

func (m Model) label(f field, text string) string {
	if f == m.focused {
		return m.styles.Cursor.Render(text)
	}
	return m.styles.Label.Render(text)
}

func (m Model) checkbox(text string, checked bool) string {
	mark := "[ ]"
	if checked {
		mark = m.styles.Accent.Render("[x]")
	}
	value := lipgloss.NewStyle().Foreground(m.styles.Theme.Text).Render(text)
	return mark + " " + value
}

func (m *Model) moveFocus(delta int) {
	next := int(m.focused) + delta
	if next < 0 {
		next = int(fieldCount) - 1
	}
	if next >= int(fieldCount) {
		next = 0
	}
	m.focused = field(next)
}

func (m Model) isToggle(f field) bool {
	return f == fieldCase || f == fieldVerbose
}

func (m *Model) toggle(f field) {
	switch f {
	case fieldCase:
		m.caseSensitive = !m.caseSensitive
	case fieldVerbose:
		m.verbose = !m.verbose
	}
}

func (m *Model) blurAll() {
	m.path.Blur()
	m.terms.Blur()
	m.regex.Blur()
}

func (m *Model) focusCurrent() tea.Cmd {
	switch m.focused {
	case fieldPath:
		m.path.Focus()
		return textinput.Blink
	case fieldTerms:
		m.terms.Focus()
		return textarea.Blink
	case fieldRegex:
		m.regex.Focus()
		return textarea.Blink
	}
	return nil
}

func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	if !m.IsEditing() {
		return nil
	}
	var cmd tea.Cmd
	switch m.focused {
	case fieldPath:
		m.path, cmd = m.path.Update(msg)
	case fieldTerms:
		m.terms, cmd = m.terms.Update(msg)
	case fieldRegex:
		m.regex, cmd = m.regex.Update(msg)
	}
	return cmd
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
