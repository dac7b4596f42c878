package logview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

// Model is the append-only run log: progress lines while a search is
// running, then the script's output or error when it finishes.
type Model struct {
	styles   ui.Styles
	viewport viewport.Model
	content  string
	width    int
	height   int
	ready    bool

	// In-log search
	searchInput textinput.Model
	searching   bool
	searchQuery string
	matchLines  []int // 0-based line indices of matches
	matchIndex  int
	matchTotal  int
}

func New(st ui.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Search in log..."
	ti.CharLimit = 256
	m := Model{styles: st, searchInput: ti}
	m.applyStyles()
	return m
}

func (m *Model) SetStyles(st ui.Styles) {
	m.styles = st
	m.applyStyles()
}

func (m *Model) applyStyles() {
	m.searchInput.PlaceholderStyle = m.styles.Muted
}

// Append adds a block of text to the log and follows the bottom when
// the viewport was already there.
func (m *Model) Append(text string) {
	if m.content == "" {
		m.content = text
	} else {
		m.content += "\n" + text
	}
	if !m.ready {
		return
	}

	wasAtBottom := m.viewport.AtBottom()
	prevOffset := m.viewport.YOffset

	m.findMatches()
	m.viewport.SetContent(m.applyHighlights())

	if wasAtBottom {
		m.viewport.GotoBottom()
	} else {
		maxOffset := m.viewport.TotalLineCount() - m.viewport.VisibleLineCount()
		if maxOffset < 0 {
			maxOffset = 0
		}
		if prevOffset > maxOffset {
			m.viewport.GotoBottom()
		} else {
			m.viewport.SetYOffset(prevOffset)
		}
	}
}

func (m *Model) Clear() {
	m.content = ""
	m.searchQuery = ""
	m.matchLines = nil
	m.matchIndex = 0
	m.matchTotal = 0
	if m.ready {
		m.viewport.SetContent("")
		m.viewport.GotoTop()
	}
}

func (m Model) Content() string {
	return m.content
}

func (m Model) IsSearching() bool {
	return m.searching
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				query := m.searchInput.Value()
				if query != "" {
					m.searchQuery = query
					m.findMatches()
					m.viewport.SetContent(m.applyHighlights())
					if len(m.matchLines) > 0 {
						m.matchIndex = 0
						m.viewport.SetYOffset(m.matchLines[0])
					}
				}
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			return m, textinput.Blink
		case "n":
			if len(m.matchLines) > 0 {
				m.matchIndex = (m.matchIndex + 1) % len(m.matchLines)
				m.viewport.SetContent(m.applyHighlights())
				m.viewport.SetYOffset(m.matchLines[m.matchIndex])
			}
			return m, nil
		case "N":
			if len(m.matchLines) > 0 {
				m.matchIndex = (m.matchIndex - 1 + len(m.matchLines)) % len(m.matchLines)
				m.viewport.SetContent(m.applyHighlights())
				m.viewport.SetYOffset(m.matchLines[m.matchIndex])
			}
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 1
		if m.searching {
			headerH = 2
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerH)
			m.ready = true
			if m.content != "" {
				m.viewport.SetContent(m.applyHighlights())
			}
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerH
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) findMatches() {
	m.matchLines = nil
	if m.searchQuery == "" || m.content == "" {
		m.matchTotal = 0
		return
	}
	query := strings.ToLower(m.searchQuery)
	lines := strings.Split(m.content, "\n")
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), query) {
			m.matchLines = append(m.matchLines, i)
		}
	}
	m.matchTotal = len(m.matchLines)
	if m.matchIndex >= m.matchTotal {
		m.matchIndex = 0
	}
}

// applyHighlights returns the content with matching lines highlighted.
func (m Model) applyHighlights() string {
	if m.searchQuery == "" || len(m.matchLines) == 0 {
		return m.content
	}

	matchSet := make(map[int]bool)
	for _, idx := range m.matchLines {
		matchSet[idx] = true
	}

	currentMatchLine := -1
	if m.matchIndex >= 0 && m.matchIndex < len(m.matchLines) {
		currentMatchLine = m.matchLines[m.matchIndex]
	}

	lines := strings.Split(m.content, "\n")
	for i, line := range lines {
		if i == currentMatchLine {
			lines[i] = m.styles.MatchCurrent.Render(line)
		} else if matchSet[i] {
			lines[i] = m.styles.Match.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	if m.content == "" {
		return "\n  No log output yet. Press s to run a search."
	}

	headerParts := fmt.Sprintf(" Log Output  %3.f%%", m.viewport.ScrollPercent()*100)
	if m.searchQuery != "" && m.matchTotal > 0 {
		headerParts += fmt.Sprintf("  [%d/%d matches]", m.matchIndex+1, m.matchTotal)
	}
	header := m.styles.Title.Render(headerParts)
	if m.searchQuery != "" && m.matchTotal == 0 {
		header += m.styles.Warning.Render("  [no matches]")
	}
	header += m.styles.Muted.Render("  /:search  n/N:match  j/k:line  g/G:top/bot")

	if m.searching {
		searchLine := "  /" + m.searchInput.View()
		return header + "\n" + searchLine + "\n" + m.viewport.View()
	}

	return header + "\n" + m.viewport.View()
}
