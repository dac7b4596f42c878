package resultsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/model"
	"github.com/filefy/wordsearch-tui/internal/results"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

// Model renders loaded result rows as a table with an optional local
// filter. The filter narrows the visible rows only; the loaded set
// stays intact.
type Model struct {
	styles    ui.Styles
	table     table.Model
	input     textinput.Model
	all       []model.ResultRow
	shown     []model.ResultRow
	expr      string
	filterErr error
	filtering bool
	width     int
	height    int
}

func New(st ui.Styles) Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "substring, or /regex"
	input.CharLimit = 256

	t := table.New(table.WithFocused(true))

	m := Model{
		styles: st,
		table:  t,
		input:  input,
	}
	m.applyStyles()
	return m
}

func (m *Model) SetStyles(st ui.Styles) {
	m.styles = st
	m.applyStyles()
}

func (m *Model) applyStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.styles.Theme.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(m.styles.Theme.Primary)
	s.Cell = s.Cell.Foreground(m.styles.Theme.Text)
	s.Selected = m.styles.Selected
	m.table.SetStyles(s)

	m.input.PlaceholderStyle = m.styles.Muted
	m.input.PromptStyle = m.styles.Accent
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = w - 8
	tableH := h - 2
	if tableH < 3 {
		tableH = 3
	}
	m.table.SetHeight(tableH)
	m.table.SetWidth(w)
	m.layoutColumns()
}

func (m *Model) layoutColumns() {
	avail := m.width - 4
	if avail < 60 {
		avail = 60
	}
	line := 6
	kind := 15
	rest := avail - line - kind
	filePath := rest * 30 / 100
	fileName := rest * 20 / 100
	term := rest * 15 / 100
	match := rest - filePath - fileName - term
	m.table.SetColumns([]table.Column{
		{Title: model.ResultColumns[0], Width: kind},
		{Title: model.ResultColumns[1], Width: filePath},
		{Title: model.ResultColumns[2], Width: fileName},
		{Title: model.ResultColumns[3], Width: line},
		{Title: model.ResultColumns[4], Width: term},
		{Title: model.ResultColumns[5], Width: match},
	})
}

func (m *Model) SetRows(rows []model.ResultRow) {
	m.all = rows
	m.refresh()
}

// Clear drops the rows and any active filter, e.g. when a new search
// starts.
func (m *Model) Clear() {
	m.all = nil
	m.expr = ""
	m.filterErr = nil
	m.filtering = false
	m.input.SetValue("")
	m.input.Blur()
	m.refresh()
}

func (m Model) Count() int { return len(m.all) }

func (m Model) VisibleCount() int { return len(m.shown) }

// IsFiltering reports whether the filter input owns the keyboard.
func (m Model) IsFiltering() bool { return m.filtering }

func (m Model) HasFilter() bool { return m.expr != "" }

func (m *Model) ClearFilter() {
	m.expr = ""
	m.filterErr = nil
	m.input.SetValue("")
	m.refresh()
}

func (m *Model) refresh() {
	shown, err := results.Filter(m.all, m.expr)
	if err != nil {
		m.filterErr = err
		return
	}
	m.filterErr = nil
	m.shown = shown
	rows := make([]table.Row, len(shown))
	for i, r := range shown {
		f := r.Fields()
		rows[i] = table.Row(f[:])
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok && m.filtering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.filtering {
			switch keyMsg.String() {
			case "enter":
				prev := m.expr
				m.expr = strings.TrimSpace(m.input.Value())
				m.refresh()
				if m.filterErr != nil {
					// Keep the input open with the error note; the
					// previous filter stays applied.
					m.expr = prev
					return m, nil
				}
				m.filtering = false
				m.input.Blur()
				return m, nil
			case "esc":
				m.filtering = false
				m.filterErr = nil
				m.input.Blur()
				m.input.SetValue(m.expr)
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		}

		switch {
		case key.Matches(keyMsg, ui.Keys.Filter):
			m.filtering = true
			m.input.SetValue(m.expr)
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(keyMsg, ui.Keys.Back):
			if m.expr != "" {
				m.ClearFilter()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if len(m.all) == 0 {
		b.WriteString("\n  No results. Press s to run a search.")
		return b.String()
	}
	b.WriteString(m.table.View())
	return b.String()
}

func (m Model) headerLine() string {
	title := m.styles.Title.Render("Results Table")
	var note string
	switch {
	case m.filterErr != nil:
		note = m.styles.Failure.Render(fmt.Sprintf("bad pattern: %v", m.filterErr))
	case m.expr != "":
		note = m.styles.Muted.Render(fmt.Sprintf("%d/%d  filter: %s", len(m.shown), len(m.all), m.expr))
	default:
		note = m.styles.Muted.Render(fmt.Sprintf("%d results", len(m.all)))
	}
	return title + "  " + note
}
