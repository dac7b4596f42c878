package summaryview

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/filefy/wordsearch-tui/internal/model"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

// Data is everything the summary tab reports on: the match tallies
// plus the configuration the search ran with.
type Data struct {
	Summary       model.Summary
	SearchPath    string
	CaseSensitive bool
	TermsCount    int
	ThemeName     string
}

type Model struct {
	styles  ui.Styles
	data    Data
	hasData bool
	width   int
	height  int
}

func New(st ui.Styles) Model {
	return Model{styles: st}
}

func (m *Model) SetStyles(st ui.Styles) {
	m.styles = st
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *Model) SetData(d Data) {
	m.data = d
	m.hasData = true
}

func (m *Model) Reset() {
	m.data = Data{}
	m.hasData = false
}

func (m Model) View() string {
	if !m.hasData {
		return "\n  Run a search to see the summary."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(" Search Results Summary"))
	b.WriteString("\n\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Metric", "Count"})
	tw.AppendRow(table.Row{"Total Matches", m.data.Summary.Total})
	tw.AppendRow(table.Row{"Filename Matches", m.data.Summary.FileNameMatches})
	tw.AppendRow(table.Row{"Content Matches", m.data.Summary.ContentMatches})
	b.WriteString(indent(tw.Render()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render(" Search Configuration"))
	b.WriteString("\n\n")

	label := m.styles.Label.Width(16)
	rows := []struct {
		name  string
		value string
	}{
		{"Search Path:", m.data.SearchPath},
		{"Case Sensitive:", yesNo(m.data.CaseSensitive)},
		{"Terms Count:", fmt.Sprintf("%d", m.data.TermsCount)},
		{"Theme:", m.data.ThemeName},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "  %s %s\n", label.Render(row.name), row.value)
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
