package resultsview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filefy/wordsearch-tui/internal/model"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

func newTestView() Model {
	m := New(ui.NewStyles(ui.Default()))
	m.SetSize(100, 20)
	return m
}

func testRows() []model.ResultRow {
	return []model.ResultRow{
		{Kind: "FileName match", FilePath: "/src/main.go", FileName: "main.go", Line: "0", Term: "main", Match: "main.go"},
		{Kind: "Content match", FilePath: "/src/util.go", FileName: "util.go", Line: "7", Term: "todo", Match: "// todo"},
		{Kind: "Content match", FilePath: "/src/api.go", FileName: "api.go", Line: "12", Term: "todo", Match: "todo: retry"},
	}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEmptyViewShowsHint(t *testing.T) {
	m := newTestView()
	if !strings.Contains(m.View(), "No results. Press s to run a search.") {
		t.Errorf("view = %q", m.View())
	}
}

func TestSetRowsRendersTable(t *testing.T) {
	m := newTestView()
	m.SetRows(testRows())

	if m.Count() != 3 || m.VisibleCount() != 3 {
		t.Fatalf("Count = %d, VisibleCount = %d, want 3/3", m.Count(), m.VisibleCount())
	}
	view := m.View()
	for _, want := range []string{"Results Table", "3 results", "main.go", "util.go"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFilterFlow(t *testing.T) {
	m := newTestView()
	m.SetRows(testRows())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.IsFiltering() {
		t.Fatal("/ should open the filter input")
	}

	m = typeString(m, "todo")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsFiltering() {
		t.Error("enter should close the filter input")
	}
	if !m.HasFilter() {
		t.Error("filter expression not kept")
	}
	if m.VisibleCount() != 2 {
		t.Errorf("VisibleCount = %d, want 2", m.VisibleCount())
	}
	if m.Count() != 3 {
		t.Errorf("Count = %d, want 3; filtering must not drop loaded rows", m.Count())
	}
	if !strings.Contains(m.View(), "2/3") {
		t.Errorf("view missing filter note: %q", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.HasFilter() {
		t.Error("esc should clear the applied filter")
	}
	if m.VisibleCount() != 3 {
		t.Errorf("VisibleCount = %d, want 3", m.VisibleCount())
	}
}

func TestFilterBadRegexStaysOpen(t *testing.T) {
	m := newTestView()
	m.SetRows(testRows())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = typeString(m, "/[")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.IsFiltering() {
		t.Error("bad pattern should keep the filter input open")
	}
	if !strings.Contains(m.View(), "bad pattern:") {
		t.Errorf("view missing error note: %q", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsFiltering() {
		t.Error("esc should abandon the filter input")
	}
	if m.HasFilter() {
		t.Error("a rejected pattern must not stick as the applied filter")
	}
	if m.VisibleCount() != 3 {
		t.Errorf("VisibleCount = %d, want 3", m.VisibleCount())
	}
}

func TestClearDropsRowsAndFilter(t *testing.T) {
	m := newTestView()
	m.SetRows(testRows())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = typeString(m, "todo")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Clear()
	if m.Count() != 0 || m.VisibleCount() != 0 {
		t.Errorf("Count = %d, VisibleCount = %d, want 0/0", m.Count(), m.VisibleCount())
	}
	if m.HasFilter() || m.IsFiltering() {
		t.Error("Clear should reset the filter")
	}
}
