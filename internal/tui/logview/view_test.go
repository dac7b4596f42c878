package logview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

func newTestLog() Model {
	m := New(ui.NewStyles(ui.Default()))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEmptyLogShowsHint(t *testing.T) {
	m := newTestLog()
	if !strings.Contains(m.View(), "No log output yet. Press s to run a search.") {
		t.Errorf("view = %q", m.View())
	}
}

func TestAppendAccumulatesLines(t *testing.T) {
	m := newTestLog()
	m.Append("Starting search...")
	m.Append("Found 3 matches")

	if got := m.Content(); got != "Starting search...\nFound 3 matches" {
		t.Errorf("Content = %q", got)
	}
	view := m.View()
	if !strings.Contains(view, "Log Output") {
		t.Error("header missing")
	}
	if !strings.Contains(view, "Starting search...") || !strings.Contains(view, "Found 3 matches") {
		t.Errorf("appended lines missing from view:\n%s", view)
	}
}

func TestClearResetsEverything(t *testing.T) {
	m := newTestLog()
	m.Append("some output")
	m.Clear()

	if m.Content() != "" {
		t.Errorf("Content = %q, want empty", m.Content())
	}
	if !strings.Contains(m.View(), "No log output yet.") {
		t.Errorf("view = %q", m.View())
	}
}

func TestSearchCyclesThroughMatches(t *testing.T) {
	m := newTestLog()
	m.Append("alpha one\nbeta\nalpha two")

	m, _ = m.Update(keyRunes('/'))
	if !m.IsSearching() {
		t.Fatal("/ should open the search input")
	}
	for _, r := range "alpha" {
		m, _ = m.Update(keyRunes(r))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsSearching() {
		t.Fatal("enter should close the search input")
	}
	if !strings.Contains(m.View(), "[1/2 matches]") {
		t.Errorf("view = %q", m.View())
	}

	m, _ = m.Update(keyRunes('n'))
	if !strings.Contains(m.View(), "[2/2 matches]") {
		t.Errorf("n should advance: %q", m.View())
	}
	m, _ = m.Update(keyRunes('n'))
	if !strings.Contains(m.View(), "[1/2 matches]") {
		t.Errorf("n should wrap: %q", m.View())
	}
	m, _ = m.Update(keyRunes('N'))
	if !strings.Contains(m.View(), "[2/2 matches]") {
		t.Errorf("N should go back: %q", m.View())
	}
}

func TestSearchWithoutMatches(t *testing.T) {
	m := newTestLog()
	m.Append("nothing relevant here")

	m, _ = m.Update(keyRunes('/'))
	for _, r := range "zzz" {
		m, _ = m.Update(keyRunes(r))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.View(), "[no matches]") {
		t.Errorf("view = %q", m.View())
	}
}

func TestEscAbandonsSearch(t *testing.T) {
	m := newTestLog()
	m.Append("line")

	m, _ = m.Update(keyRunes('/'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsSearching() {
		t.Error("esc should close the search input")
	}
	if strings.Contains(m.View(), "matches]") {
		t.Errorf("no query should be applied: %q", m.View())
	}
}
