package configform

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filefy/wordsearch-tui/internal/model"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

func newTestForm() Model {
	m := New(ui.NewStyles(ui.Default()))
	m.SetSize(60, 30)
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewDefaults(t *testing.T) {
	m := newTestForm()
	req := m.Request()
	if req.SearchPath != "." {
		t.Errorf("SearchPath = %q, want %q", req.SearchPath, ".")
	}
	if req.Terms != nil || req.RegexPatterns != nil {
		t.Errorf("fresh form should have no terms, got %+v", req)
	}
	if m.IsEditing() {
		t.Error("fresh form should start in navigation mode")
	}
}

func TestNavigationMovesFocus(t *testing.T) {
	m := newTestForm()

	m, _ = m.Update(keyRunes('j'))
	m, _ = m.Update(keyRunes('j'))
	m, _ = m.Update(keyRunes('j'))
	m, _ = m.Update(keyRunes(' '))
	if !m.CaseSensitive() {
		t.Error("space on the case field should toggle it")
	}

	m, _ = m.Update(keyRunes('j'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Verbose() {
		t.Error("enter on the verbose field should toggle it")
	}
	if m.IsEditing() {
		t.Error("toggling must not enter edit mode")
	}
}

func TestNavigationWraps(t *testing.T) {
	m := newTestForm()
	m, _ = m.Update(keyRunes('k'))
	m, _ = m.Update(keyRunes(' '))
	if !m.Verbose() {
		t.Error("up from the first field should land on the last")
	}
}

func TestEnterEditsPathField(t *testing.T) {
	m := newTestForm()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsEditing() {
		t.Fatal("enter on the path field should start editing")
	}

	for _, r := range "/tmp" {
		m, _ = m.Update(keyRunes(r))
	}
	if got := m.SearchPath(); got != "./tmp" {
		t.Errorf("SearchPath = %q, want %q", got, "./tmp")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsEditing() {
		t.Error("enter should finish the single-line field")
	}
}

func TestEscLeavesEditMode(t *testing.T) {
	m := newTestForm()
	m, _ = m.Update(keyRunes('j'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsEditing() {
		t.Fatal("enter on the terms field should start editing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsEditing() {
		t.Error("esc should return to navigation mode")
	}
}

func TestRequestSplitsTermLines(t *testing.T) {
	m := newTestForm()
	m.Apply(model.SearchRequest{
		SearchPath:    "/src",
		Terms:         []string{"alpha", "beta"},
		RegexPatterns: []string{"^foo.*$"},
		CaseSensitive: true,
		Verbose:       true,
	})

	req := m.Request()
	if req.SearchPath != "/src" {
		t.Errorf("SearchPath = %q", req.SearchPath)
	}
	if !reflect.DeepEqual(req.Terms, []string{"alpha", "beta"}) {
		t.Errorf("Terms = %v", req.Terms)
	}
	if !reflect.DeepEqual(req.RegexPatterns, []string{"^foo.*$"}) {
		t.Errorf("RegexPatterns = %v", req.RegexPatterns)
	}
	if !req.CaseSensitive || !req.Verbose {
		t.Errorf("flags lost: %+v", req)
	}
	if m.TermsCount() != 2 {
		t.Errorf("TermsCount = %d, want 2", m.TermsCount())
	}
}

func TestViewShowsSectionsAndFocus(t *testing.T) {
	m := newTestForm()
	view := m.View()

	for _, want := range []string{"Search Configuration", "Search Path:", "Search Terms (one per line):", "Regex Patterns (one per line):", "Options", "Case Sensitive", "Verbose Output"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(view, "> ") {
		t.Error("view missing focus cursor")
	}
}

func TestCheckboxRendering(t *testing.T) {
	m := newTestForm()
	if !strings.Contains(m.View(), "[ ] Case Sensitive") {
		t.Error("unchecked box not rendered")
	}

	m.Apply(model.SearchRequest{SearchPath: ".", CaseSensitive: true})
	if !strings.Contains(m.View(), "[x] Case Sensitive") {
		t.Error("checked box not rendered")
	}
}
