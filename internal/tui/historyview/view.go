package historyview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/history"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

type histItem struct {
	entry history.Entry
}

func (h histItem) Title() string {
	icon := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("V")
	if !h.entry.Succeeded {
		icon = lipgloss.NewStyle().Foreground(ui.ColorFailure).Render("X")
	}
	path := h.entry.SearchPath
	if strings.TrimSpace(path) == "" {
		path = "."
	}
	return fmt.Sprintf("%s %s  (%d terms, %d patterns)",
		icon, path, len(h.entry.Terms), len(h.entry.RegexPatterns))
}

func (h histItem) Description() string {
	parts := []string{
		h.entry.RunAt.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("%d results", h.entry.ResultCount),
	}
	if h.entry.CaseSensitive {
		parts = append(parts, "case-sensitive")
	}
	if h.entry.Verbose {
		parts = append(parts, "verbose")
	}
	return strings.Join(parts, "  ")
}

func (h histItem) FilterValue() string {
	return h.entry.SearchPath + " " + strings.Join(h.entry.Terms, " ")
}

// Model is the search history list. Selecting an entry refills the
// configuration form with that run's settings.
type Model struct {
	styles  ui.Styles
	list    list.Model
	active  bool
	loading bool
	err     error
	width   int
	height  int
}

func New(st ui.Styles) Model {
	l := list.New(nil, newDelegate(st), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	return Model{styles: st, list: l, loading: true}
}

func newDelegate(st ui.Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetHeight(2)
	d.SetSpacing(0)
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(st.Theme.Text)
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(st.Theme.TextSecondary)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(st.Theme.Primary).
		BorderLeftForeground(st.Theme.Primary)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(st.Theme.PrimaryHover).
		BorderLeftForeground(st.Theme.Primary)
	return d
}

func (m *Model) SetStyles(st ui.Styles) {
	m.styles = st
	m.list.SetDelegate(newDelegate(st))
}

func (m Model) IsActive() bool { return m.active }

func (m *Model) Activate() {
	m.active = true
	m.loading = true
	m.err = nil
}

func (m *Model) Deactivate() {
	m.active = false
	m.list.ResetFilter()
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h-1)
}

func (m Model) SelectedEntry() *history.Entry {
	if item, ok := m.list.SelectedItem().(histItem); ok {
		return &item.entry
	}
	return nil
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.HistoryLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = histItem{entry: e}
		}
		cmd := m.list.SetItems(items)
		m.list.Select(0)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.styles.Title.Render(" Search History") +
		m.styles.Muted.Render("  enter: recall  d: delete  f: filter  esc: close")

	if m.loading {
		return header + "\n\n  Loading history..."
	}
	if m.err != nil {
		return header + fmt.Sprintf("\n\n  Error: %v", m.err)
	}
	if len(m.list.Items()) == 0 {
		return header + "\n\n  No searches recorded yet."
	}
	return header + "\n" + m.list.View()
}
