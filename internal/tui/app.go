package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/config"
	"github.com/filefy/wordsearch-tui/internal/history"
	"github.com/filefy/wordsearch-tui/internal/model"
	"github.com/filefy/wordsearch-tui/internal/results"
	"github.com/filefy/wordsearch-tui/internal/script"
	"github.com/filefy/wordsearch-tui/internal/tui/browser"
	"github.com/filefy/wordsearch-tui/internal/tui/configform"
	"github.com/filefy/wordsearch-tui/internal/tui/confirm"
	"github.com/filefy/wordsearch-tui/internal/tui/exportoverlay"
	"github.com/filefy/wordsearch-tui/internal/tui/historyview"
	"github.com/filefy/wordsearch-tui/internal/tui/logview"
	"github.com/filefy/wordsearch-tui/internal/tui/resultsview"
	"github.com/filefy/wordsearch-tui/internal/tui/summaryview"
	"github.com/filefy/wordsearch-tui/internal/tui/themeoverlay"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

type Tab int

const (
	TabSearch Tab = iota
	TabLog
	TabSummary
)

type Pane int

const (
	PaneForm Pane = iota
	PaneResults
)

// searchState tracks the lifecycle of the current search. A new start
// request while stateSearching is silently ignored; only stateSucceeded
// allows exporting.
type searchState int

const (
	stateIdle searchState = iota
	stateSearching
	stateSucceeded
	stateFailed
)

type App struct {
	cfg     config.Config
	cfgPath string

	runner *script.Runner
	store  *history.Store

	theme  ui.Theme
	styles ui.Styles

	formView    configform.Model
	resultsView resultsview.Model
	logView     logview.Model
	summaryView summaryview.Model
	historyView historyview.Model

	confirmDialog confirm.Model
	exportOverlay exportoverlay.Model
	themeOverlay  themeoverlay.Model
	browserView   browser.Model

	spin spinner.Model

	currentTab  Tab
	focusedPane Pane
	state       searchState

	rows    []model.ResultRow
	summary model.Summary
	loaded  bool

	lastRequest    model.SearchRequest
	lastRunAt      time.Time
	historyPending bool

	status   string
	showHelp bool

	width  int
	height int
}

func NewApp(cfg config.Config, cfgPath string, runner *script.Runner, store *history.Store) App {
	theme, ok := ui.ByName(cfg.Theme)
	if !ok {
		theme = ui.Default()
	}
	styles := ui.NewStyles(theme)

	form := configform.New(styles)
	form.Apply(model.SearchRequest{
		SearchPath:    cfg.SearchPath,
		CaseSensitive: cfg.CaseSensitive,
		Verbose:       cfg.Verbose,
	})

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return App{
		cfg:         cfg,
		cfgPath:     cfgPath,
		runner:      runner,
		store:       store,
		theme:       theme,
		styles:      styles,
		formView:    form,
		resultsView: resultsview.New(styles),
		logView:     logview.New(styles),
		summaryView: summaryview.New(styles),
		historyView: historyview.New(styles),
		spin:        spin,
		currentTab:  TabSearch,
		focusedPane: PaneForm,
		state:       stateIdle,
		status:      "Ready",
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

// --- Worker commands ---

// runSearch spawns the platform search script and reports the outcome as
// a single SearchDoneMsg. Exactly one of these runs at a time.
func (a App) runSearch(req model.SearchRequest) tea.Cmd {
	runner := a.runner
	return func() tea.Msg {
		res, err := runner.Run(context.Background(), req)
		if err != nil {
			return ui.SearchDoneMsg{Err: err}
		}
		if res.ExitCode != 0 {
			msg := strings.TrimSpace(res.Stderr)
			if msg == "" {
				msg = fmt.Sprintf("search script exited with code %d", res.ExitCode)
			}
			return ui.SearchDoneMsg{Err: errors.New(msg)}
		}
		return ui.SearchDoneMsg{Output: res.Stdout}
	}
}

func (a App) loadResults() tea.Cmd {
	path := a.runner.ResultsPath()
	return func() tea.Msg {
		// An absent results file means the script found nothing to
		// report: empty table, no dialog.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return ui.ResultsLoadedMsg{}
		}
		rows, err := results.Load(path)
		return ui.ResultsLoadedMsg{Rows: rows, Found: true, Err: err}
	}
}

func (a App) doExport(path string) tea.Cmd {
	rows := a.rows
	cfg := results.ExportConfig{
		SearchPath:    a.lastRequest.SearchPath,
		CaseSensitive: a.lastRequest.CaseSensitive,
	}
	return func() tea.Msg {
		if err := results.Export(path, rows, cfg); err != nil {
			return ui.ExportDoneMsg{Path: path, Err: err}
		}
		return ui.ExportDoneMsg{Path: path}
	}
}

// --- Persistence commands ---

func (a App) loadHistory() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		entries, err := store.List()
		return ui.HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

func (a App) appendHistory(entry history.Entry) tea.Cmd {
	store := a.store
	return func() tea.Msg {
		return ui.HistorySavedMsg{Err: store.Append(entry)}
	}
}

func (a App) deleteHistory(id string) tea.Cmd {
	store := a.store
	return func() tea.Msg {
		return ui.HistoryDeletedMsg{Err: store.Delete(id)}
	}
}

func (a App) clearHistory() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		return ui.HistoryClearedMsg{Err: store.Clear()}
	}
}

func (a App) saveConfig() tea.Cmd {
	cfg := a.snapshotConfig()
	path := a.cfgPath
	return func() tea.Msg {
		if path == "" {
			return ui.ConfigSavedMsg{}
		}
		return ui.ConfigSavedMsg{Err: config.Save(path, cfg)}
	}
}

func (a *App) snapshotConfig() config.Config {
	cfg := a.cfg
	cfg.Theme = a.theme.Name
	cfg.SearchPath = a.formView.SearchPath()
	cfg.CaseSensitive = a.formView.CaseSensitive()
	cfg.Verbose = a.formView.Verbose()
	return cfg
}

func (a *App) saveConfigNow() {
	if a.cfgPath == "" {
		return
	}
	_ = config.Save(a.cfgPath, a.snapshotConfig())
}

// startSearch writes the list files, clears the previous run's output and
// dispatches the script. A search already in flight makes this a no-op.
func (a *App) startSearch() tea.Cmd {
	if a.state == stateSearching {
		return nil
	}

	req := a.formView.Request()
	if err := a.runner.WriteListFiles(req); err != nil {
		a.state = stateFailed
		a.status = "Search failed"
		a.logView.Append(fmt.Sprintf("ERROR: %v", err))
		a.confirmDialog = confirm.NewNotice(a.styles, confirm.SevError,
			"Search Error", fmt.Sprintf("Search failed:\n%v", err))
		a.confirmDialog.SetSize(a.width, a.height)
		return nil
	}

	a.state = stateSearching
	a.lastRequest = req
	a.lastRunAt = time.Now()
	a.rows = nil
	a.summary = model.Summary{}
	a.loaded = false
	a.historyPending = false
	a.resultsView.Clear()
	a.summaryView.Reset()
	a.logView.Clear()
	a.logView.Append("Starting search...")
	a.status = "Search in progress..."
	return tea.Batch(a.spin.Tick, a.runSearch(req))
}

func (a *App) applyTheme(t ui.Theme) {
	a.theme = t
	a.styles = ui.NewStyles(t)
	a.spin.Style = lipgloss.NewStyle().Foreground(t.Primary)
	a.formView.SetStyles(a.styles)
	a.resultsView.SetStyles(a.styles)
	a.logView.SetStyles(a.styles)
	a.summaryView.SetStyles(a.styles)
	a.historyView.SetStyles(a.styles)
	if a.loaded {
		a.setSummaryData()
	}
}

func (a *App) setSummaryData() {
	path := strings.TrimSpace(a.lastRequest.SearchPath)
	if path == "" {
		path = "."
	}
	a.summaryView.SetData(summaryview.Data{
		Summary:       a.summary,
		SearchPath:    path,
		CaseSensitive: a.lastRequest.CaseSensitive,
		TermsCount:    len(a.lastRequest.Terms),
		ThemeName:     a.theme.Name,
	})
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case spinner.TickMsg:
		if a.state == stateSearching {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return &a, cmd
		}
		return &a, nil

	case confirm.ResultMsg:
		if msg.Confirmed {
			switch msg.Action {
			case "export-overwrite":
				if path, ok := msg.Data.(string); ok {
					a.status = "Saving results..."
					cmds = append(cmds, a.doExport(path))
				}
			case "delete-history-entry":
				if id, ok := msg.Data.(string); ok {
					cmds = append(cmds, a.deleteHistory(id))
				}
			case "clear-history":
				cmds = append(cmds, a.clearHistory())
			}
		}
		return &a, tea.Batch(cmds...)

	case exportoverlay.ResultMsg:
		if msg.Confirmed {
			path := msg.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(a.runner.Dir(), path)
			}
			if _, err := os.Stat(path); err == nil {
				a.confirmDialog = confirm.New(a.styles, "Overwrite File",
					fmt.Sprintf("%s already exists. Overwrite it?", filepath.Base(path)),
					"export-overwrite", path)
				a.confirmDialog.SetSize(a.width, a.height)
			} else {
				a.status = "Saving results..."
				cmds = append(cmds, a.doExport(path))
			}
		}
		return &a, tea.Batch(cmds...)

	case themeoverlay.ResultMsg:
		if msg.Applied {
			a.applyTheme(msg.Theme)
			cmds = append(cmds, a.saveConfig())
		}
		return &a, tea.Batch(cmds...)

	case browser.ResultMsg:
		if msg.Chosen && msg.Path != "" {
			a.formView.SetSearchPath(msg.Path)
			a.status = "Search path set to " + msg.Path
		}
		return &a, nil

	case ui.SearchDoneMsg:
		if a.state != stateSearching {
			return &a, nil
		}
		if msg.Err != nil {
			a.state = stateFailed
			a.status = "Search failed"
			a.logView.Append(fmt.Sprintf("ERROR: %v", msg.Err))
			a.confirmDialog = confirm.NewNotice(a.styles, confirm.SevError,
				"Search Error", fmt.Sprintf("Search failed:\n%v", msg.Err))
			a.confirmDialog.SetSize(a.width, a.height)
			cmds = append(cmds, a.appendHistory(
				history.FromRequest(a.lastRequest, a.lastRunAt, false, 0)))
			return &a, tea.Batch(cmds...)
		}
		a.state = stateSucceeded
		a.status = "Search completed"
		if out := strings.TrimSpace(msg.Output); out != "" {
			a.logView.Append(out)
		}
		a.historyPending = true
		cmds = append(cmds, a.loadResults())
		return &a, tea.Batch(cmds...)

	case ui.ResultsLoadedMsg:
		if a.historyPending {
			a.historyPending = false
			cmds = append(cmds, a.appendHistory(
				history.FromRequest(a.lastRequest, a.lastRunAt, true, len(msg.Rows))))
		}
		if !msg.Found {
			return &a, tea.Batch(cmds...)
		}
		// Rows parsed before a failure stay visible and exportable.
		a.rows = msg.Rows
		a.resultsView.SetRows(msg.Rows)
		if msg.Err != nil {
			a.confirmDialog = confirm.NewNotice(a.styles, confirm.SevWarn,
				"Load Error", fmt.Sprintf("Failed to load results:\n%v", msg.Err))
			a.confirmDialog.SetSize(a.width, a.height)
			return &a, tea.Batch(cmds...)
		}
		a.summary = results.Summarize(msg.Rows)
		a.loaded = true
		a.setSummaryData()
		a.currentTab = TabSearch
		a.focusedPane = PaneResults
		return &a, tea.Batch(cmds...)

	case ui.ExportDoneMsg:
		if msg.Err != nil {
			a.confirmDialog = confirm.NewNotice(a.styles, confirm.SevError,
				"Save Error", fmt.Sprintf("Failed to save results:\n%v", msg.Err))
			a.confirmDialog.SetSize(a.width, a.height)
			return &a, nil
		}
		a.status = "Results saved to " + filepath.Base(msg.Path)
		a.confirmDialog = confirm.NewNotice(a.styles, confirm.SevInfo,
			"Save Successful", fmt.Sprintf("Results saved to:\n%s", msg.Path))
		a.confirmDialog.SetSize(a.width, a.height)
		return &a, nil

	case ui.HistoryLoadedMsg:
		var cmd tea.Cmd
		a.historyView, cmd = a.historyView.Update(msg)
		return &a, cmd

	case ui.HistorySavedMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("History not saved: %v", msg.Err)
		}
		return &a, nil

	case ui.HistoryDeletedMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("History delete failed: %v", msg.Err)
			return &a, nil
		}
		a.status = "History entry deleted"
		if a.historyView.IsActive() {
			cmds = append(cmds, a.loadHistory())
		}
		return &a, tea.Batch(cmds...)

	case ui.HistoryClearedMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("History clear failed: %v", msg.Err)
			return &a, nil
		}
		a.status = "History cleared"
		if a.historyView.IsActive() {
			cmds = append(cmds, a.loadHistory())
		}
		return &a, tea.Batch(cmds...)

	case ui.ConfigSavedMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("Config not saved: %v", msg.Err)
		}
		return &a, nil

	case ui.StatusMsg:
		a.status = msg.Text
		return &a, nil
	}

	// Modal overlays consume everything else while active. Non-key
	// messages must flow too: the file picker in particular completes a
	// selection via its own internal message.
	if a.confirmDialog.IsActive() {
		var cmd tea.Cmd
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
		return &a, cmd
	}
	if a.browserView.IsActive() {
		var cmd tea.Cmd
		a.browserView, cmd = a.browserView.Update(msg)
		return &a, cmd
	}
	if a.exportOverlay.IsActive() {
		var cmd tea.Cmd
		a.exportOverlay, cmd = a.exportOverlay.Update(msg)
		return &a, cmd
	}
	if a.themeOverlay.IsActive() {
		var cmd tea.Cmd
		a.themeOverlay, cmd = a.themeOverlay.Update(msg)
		return &a, cmd
	}

	if a.historyView.IsActive() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && !a.historyView.IsFiltering() {
			switch keyMsg.String() {
			case "ctrl+c":
				a.saveConfigNow()
				return &a, tea.Quit
			case "esc":
				a.historyView.Deactivate()
				return &a, nil
			case "enter":
				if entry := a.historyView.SelectedEntry(); entry != nil {
					a.formView.Apply(entry.Request())
					a.historyView.Deactivate()
					a.currentTab = TabSearch
					a.focusedPane = PaneForm
					a.status = "Search recalled from history"
				}
				return &a, nil
			case "d":
				if entry := a.historyView.SelectedEntry(); entry != nil {
					a.confirmDialog = confirm.New(a.styles, "Delete History Entry",
						fmt.Sprintf("Delete the search from %s? This cannot be undone.",
							entry.RunAt.Format("2006-01-02 15:04:05")),
						"delete-history-entry", entry.ID)
					a.confirmDialog.SetSize(a.width, a.height)
				}
				return &a, nil
			case "x":
				a.confirmDialog = confirm.New(a.styles, "Clear History",
					"Delete all recorded searches? This cannot be undone.",
					"clear-history", nil)
				a.confirmDialog.SetSize(a.width, a.height)
				return &a, nil
			}
		}
		var cmd tea.Cmd
		a.historyView, cmd = a.historyView.Update(msg)
		return &a, cmd
	}

	// Help overlay dismisses on any key
	if _, ok := msg.(tea.KeyMsg); ok && a.showHelp {
		a.showHelp = false
		return &a, nil
	}

	// Text-entry modes own the keyboard.
	if a.currentTab == TabSearch && a.focusedPane == PaneForm && a.formView.IsEditing() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			a.saveConfigNow()
			return &a, tea.Quit
		}
		var cmd tea.Cmd
		a.formView, cmd = a.formView.Update(msg)
		return &a, cmd
	}
	if a.currentTab == TabSearch && a.focusedPane == PaneResults && a.resultsView.IsFiltering() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			a.saveConfigNow()
			return &a, tea.Quit
		}
		var cmd tea.Cmd
		a.resultsView, cmd = a.resultsView.Update(msg)
		return &a, cmd
	}
	if a.currentTab == TabLog && a.logView.IsSearching() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			a.saveConfigNow()
			return &a, tea.Quit
		}
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		return &a, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			a.saveConfigNow()
			return &a, tea.Quit

		case "?":
			a.showHelp = true
			return &a, nil

		case "1":
			a.currentTab = TabSearch
			return &a, nil
		case "2":
			a.currentTab = TabLog
			return &a, nil
		case "3":
			a.currentTab = TabSummary
			return &a, nil

		case "tab", "shift+tab":
			if a.currentTab == TabSearch {
				if a.focusedPane == PaneForm {
					a.focusedPane = PaneResults
				} else {
					a.focusedPane = PaneForm
				}
			}
			return &a, nil

		case "s", "ctrl+r":
			if cmd := a.startSearch(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return &a, tea.Batch(cmds...)

		case "e":
			if len(a.rows) == 0 {
				a.confirmDialog = confirm.NewNotice(a.styles, confirm.SevInfo,
					"No Results", "No search results to save.")
				a.confirmDialog.SetSize(a.width, a.height)
				return &a, nil
			}
			a.exportOverlay = exportoverlay.New(a.styles,
				results.DefaultExportName(time.Now()), len(a.rows))
			a.exportOverlay.SetSize(a.width, a.height)
			return &a, a.exportOverlay.Init()

		case "b":
			a.browserView = browser.New(a.styles, a.formView.SearchPath())
			a.browserView.SetSize(a.width-4, a.contentHeight())
			return &a, a.browserView.Init()

		case "t":
			a.themeOverlay = themeoverlay.New(a.styles, a.theme.Name)
			a.themeOverlay.SetSize(a.width, a.height)
			return &a, nil

		case "p":
			a.historyView.Activate()
			return &a, a.loadHistory()

		case "esc":
			if a.currentTab == TabSearch && a.focusedPane == PaneResults {
				if a.resultsView.HasFilter() {
					var cmd tea.Cmd
					a.resultsView, cmd = a.resultsView.Update(msg)
					return &a, cmd
				}
				a.focusedPane = PaneForm
				return &a, nil
			}
		}
	}

	// Everything else goes to the views on the current tab. Keys reach
	// only the focused pane; other messages reach both.
	switch a.currentTab {
	case TabSearch:
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			switch a.focusedPane {
			case PaneForm:
				a.formView, cmd = a.formView.Update(msg)
			case PaneResults:
				a.resultsView, cmd = a.resultsView.Update(msg)
			}
			cmds = append(cmds, cmd)
		} else {
			var cmd tea.Cmd
			a.formView, cmd = a.formView.Update(msg)
			cmds = append(cmds, cmd)
			a.resultsView, cmd = a.resultsView.Update(msg)
			cmds = append(cmds, cmd)
		}
	case TabLog:
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		cmds = append(cmds, cmd)
	case TabSummary:
		// Static rendering, nothing to forward.
	}

	return &a, tea.Batch(cmds...)
}

// --- Sizing ---

func (a App) contentHeight() int {
	// header(1) + tabs(1) + status(1) = 3 lines of chrome,
	// pane border top(1) + bottom(1) = 2 more.
	h := a.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) propagateSize() {
	contentH := a.contentHeight()

	// 2-pane layout: each border = 2 chars horizontal, 2 panes = 4
	leftW := a.width * 45 / 100
	midW := a.width - leftW - 4
	if midW < 1 {
		midW = 1
	}

	a.formView.SetSize(leftW, contentH)
	a.resultsView.SetSize(midW, contentH)
	a.logView, _ = a.logView.Update(
		tea.WindowSizeMsg{Width: a.width - 4, Height: contentH})
	a.summaryView.SetSize(a.width-4, contentH)
	a.historyView.SetSize(a.width-4, contentH)

	a.confirmDialog.SetSize(a.width, a.height)
	if a.browserView.IsActive() {
		a.browserView.SetSize(a.width-4, contentH)
	}
	if a.exportOverlay.IsActive() {
		a.exportOverlay.SetSize(a.width, a.height)
	}
	if a.themeOverlay.IsActive() {
		a.themeOverlay.SetSize(a.width, a.height)
	}
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.styles, a.theme.Name, a.width)
	tabs := a.renderTabs()

	var content string
	switch a.currentTab {
	case TabSearch:
		content = a.renderSearchLayout()
	case TabLog:
		style := a.styles.PaneFocused.Width(a.width - 2).Height(a.contentHeight())
		content = style.Render(a.logView.View())
	case TabSummary:
		style := a.styles.PaneFocused.Width(a.width - 2).Height(a.contentHeight())
		content = style.Render(a.summaryView.View())
	}

	if a.showHelp {
		content = a.renderHelp()
	} else if a.confirmDialog.IsActive() {
		content = a.confirmDialog.View()
	} else if a.browserView.IsActive() {
		style := a.styles.PaneFocused.Width(a.width - 2).Height(a.contentHeight())
		content = style.Render(a.browserView.View())
	} else if a.exportOverlay.IsActive() {
		content = a.exportOverlay.View()
	} else if a.themeOverlay.IsActive() {
		content = a.themeOverlay.View()
	} else if a.historyView.IsActive() {
		style := a.styles.PaneFocused.Width(a.width - 2).Height(a.contentHeight())
		content = style.Render(a.historyView.View())
	}

	statusBar := RenderStatusBar(a.styles, a.stateIcon(), a.status, a.contextHints(), a.width)

	// Hard clamp: ensure content never overflows the terminal.
	// header(1) + tabs(1) + statusbar(1) = 3 lines of chrome.
	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + statusBar
}

func (a App) stateIcon() string {
	switch a.state {
	case stateSearching:
		return a.spin.View()
	case stateSucceeded:
		return a.styles.StateIcon("succeeded")
	case stateFailed:
		return a.styles.StateIcon("failed")
	}
	return a.styles.StateIcon("idle")
}

func (a App) renderTabs() string {
	labels := []string{"[1] Search", "[2] Log Output", "[3] Summary"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if Tab(i) == a.currentTab {
			rendered[i] = a.styles.TabActive.Render(label)
		} else {
			rendered[i] = a.styles.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (a App) renderSearchLayout() string {
	contentH := a.contentHeight()

	leftW := a.width * 45 / 100
	midW := a.width - leftW - 4
	if midW < 1 {
		midW = 1
	}

	leftStyle := a.styles.Pane.Width(leftW).Height(contentH)
	rightStyle := a.styles.Pane.Width(midW).Height(contentH)
	if a.focusedPane == PaneForm {
		leftStyle = a.styles.PaneFocused.Width(leftW).Height(contentH)
	} else {
		rightStyle = a.styles.PaneFocused.Width(midW).Height(contentH)
	}

	left := leftStyle.Render(a.formView.View())
	right := rightStyle.Render(a.resultsView.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a App) contextHints() string {
	if a.showHelp {
		return "any key:close"
	}
	if a.confirmDialog.IsActive() {
		return "y/n:choose  enter:confirm  esc:cancel"
	}
	if a.browserView.IsActive() {
		return "enter:open dir  s:use dir  esc:cancel"
	}
	if a.exportOverlay.IsActive() {
		return "enter:save  esc:cancel"
	}
	if a.themeOverlay.IsActive() {
		return "j/k:move  enter:apply  esc:cancel"
	}
	if a.historyView.IsActive() {
		if a.historyView.IsFiltering() {
			return "enter:apply  esc:cancel"
		}
		return "enter:recall  d:delete  x:clear all  f:filter  esc:close"
	}

	switch a.currentTab {
	case TabSearch:
		if a.focusedPane == PaneForm {
			if a.formView.IsEditing() {
				return "tab:next field  esc:done editing"
			}
			return "enter:edit  j/k:move  space:toggle  s:search  b:browse  ?:help"
		}
		if a.resultsView.IsFiltering() {
			return "enter:apply  esc:cancel"
		}
		return "j/k:navigate  /:filter  e:save  s:search  tab:form  ?:help"
	case TabLog:
		if a.logView.IsSearching() {
			return "enter:confirm  esc:cancel"
		}
		return "/:search  n/N:match  j/k:scroll  g/G:top/bot  ?:help"
	case TabSummary:
		return "1-3:switch tab  s:search  e:save  ?:help"
	}

	return "?:help  q:quit"
}

func (a App) renderHelp() string {
	contentH := a.contentHeight()

	bold := lipgloss.NewStyle().Bold(true)
	key := lipgloss.NewStyle().Foreground(a.styles.Theme.Primary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(a.styles.Theme.TextSecondary)

	row := func(k, d string) string {
		return "  " + key.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1-3", "Switch tab: Search, Log Output, Summary"))
	b.WriteString(row("tab", "Switch pane (form / results)"))
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("enter", "Edit field / select"))
	b.WriteString(row("esc", "Leave edit mode / back"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Search") + "\n\n")
	b.WriteString(row("s / ctrl+r", "Start search"))
	b.WriteString(row("b", "Browse for search directory"))
	b.WriteString(row("space", "Toggle case-sensitive / verbose"))

	b.WriteString("\n" + bold.Render("  Results") + "\n\n")
	b.WriteString(row("/", "Filter rows (substring, or /regex)"))
	b.WriteString(row("e", "Save results to a file"))

	b.WriteString("\n" + bold.Render("  Log Output") + "\n\n")
	b.WriteString(row("/", "Search in log"))
	b.WriteString(row("n / N", "Next / previous match"))
	b.WriteString(row("g / G", "Go to top / bottom"))

	b.WriteString("\n" + bold.Render("  Themes & History") + "\n\n")
	b.WriteString(row("t", "Choose theme"))
	b.WriteString(row("p", "Show search history"))
	b.WriteString(row("d", "Delete entry (in history)"))
	b.WriteString(row("x", "Clear history (in history)"))

	b.WriteString("\n" + a.styles.Muted.Render("  Press any key to close") + "\n")

	style := a.styles.PaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
