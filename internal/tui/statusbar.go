package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

func RenderStatusBar(st ui.Styles, icon, status, hints string, width int) string {
	left := " " + icon + " " + st.StatusBar.Render(status)

	help := st.StatusBar.Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(st.Theme.Surface).
		Width(width).
		Render(left + padding + help)
}
