package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/filefy/wordsearch-tui/internal/ui"
)

func RenderHeader(st ui.Styles, themeName string, width int) string {
	left := st.Header.Render("WordSearch | Advanced File & Content Search")
	right := st.HeaderNote.Render("theme: " + themeName)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().
		Background(st.Theme.Primary).
		Width(gap).
		Render("")

	return left + padding + right
}
