package ui

import "github.com/charmbracelet/lipgloss"

// Status colors stay fixed across themes.
var (
	ColorSuccess = lipgloss.Color("#10B981")
	ColorFailure = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorInfo    = lipgloss.Color("#3B82F6")
)

// Styles holds every style the views render with, derived from the
// active theme so a theme switch rebuilds them in one place.
type Styles struct {
	Theme Theme

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	Header      lipgloss.Style
	HeaderNote  lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
	Box         lipgloss.Style

	Title    lipgloss.Style
	Label    lipgloss.Style
	Cursor   lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Match        lipgloss.Style
	MatchCurrent lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 1),
		HeaderNote: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.PrimaryHover).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(t.TextSecondary),
		StatusBar: lipgloss.NewStyle().
			Foreground(t.TextSecondary),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Label: lipgloss.NewStyle().
			Foreground(t.TextSecondary),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary),
		Muted: lipgloss.NewStyle().
			Foreground(t.TextSecondary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(t.PrimaryPressed),

		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Failure: lipgloss.NewStyle().Foreground(ColorFailure),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorInfo),

		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F")),
		MatchCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1F2937")).
			Background(lipgloss.Color("#FCD34D")),
	}
}

func (s Styles) StateIcon(state string) string {
	switch state {
	case "searching":
		return s.Info.Render("*")
	case "succeeded":
		return s.Success.Render("V")
	case "failed":
		return s.Failure.Render("X")
	default:
		return s.Muted.Render("o")
	}
}
