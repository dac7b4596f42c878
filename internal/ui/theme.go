package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Theme is a named color palette. The palettes mirror the ones the
// desktop edition of WordSearch ships with.
type Theme struct {
	Name           string
	Primary        lipgloss.Color
	PrimaryHover   lipgloss.Color
	PrimaryPressed lipgloss.Color
	Secondary      lipgloss.Color
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceAlt     lipgloss.Color
	Text           lipgloss.Color
	TextSecondary  lipgloss.Color
	Border         lipgloss.Color
	BorderFocus    lipgloss.Color
}

var themes = []Theme{
	{
		Name:           "Modern Blue",
		Primary:        lipgloss.Color("#4A90E2"),
		PrimaryHover:   lipgloss.Color("#357ABD"),
		PrimaryPressed: lipgloss.Color("#2968A3"),
		Secondary:      lipgloss.Color("#E8F4FD"),
		Background:     lipgloss.Color("#F5F7FA"),
		Surface:        lipgloss.Color("#FFFFFF"),
		SurfaceAlt:     lipgloss.Color("#F9FAFB"),
		Text:           lipgloss.Color("#2D3748"),
		TextSecondary:  lipgloss.Color("#718096"),
		Border:         lipgloss.Color("#E2E8F0"),
		BorderFocus:    lipgloss.Color("#4A90E2"),
	},
	{
		Name:           "Dark Mode",
		Primary:        lipgloss.Color("#BB86FC"),
		PrimaryHover:   lipgloss.Color("#985EFF"),
		PrimaryPressed: lipgloss.Color("#7C3AED"),
		Secondary:      lipgloss.Color("#2D1B69"),
		Background:     lipgloss.Color("#121212"),
		Surface:        lipgloss.Color("#1E1E1E"),
		SurfaceAlt:     lipgloss.Color("#2A2A2A"),
		Text:           lipgloss.Color("#E0E0E0"),
		TextSecondary:  lipgloss.Color("#B0B0B0"),
		Border:         lipgloss.Color("#404040"),
		BorderFocus:    lipgloss.Color("#BB86FC"),
	},
	{
		Name:           "Green Nature",
		Primary:        lipgloss.Color("#22C55E"),
		PrimaryHover:   lipgloss.Color("#16A34A"),
		PrimaryPressed: lipgloss.Color("#15803D"),
		Secondary:      lipgloss.Color("#DCFCE7"),
		Background:     lipgloss.Color("#F0FDF4"),
		Surface:        lipgloss.Color("#FFFFFF"),
		SurfaceAlt:     lipgloss.Color("#F7FEF8"),
		Text:           lipgloss.Color("#1F2937"),
		TextSecondary:  lipgloss.Color("#6B7280"),
		Border:         lipgloss.Color("#D1FAE5"),
		BorderFocus:    lipgloss.Color("#22C55E"),
	},
	{
		Name:           "Orange Sunset",
		Primary:        lipgloss.Color("#F97316"),
		PrimaryHover:   lipgloss.Color("#EA580C"),
		PrimaryPressed: lipgloss.Color("#C2410C"),
		Secondary:      lipgloss.Color("#FED7AA"),
		Background:     lipgloss.Color("#FFF7ED"),
		Surface:        lipgloss.Color("#FFFFFF"),
		SurfaceAlt:     lipgloss.Color("#FEF3E8"),
		Text:           lipgloss.Color("#1F2937"),
		TextSecondary:  lipgloss.Color("#6B7280"),
		Border:         lipgloss.Color("#FDBA74"),
		BorderFocus:    lipgloss.Color("#F97316"),
	},
	{
		Name:           "Purple Pro",
		Primary:        lipgloss.Color("#8B5CF6"),
		PrimaryHover:   lipgloss.Color("#7C3AED"),
		PrimaryPressed: lipgloss.Color("#6D28D9"),
		Secondary:      lipgloss.Color("#EDE9FE"),
		Background:     lipgloss.Color("#FAF9FF"),
		Surface:        lipgloss.Color("#FFFFFF"),
		SurfaceAlt:     lipgloss.Color("#F5F3FF"),
		Text:           lipgloss.Color("#1F2937"),
		TextSecondary:  lipgloss.Color("#6B7280"),
		Border:         lipgloss.Color("#D8B4FE"),
		BorderFocus:    lipgloss.Color("#8B5CF6"),
	},
	{
		Name:           "Red Power",
		Primary:        lipgloss.Color("#EF4444"),
		PrimaryHover:   lipgloss.Color("#DC2626"),
		PrimaryPressed: lipgloss.Color("#B91C1C"),
		Secondary:      lipgloss.Color("#FEE2E2"),
		Background:     lipgloss.Color("#FEF2F2"),
		Surface:        lipgloss.Color("#FFFFFF"),
		SurfaceAlt:     lipgloss.Color("#FEF8F8"),
		Text:           lipgloss.Color("#1F2937"),
		TextSecondary:  lipgloss.Color("#6B7280"),
		Border:         lipgloss.Color("#FECACA"),
		BorderFocus:    lipgloss.Color("#EF4444"),
	},
	{
		Name:           "Vampire",
		Primary:        lipgloss.Color("#DC143C"),
		PrimaryHover:   lipgloss.Color("#B91C3C"),
		PrimaryPressed: lipgloss.Color("#991B3C"),
		Secondary:      lipgloss.Color("#4A0E0E"),
		Background:     lipgloss.Color("#0D0D0D"),
		Surface:        lipgloss.Color("#1A1A1A"),
		SurfaceAlt:     lipgloss.Color("#2D1B1B"),
		Text:           lipgloss.Color("#F5F5F5"),
		TextSecondary:  lipgloss.Color("#CCCCCC"),
		Border:         lipgloss.Color("#444444"),
		BorderFocus:    lipgloss.Color("#DC143C"),
	},
}

// Default is the theme used when no preference is stored.
func Default() Theme {
	t, _ := ByName("Dark Mode")
	return t
}

func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ByName looks a theme up case-insensitively.
func ByName(name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// Suggest returns the closest known theme name for a near miss, or ""
// when nothing comes close.
func Suggest(name string) string {
	lower := strings.ToLower(name)
	best := ""
	bestDist := 4
	for _, t := range themes {
		candidate := strings.ToLower(t.Name)
		if strings.HasPrefix(candidate, lower) {
			return t.Name
		}
		d := levenshtein.DistanceForStrings([]rune(lower), []rune(candidate), levenshtein.DefaultOptions)
		if d < bestDist {
			bestDist = d
			best = t.Name
		}
	}
	return best
}
