package output

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme renders with.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
}

var palettes = map[string]Palette{
	"light": {
		Foreground: lipgloss.Color("#212121"),
		Muted:      lipgloss.Color("#424242"),
		Accent:     lipgloss.Color("#1976d2"),
		Success:    lipgloss.Color("#2e7d32"),
		Warning:    lipgloss.Color("#f57c00"),
		Error:      lipgloss.Color("#d32f2f"),
		Info:       lipgloss.Color("#0288d1"),
	},
	"dark": {
		Foreground: lipgloss.Color("#e0e0e0"),
		Muted:      lipgloss.Color("#b0b0b0"),
		Accent:     lipgloss.Color("#1e88e5"),
		Success:    lipgloss.Color("#43a047"),
		Warning:    lipgloss.Color("#fb8c00"),
		Error:      lipgloss.Color("#e53935"),
		Info:       lipgloss.Color("#29b6f6"),
	},
}

// PaletteFor returns the palette of theme, or the light palette for an
// unknown theme.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["light"]
}

type styles struct {
	text    lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	box     lipgloss.Style
	errBox  lipgloss.Style
	header  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, p Palette) styles {
	return styles{
		text:    r.NewStyle().Foreground(p.Foreground),
		muted:   r.NewStyle().Foreground(p.Muted),
		title:   r.NewStyle().Foreground(p.Accent).Bold(true),
		success: r.NewStyle().Foreground(p.Success).Bold(true),
		warning: r.NewStyle().Foreground(p.Warning).Bold(true),
		err:     r.NewStyle().Foreground(p.Error).Bold(true),
		info:    r.NewStyle().Foreground(p.Info),
		box: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Padding(0, 2),
		errBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),
		header: r.NewStyle().Foreground(p.Accent).Bold(true).Underline(true),
	}
}
