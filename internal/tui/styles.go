package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

type palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Chip       lipgloss.Color
}

var palettes = map[theme.Appearance]palette{
	theme.AppearanceLight: {
		Foreground: lipgloss.Color("#1F2937"),
		Background: lipgloss.Color("#F9FAFB"),
		Accent:     lipgloss.Color("#2563EB"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Chip:       lipgloss.Color("#DBEAFE"),
	},
	theme.AppearanceDark: {
		Foreground: lipgloss.Color("#E5E7EB"),
		Background: lipgloss.Color("#0F172A"),
		Accent:     lipgloss.Color("#60A5FA"),
		Muted:      lipgloss.Color("#4B5563"),
		Chip:       lipgloss.Color("#1E3A8A"),
	},
}

type styles struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Hidden    lipgloss.Style
	Chip      lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Footer    lipgloss.Style
}

func newStyles(a theme.Appearance) styles {
	p, ok := palettes[a]
	if !ok {
		p = palettes[theme.AppearanceDark]
	}

	base := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
	return styles{
		Base:      base,
		Title:     base.Foreground(p.Accent).Bold(true),
		Heading:   base.Bold(true),
		Body:      base,
		Muted:     base.Foreground(p.Muted),
		Hidden:    base.Foreground(p.Muted).Faint(true),
		Chip:      lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Chip).Padding(0, 1),
		NavItem:   base.Foreground(p.Muted).Padding(0, 1),
		NavActive: base.Foreground(p.Background).Background(p.Accent).Bold(true).Padding(0, 1),
		Footer:    base.Foreground(p.Muted),
	}
}
