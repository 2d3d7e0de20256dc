package tui

import (
	"github.com/charmbracelet/lipgloss"

	"taskman/internal/domain"
)

// Palette is the color set for one theme.
type Palette struct {
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Error      lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color

	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}

// LightPalette is the default theme.
var LightPalette = Palette{
	Accent:     lipgloss.Color("#4F46E5"), // Indigo
	Text:       lipgloss.Color("#111827"), // Near black
	Subtle:     lipgloss.Color("#6B7280"), // Gray
	Error:      lipgloss.Color("#DC2626"), // Red
	Background: lipgloss.Color("#F3F4F6"), // Light gray
	Border:     lipgloss.Color("#D1D5DB"),

	Todo:       lipgloss.Color("#2563EB"), // Blue
	InProgress: lipgloss.Color("#D97706"), // Amber
	Done:       lipgloss.Color("#059669"), // Green
}

// DarkPalette is used when dark mode is enabled.
var DarkPalette = Palette{
	Accent:     lipgloss.Color("#818CF8"),
	Text:       lipgloss.Color("#F9FAFB"),
	Subtle:     lipgloss.Color("#9CA3AF"),
	Error:      lipgloss.Color("#F87171"),
	Background: lipgloss.Color("#111827"),
	Border:     lipgloss.Color("#374151"),

	Todo:       lipgloss.Color("#60A5FA"),
	InProgress: lipgloss.Color("#FBBF24"),
	Done:       lipgloss.Color("#34D399"),
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	Palette Palette

	App lipgloss.Style

	HeaderTitle lipgloss.Style
	HeaderHint  lipgloss.Style

	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style
	FormLabel    lipgloss.Style

	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style

	Pending lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style

	StatusBadge map[domain.Status]lipgloss.Style

	Confirm lipgloss.Style
}

// NewStyles builds the style set for the given theme.
func NewStyles(dark bool) Styles {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	badge := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().Padding(1, 2),

		HeaderTitle: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		HeaderHint:  lipgloss.NewStyle().Foreground(p.Subtle),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 3),
		CardTitle:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		CardSubtitle: lipgloss.NewStyle().Foreground(p.Subtle),
		FormLabel:    lipgloss.NewStyle().Foreground(p.Subtle),

		FilterActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Accent).
			Padding(0, 1),
		FilterInactive: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Padding(0, 1),

		Pending: lipgloss.NewStyle().Foreground(p.Subtle).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(p.Error),
		Help:    lipgloss.NewStyle().Foreground(p.Subtle),

		StatusBadge: map[domain.Status]lipgloss.Style{
			domain.StatusTodo:       badge(p.Todo),
			domain.StatusInProgress: badge(p.InProgress),
			domain.StatusDone:       badge(p.Done),
		},

		Confirm: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(1, 3),
	}
}
