package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yucatanweather/app/internal/domain/collections"
)

// Theme holds the palette and pre-built styles for one colour scheme.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	SectionStyle  lipgloss.Style
	ChipStyle     lipgloss.Style
	ActiveChip    lipgloss.Style
	CursorStyle   lipgloss.Style
	PanelStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	MutedStyle    lipgloss.Style
	MapStyle      lipgloss.Style
}

// LightTheme is the default scheme.
func LightTheme() Theme {
	return buildTheme(Theme{
		Primary: lipgloss.Color("#0E7490"),
		Accent:  lipgloss.Color("#D97706"),
		Danger:  lipgloss.Color("#DC2626"),
		Success: lipgloss.Color("#059669"),
		Muted:   lipgloss.Color("#6B7280"),
		Text:    lipgloss.Color("#111827"),
		Border:  lipgloss.Color("#D1D5DB"),
	})
}

// DarkTheme is the alternate scheme.
func DarkTheme() Theme {
	return buildTheme(Theme{
		Primary: lipgloss.Color("#22D3EE"),
		Accent:  lipgloss.Color("#F59E0B"),
		Danger:  lipgloss.Color("#EF4444"),
		Success: lipgloss.Color("#10B981"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Text:    lipgloss.Color("#E5E7EB"),
		Border:  lipgloss.Color("#374151"),
	})
}

// ThemeFor maps the persisted preference to a theme.
func ThemeFor(t collections.Theme) Theme {
	if t == collections.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

func buildTheme(t Theme) Theme {
	t.TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.SubtitleStyle = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	t.SectionStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginTop(1)
	t.ChipStyle = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	t.ActiveChip = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(t.Primary).Padding(0, 1).Bold(true)
	t.CursorStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.PanelStyle = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Danger).Bold(true)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	t.MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	t.MapStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	return t
}
