package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the pager views.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("212")
	ColorCritical  = lipgloss.Color("196")
)

// Arrow glyphs for the previous/next controls.
const (
	IconPrevious = "‹"
	IconNext     = "›"
)

//nolint:gochecknoglobals // Read-only style definitions.
var (
	titleStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	currentStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Underline(true)
	pageStyle     = lipgloss.NewStyle().Foreground(ColorValue)
	disabledStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	labelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	errorStyle    = lipgloss.NewStyle().Foreground(ColorCritical)
)
