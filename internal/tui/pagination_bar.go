package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/pagenav/internal/pagerange"
)

// Labels of the previous/next controls.
const (
	prevLabel = IconPrevious + " Prev"
	nextLabel = "Next " + IconNext
)

// RenderPlainBar renders a layout without styling, marking the current page as [n]
// and disabled previous/next controls with parentheses.
//
//	(‹ Prev) [1] 2 3 4 … 20 Next ›
func RenderPlainBar(layout pagerange.Layout) string {
	return renderBar(layout, func(s string, _ lipgloss.Style) string { return s }, true)
}

// RenderPaginationBar renders a layout with lipgloss styles for the terminal pager.
func RenderPaginationBar(layout pagerange.Layout) string {
	return renderBar(layout, func(s string, st lipgloss.Style) string { return st.Render(s) }, false)
}

func renderBar(layout pagerange.Layout, paint func(string, lipgloss.Style) string, plain bool) string {
	parts := make([]string, 0, len(layout.Tokens)+2) //nolint:mnd // previous and next controls

	parts = append(parts, control(prevLabel, layout.Previous.Enabled, paint, plain))
	for _, b := range layout.Tokens {
		switch {
		case b.Current && plain:
			parts = append(parts, "["+b.Label()+"]")
		case b.Current:
			parts = append(parts, paint(b.Label(), currentStyle))
		case b.Disabled:
			parts = append(parts, paint(b.Label(), disabledStyle))
		default:
			parts = append(parts, paint(b.Label(), pageStyle))
		}
	}
	parts = append(parts, control(nextLabel, layout.Next.Enabled, paint, plain))

	return strings.Join(parts, " ")
}

func control(label string, enabled bool, paint func(string, lipgloss.Style) string, plain bool) string {
	if enabled {
		return paint(label, pageStyle)
	}
	if plain {
		return "(" + label + ")"
	}
	return paint(label, disabledStyle)
}
