package render

import "github.com/charmbracelet/lipgloss"

// HighlightFunc decides the foreground color for one data cell. It receives
// the canonical column title and the raw value and returns a color name and
// whether to highlight at all. Highlighting never affects width or alignment.
type HighlightFunc func(title, value string) (string, bool)

// ANSI bright palette, keyed by the color names highlight policies use.
var cellColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("9"),
	"green":   lipgloss.Color("10"),
	"yellow":  lipgloss.Color("11"),
	"blue":    lipgloss.Color("12"),
	"magenta": lipgloss.Color("13"),
	"cyan":    lipgloss.Color("14"),
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// paint wraps a padded cell in a foreground color. Unknown color names leave
// the cell unstyled rather than failing the render.
func paint(cell, color string) string {
	c, ok := cellColors[color]
	if !ok {
		return cell
	}
	return lipgloss.NewStyle().Foreground(c).Render(cell)
}
