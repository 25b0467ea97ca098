// ABOUTME: Horizontal share bars for category spending breakdowns
// ABOUTME: Renders a colored filled bar proportional to a category's share

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a filled bar for percent of width, colored with the
// category's own color when it parses, gray otherwise
func ShareBar(percent float64, width int, color string) string {
	if width <= 0 {
		width = 20
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	fill := lipgloss.Color("#6B7280")
	if strings.HasPrefix(color, "#") {
		fill = lipgloss.Color(color)
	}

	filledStr := strings.Repeat("█", filled)
	emptyStr := strings.Repeat("░", width-filled)

	return lipgloss.NewStyle().Foreground(fill).Render(filledStr) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(emptyStr)
}
