package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roscourse/internal/ui/theme"
)

// Card wraps content in a rounded-border card of the given outer width.
// The selected card gets the primary border colour.
func Card(content string, width int, selected bool) string {
	style := theme.Card
	if selected {
		style = theme.SelectedCard
	}
	return style.Width(width).Render(content)
}

// Centered places content in the middle of a width-wide column.
func Centered(content string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
