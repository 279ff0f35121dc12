package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

const compassIdle = `   N
 ╭───╮
W│ ◇ │E
 ╰───╯
   S`

// Needle settles once the user has a result.
const compassPointing = `   N
 ╭───╮
W│ ↗ │E
 ╰───╯
   S`

// renderCompass returns the compass art centered at content width.
func renderCompass(pointing bool, cw int) string {
	art := compassIdle
	fg := theme.TextDim
	if pointing {
		art = compassPointing
		fg = theme.Primary
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(art)
}
