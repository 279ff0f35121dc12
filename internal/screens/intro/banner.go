package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ██╗███████╗███╗   ██╗████████╗ █████╗
 ██╔═══██╗██╔══██╗██║██╔════╝████╗  ██║╚══██╔══╝██╔══██╗
 ██║   ██║██████╔╝██║█████╗  ██╔██╗ ██║   ██║   ███████║
 ██║   ██║██╔══██╗██║██╔══╝  ██║╚██╗██║   ██║   ██╔══██║
 ╚██████╔╝██║  ██║██║███████╗██║ ╚████║   ██║   ██║  ██║
  ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "O R I E N T A"

// bannerMinWidth is the narrowest width the block banner fits in.
const bannerMinWidth = 58

// RenderBanner returns the ORIENTA banner in the primary color, falling back
// to spaced capitals on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
