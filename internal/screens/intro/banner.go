package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vrfit/internal/ui/theme"
)

const bannerArt = `██╗   ██╗██████╗     ███████╗██╗████████╗
██║   ██║██╔══██╗    ██╔════╝██║╚══██╔══╝
██║   ██║██████╔╝    █████╗  ██║   ██║
╚██╗ ██╔╝██╔══██╗    ██╔══╝  ██║   ██║
 ╚████╔╝ ██║  ██║    ██║     ██║   ██║
  ╚═══╝  ╚═╝  ╚═╝    ╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "V R   F I T"

// bannerMinWidth is the narrowest width that fits bannerArt.
const bannerMinWidth = 46

// RenderBanner returns the VR FIT banner in the primary color, falling back
// to a one-line version on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
