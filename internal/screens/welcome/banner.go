package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗██████╗ ███████╗ ██████╗ ███╗   ██╗ █████╗
 ██╔══██╗██╔════╝██╔══██╗██╔════╝██╔═══██╗████╗  ██║██╔══██╗
 ██████╔╝█████╗  ██████╔╝███████╗██║   ██║██╔██╗ ██║███████║
 ██╔═══╝ ██╔══╝  ██╔══██╗╚════██║██║   ██║██║╚██╗██║██╔══██║
 ██║     ███████╗██║  ██║███████║╚██████╔╝██║ ╚████║██║  ██║
 ╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝`

const bannerCompact = "P E R S O N A"

// RenderBanner returns the banner in the primary colour, or a one-line
// version for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
