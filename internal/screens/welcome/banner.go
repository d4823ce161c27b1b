package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

// BannerArt is the block-letter EDUSMART title.
const BannerArt = ` ███████╗██████╗ ██╗   ██╗███████╗███╗   ███╗ █████╗ ██████╗ ████████╗
 ██╔════╝██╔══██╗██║   ██║██╔════╝████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝
 █████╗  ██║  ██║██║   ██║███████╗██╔████╔██║███████║██████╔╝   ██║
 ██╔══╝  ██║  ██║██║   ██║╚════██║██║╚██╔╝██║██╔══██║██╔══██╗   ██║
 ███████╗██████╔╝╚██████╔╝███████║██║ ╚═╝ ██║██║  ██║██║  ██║   ██║
 ╚══════╝╚═════╝  ╚═════╝ ╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝`

// BannerCompact is the one-line title for narrow terminals.
const BannerCompact = "E D U S M A R T"

// BannerWidth is the column count BannerArt needs.
const BannerWidth = 72

// RenderBanner returns the EDUSMART banner styled in the primary color.
// Uses a compact fallback for terminals narrower than BannerWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
