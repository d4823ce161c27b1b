package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

// MascotVariant is the mood of the owl tutor on the dashboard.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // something unlocked this session
	MascotAlert                     // a lesson is waiting to be finished
)

type mascotLook struct {
	art   string
	color color.Color
}

var mascotLooks = map[MascotVariant]mascotLook{
	MascotIdle: {color: theme.Primary, art: ` ,___,
 (o,o)
 /)  )
--"-"--`},
	MascotCelebrating: {color: theme.ArcadeYellow, art: `\,___,/
 (*,*)
 /)  )
--"-"--`},
	MascotAlert: {color: theme.Accent, art: ` ,___,
 (O,O) !
 /)  )
--"-"--`},
}

// RenderMascot draws the owl for v with say in a speech bubble beside it.
// An empty say draws the owl alone.
func RenderMascot(v MascotVariant, say string) string {
	look, ok := mascotLooks[v]
	if !ok {
		look = mascotLooks[MascotIdle]
	}
	owl := lipgloss.NewStyle().Foreground(look.color).Render(look.art)
	if say == "" {
		return owl
	}

	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(look.color).
		Foreground(theme.Text).
		Padding(0, 1).
		MaxWidth(40).
		Render(say)
	return lipgloss.JoinHorizontal(lipgloss.Center, owl, "  ", bubble)
}
