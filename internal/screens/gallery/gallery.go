package gallery

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/ui/components"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

// rowHeight is the number of lines one achievement takes.
const rowHeight = 3

// GalleryScreen displays every achievement grouped by rarity tabs.
type GalleryScreen struct {
	engine       *gamification.Engine
	all          []achievements.Status
	selectedTab  int // 0 = all, then AllRarities order
	scrollOffset int
}

var _ screen.Screen = (*GalleryScreen)(nil)
var _ screen.KeyHintProvider = (*GalleryScreen)(nil)

// New creates a new GalleryScreen.
func New(engine *gamification.Engine) *GalleryScreen {
	s := &GalleryScreen{engine: engine}
	s.refresh()
	return s
}

func (s *GalleryScreen) refresh() {
	s.all = s.engine.Achievements()
}

func (s *GalleryScreen) Init() tea.Cmd {
	return nil
}

func (s *GalleryScreen) Title() string {
	return "Achievements"
}

func (s *GalleryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch rarity"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func tabCount() int {
	return len(achievements.AllRarities()) + 1
}

func (s *GalleryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ResumedMsg, gamification.Event:
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.selectedTab = (s.selectedTab + 1) % tabCount()
			s.scrollOffset = 0
		case "shift+tab", "left", "h":
			s.selectedTab = (s.selectedTab - 1 + tabCount()) % tabCount()
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.Filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

// Filtered returns the achievements in the selected tab.
func (s *GalleryScreen) Filtered() []achievements.Status {
	if s.selectedTab == 0 {
		return s.all
	}
	r := achievements.AllRarities()[s.selectedTab-1]
	var out []achievements.Status
	for _, a := range s.all {
		if a.Rarity == r {
			out = append(out, a)
		}
	}
	return out
}

func (s *GalleryScreen) countUnlocked(r achievements.Rarity) (unlocked, total int) {
	for _, a := range s.all {
		if r != "" && a.Rarity != r {
			continue
		}
		total++
		if a.Unlocked {
			unlocked++
		}
	}
	return unlocked, total
}

func (s *GalleryScreen) View(width, height int) string {
	var b strings.Builder

	unlocked, total := s.countUnlocked("")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked: %d of %d\n", unlocked, total)))
	b.WriteString("\n")

	tabs := []string{s.renderTab(0, "All", "", theme.Primary)}
	for i, r := range achievements.AllRarities() {
		tabs = append(tabs, s.renderTab(i+1, r.DisplayName(), r, theme.RarityColor(string(r))))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 60))))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.Filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("No achievements of this rarity."))
		return b.String()
	}

	used := lipgloss.Height(b.String())
	maxVisible := max(1, (height-used)/rowHeight)
	end := min(s.scrollOffset+maxVisible, len(filtered))

	cw := min(width-8, 60)
	for _, a := range filtered[s.scrollOffset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderRow(a, cw)))
		b.WriteString("\n")
	}

	if len(filtered) > maxVisible {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d-%d of %d", s.scrollOffset+1, end, len(filtered))))
	}

	return b.String()
}

func (s *GalleryScreen) renderTab(i int, name string, r achievements.Rarity, c color.Color) string {
	unlocked, total := s.countUnlocked(r)
	label := fmt.Sprintf("%s %d/%d", name, unlocked, total)
	if i == s.selectedTab {
		return lipgloss.NewStyle().Foreground(c).Bold(true).Underline(true).Render(label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}

func renderRow(a achievements.Status, width int) string {
	rc := theme.RarityColor(string(a.Rarity))
	icon := a.Icon
	if icon == "" {
		icon = "★"
	}

	var head, detail string
	if a.Unlocked {
		head = lipgloss.NewStyle().Foreground(rc).Bold(true).
			Render(fmt.Sprintf("%s %s", icon, a.Name))
		detail = lipgloss.NewStyle().Foreground(theme.Success).
			Render(fmt.Sprintf("✓ Unlocked %s", a.UnlockedAt.Format("Jan 2, 2006")))
	} else {
		head = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("🔒 %s", a.Name))
		detail = components.NewBar(float64(a.Progress)/100, width-4).Fill(rc).View()
	}

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s · +%d XP", a.Rarity.DisplayName(), a.Category.DisplayName(), a.XPReward))

	desc := lipgloss.NewStyle().Foreground(theme.Text).Render(a.Description)
	return lipgloss.NewStyle().Width(width).Render(head + "  " + meta + "\n" + desc + "\n" + detail)
}
