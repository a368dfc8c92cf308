package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screen"
	"github.com/abhisek/dungeonquiz/internal/session"
	"github.com/abhisek/dungeonquiz/internal/ui/components"
	"github.com/abhisek/dungeonquiz/internal/ui/layout"
	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished run.
type SummaryScreen struct {
	summary   session.Summary
	playAgain func() screen.Screen
	menu      components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. playAgain builds a fresh run over the same
// pack; when nil the option is disabled.
func New(sum session.Summary, playAgain func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{summary: sum, playAgain: playAgain}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Play again", Action: s.replay, Disabled: playAgain == nil},
		{Label: "Back to dungeons", Action: back},
	})
	return s
}

func (s *SummaryScreen) replay() tea.Cmd {
	next := s.playAgain()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func back() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quest Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Dungeons"},
	}
}

// Summary returns the result being shown.
func (s *SummaryScreen) Summary() session.Summary {
	return s.summary
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cab := components.Cabinet{Width: width, Height: height}

	var b strings.Builder

	b.WriteString(cab.Center("Quest complete!",
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)))
	b.WriteString("\n")

	dungeon := sum.DungeonName
	if sum.DungeonIcon != "" {
		dungeon = sum.DungeonIcon + " " + dungeon
	}
	b.WriteString(cab.Center(fmt.Sprintf("%s · %s", dungeon, sum.Title), theme.Subtitle))
	b.WriteString("\n\n")

	b.WriteString(cab.Center(
		fmt.Sprintf("Score: %s  (%.0f%%)", sum.Score, sum.Accuracy*100),
		lipgloss.NewStyle().Foreground(accuracyColor(sum.Accuracy)).Bold(true)))
	b.WriteString("\n\n")

	b.WriteString(cab.Card(renderSection("Parts earned", sum.PartLines)))
	b.WriteString("\n")
	b.WriteString(cab.Card(renderSection("Houses", sum.HouseLines)))
	b.WriteString("\n\n")

	b.WriteString(cab.Center(s.menu.View(), lipgloss.NewStyle()))

	return cab.Render(b.String())
}

func renderSection(title string, lines []string) string {
	head := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(title)
	return head + "\n" + theme.Body.Render(strings.Join(lines, "\n"))
}

func accuracyColor(acc float64) color.Color {
	switch {
	case acc >= 0.8:
		return theme.Success
	case acc >= 0.5:
		return theme.ArcadeYellow
	default:
		return theme.Accent
	}
}
