package placeholder

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screen"
	"github.com/abhisek/dungeonquiz/internal/ui/layout"
	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

// PlaceholderScreen is shown for a dungeon with no pack at the chosen stage.
type PlaceholderScreen struct {
	dungeon catalog.Dungeon
	stage   catalog.Stage
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen for a locked dungeon.
func New(d catalog.Dungeon, stage catalog.Stage) *PlaceholderScreen {
	return &PlaceholderScreen{dungeon: d, stage: stage}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
	}
}

func (p *PlaceholderScreen) View(width, height int) string {
	body := fmt.Sprintf("%s %s\n\n🚧 Under construction 🚧\n\nNo questions for %s yet.\nPick another dungeon!",
		p.dungeon.Icon, p.dungeon.Name, p.stage)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(body)
}

func (p *PlaceholderScreen) Title() string {
	return p.dungeon.Name
}
