package dungeons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/config"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screen"
	"github.com/abhisek/dungeonquiz/internal/screens/placeholder"
	sessionscreen "github.com/abhisek/dungeonquiz/internal/screens/session"
	"github.com/abhisek/dungeonquiz/internal/ui/components"
	"github.com/abhisek/dungeonquiz/internal/ui/layout"
	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

// DungeonsScreen shows every dungeon with its lock state for one stage.
type DungeonsScreen struct {
	src    catalog.Source
	count  int
	kid    config.Kid
	stage  catalog.Stage
	board  []catalog.DungeonStatus
	cursor int
}

var _ screen.Screen = (*DungeonsScreen)(nil)
var _ screen.KeyHintProvider = (*DungeonsScreen)(nil)
var _ screen.StatusProvider = (*DungeonsScreen)(nil)

// New builds the board for stage from the published descriptors.
func New(src catalog.Source, count int, kid config.Kid, stage catalog.Stage, descs []catalog.Descriptor) *DungeonsScreen {
	return &DungeonsScreen{
		src:   src,
		count: count,
		kid:   kid,
		stage: stage,
		board: catalog.Board(descs, stage),
	}
}

func (d *DungeonsScreen) Init() tea.Cmd {
	return nil
}

func (d *DungeonsScreen) Title() string {
	return "Dungeons"
}

func (d *DungeonsScreen) Status() string {
	return fmt.Sprintf("%s · %s", d.kid, d.stage)
}

func (d *DungeonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Enter dungeon"},
		{Key: "Esc", Description: "Back"},
	}
}

// Board returns the dungeon statuses in display order.
func (d *DungeonsScreen) Board() []catalog.DungeonStatus {
	return d.board
}

func (d *DungeonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(d.board) == 0 {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		d.cursor = (d.cursor + len(d.board) - 1) % len(d.board)
	case "down", "j", "tab":
		d.cursor = (d.cursor + 1) % len(d.board)
	case "enter":
		return d, d.open(d.board[d.cursor])
	}
	return d, nil
}

// open pushes a run for an unlocked dungeon, or the placeholder otherwise.
func (d *DungeonsScreen) open(st catalog.DungeonStatus) tea.Cmd {
	var next screen.Screen
	if st.Unlocked() {
		next = sessionscreen.New(d.src, *st.Pack, d.count)
	} else {
		next = placeholder.New(st.Dungeon, d.stage)
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (d *DungeonsScreen) View(width, height int) string {
	cab := components.Cabinet{Width: width, Height: height}
	cw := cab.Inner()

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚔  CHOOSE A DUNGEON  ⚔")

	var rows []string
	for i, st := range d.board {
		rows = append(rows, renderRow(st, i == d.cursor, cw))
	}

	open := 0
	for _, st := range d.board {
		if st.Unlocked() {
			open++
		}
	}
	footer := cab.Center(
		fmt.Sprintf("%d of %d dungeons open for %s", open, len(d.board), d.stage),
		lipgloss.NewStyle().Foreground(theme.TextDim))

	content := strings.Join([]string{heading, strings.Join(rows, "\n"), footer}, "\n\n")
	return cab.Render(content)
}

func renderRow(st catalog.DungeonStatus, selected bool, cw int) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	state := "🔓"
	style := theme.Unselected
	if !st.Unlocked() {
		state = "🔒"
		style = theme.Locked
	}
	if selected {
		style = theme.Selected
	}

	label := fmt.Sprintf("%s%s %s  %s", cursor, st.Dungeon.Icon, st.Dungeon.Name, state)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + st.Dungeon.Description)
	return lipgloss.NewStyle().Width(cw).Render(style.Render(label) + "\n" + desc)
}
