package home

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/ui/components"
	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

const arcadeTitleFull = `⚔  D U N G E O N   Q U I Z  ⚔
  ▲   ▲   ▲   ▲   ▲   ▲   ▲
 ███████████████████████████`

const arcadeTitleCompact = "⚔ DUNGEON QUIZ ⚔"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderCard renders the player and stage pickers.
func (h *HomeScreen) renderCard(cw int) string {
	player := "pick a player"
	if h.kid >= 0 {
		player = h.kids[h.kid].String()
	}

	rows := []struct {
		label, value string
	}{
		{"Player", player},
		{"Grade", strconv.Itoa(h.grades[h.grade])},
		{"Term", h.terms[h.term]},
		{"Phase", h.phases[h.phase].Label()},
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(8)
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		value := fmt.Sprintf("‹ %s ›", r.value)
		if i == h.row {
			lines = append(lines, labelStyle.Render(r.label)+theme.Selected.Render(value))
		} else {
			lines = append(lines, labelStyle.Render(r.label)+theme.Unselected.Render(value))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderButtons renders the start and exit buttons.
func renderButtons(row, cw int) string {
	state := func(r int) components.ButtonState {
		if row == r {
			return components.ButtonFocused
		}
		return components.ButtonIdle
	}
	block := strings.Join([]string{
		components.Button("ENTER DUNGEONS", state(rowStart)),
		components.Button("EXIT", state(rowExit)),
	}, "\n")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderNotice(text string, cw int, warn bool) string {
	fg := theme.TextDim
	if warn {
		fg = theme.Accent
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

