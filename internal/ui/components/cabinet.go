package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

// Cabinet is the double-bordered arcade box the menu screens draw in.
type Cabinet struct {
	Width  int
	Height int
}

// Inner is the column width shared by everything inside the cabinet, so
// cards and buttons line up.
func (c Cabinet) Inner() int {
	return min(64, max(20, c.Width-6))
}

// Render frames content, centred both ways.
func (c Cabinet) Render(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(c.Width-2).
		Height(c.Height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Center renders s with style, centred on the inner column.
func (c Cabinet) Center(s string, style lipgloss.Style) string {
	return style.Width(c.Inner()).Align(lipgloss.Center).Render(s)
}

// Card boxes content at the inner width.
func (c Cabinet) Card(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(c.Inner()-2).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(content)
}

// ButtonState picks how Button draws.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonFocused
	ButtonDisabled
)

// ButtonWidth fits the longest label the screens use.
const ButtonWidth = 22

// Button renders a bordered arcade button.
func Button(label string, state ButtonState) string {
	style := lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Foreground(theme.Text)

	switch state {
	case ButtonFocused:
		label = "▸ " + label
		style = style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
	case ButtonDisabled:
		style = style.Foreground(theme.TextDim)
	}
	return style.Render(label)
}
