// Package layout draws the chrome around the active screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Content areas narrower or shorter than this get the compact layouts.
const (
	compactWidth  = 100
	compactHeight = 24
)

// KeyHint is one entry of the footer.
type KeyHint struct {
	Key         string
	Description string
}

// TooSmall reports whether the terminal is below MinWidth x MinHeight.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Compact reports whether a content area should use a compact layout.
func Compact(width, height int) bool {
	return width < compactWidth || height < compactHeight
}

// TooSmallMessage fills the terminal with a request to resize it.
func TooSmallMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
			"The dungeon needs more room!\n\nMake the window at least %d x %d.\nIt is %d x %d now.",
			MinWidth, MinHeight, width, height)))
}

// Frame is the header and footer drawn around a screen.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
}

// Render draws the frame at the given size. body is called with the space
// left between header and footer.
func (f Frame) Render(width, height int, body func(w, h int) string) string {
	header := f.header(width)
	footer := f.footer(width)
	bodyHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body(width, bodyHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

func (f Frame) header(width int) string {
	inner := max(0, width-bar.GetHorizontalFrameSize())

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("⚔ DungeonQuiz")
	status := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status)
	middle := max(0, inner-lipgloss.Width(brand)-lipgloss.Width(status))
	title := lipgloss.PlaceHorizontal(middle, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title))

	return bar.Width(width).Render(brand + title + status)
}

func (f Frame) footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render(strings.Join(parts, desc.Render("  ·  ")))
}
