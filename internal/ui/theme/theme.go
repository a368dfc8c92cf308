package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: forest greens with treasure accents
var (
	Primary   = lipgloss.Color("#22C55E") // Leaf Green
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#4ADE80") // Mint
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1410") // Night Forest
	BgCard    = lipgloss.Color("#16241D") // Moss
	Border    = lipgloss.Color("#2F4A3C") // Bark

	ArcadeYellow = lipgloss.Color("#FACC15") // Torch
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Crystal
)

// Reward tier colors.
var (
	Wood    = lipgloss.Color("#B45309")
	Stone   = lipgloss.Color("#A8A29E")
	Iron    = lipgloss.Color("#CBD5E1")
	Gold    = lipgloss.Color("#FACC15")
	Diamond = lipgloss.Color("#67E8F9")
)

// TierColor returns the color for a reward tier name.
func TierColor(tier string) color.Color {
	switch tier {
	case "wood":
		return Wood
	case "stone":
		return Stone
	case "iron":
		return Iron
	case "gold":
		return Gold
	case "diamond":
		return Diamond
	default:
		return Text
	}
}

// Typography
var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
