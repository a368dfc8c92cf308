package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dungeonquiz/internal/pack"
	sess "github.com/abhisek/dungeonquiz/internal/session"
	"github.com/abhisek/dungeonquiz/internal/ui/components"
	"github.com/abhisek/dungeonquiz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	q, ok := s.state.Current()
	if !ok {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")
	b.WriteString(renderPrompt(q, width))
	b.WriteString("\n\n")

	if q.Type == pack.TypeMCQ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	} else {
		b.WriteString(centered(width, theme.Body).Render("Answer: " + s.input.View()))
	}

	if res, ok := s.state.LastAnswer(); ok && s.state.Phase() == sess.PhaseAnswered {
		b.WriteString("\n\n")
		b.WriteString(renderFeedback(res, width))
	}
	return b.String()
}

// renderInfoLine shows the dungeon, progress bar and running score.
func (s *SessionScreen) renderInfoLine(width int) string {
	answered, total := s.state.Progress()
	barWidth := min(30, max(10, width/3))
	bar := components.NewProgressBar("", answered, total, barWidth)

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.Title())
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  %s %d", bar.View(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("★"), s.state.Correct()))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4)))
	return line + "\n" + rule
}

func renderPrompt(q pack.Question, width int) string {
	label := fmt.Sprintf("%s  %s", difficultyStars(q.EffectiveDifficulty()), q.Prompt)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(label)
}

func difficultyStars(d int) string {
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(strings.Repeat("✦", d))
}

// renderFeedback shows whether the answer was right, the expected answer,
// the explanation and the reward.
func renderFeedback(res sess.AnswerResult, width int) string {
	var lines []string
	if res.Correct {
		lines = append(lines, centered(width, theme.Correct).Render("Correct!"))
	} else {
		lines = append(lines,
			centered(width, theme.Incorrect).Render("Not quite"),
			centered(width, theme.Hint).Render(fmt.Sprintf("Correct answer: %s", res.Expected)))
	}

	if res.Explain != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(res.Explain)
		lines = append(lines, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	if res.Granted {
		grant := fmt.Sprintf("+%d %s %s", res.Grant.Amount, res.Grant.Tier.Icon(), res.Grant.Tier.DisplayName())
		lines = append(lines, "", centered(width, lipgloss.NewStyle().
			Foreground(theme.TierColor(string(res.Grant.Tier))).
			Bold(true)).Render(grant))
	}

	lines = append(lines, "", centered(width, theme.Hint).Render("Press any key to continue..."))
	return strings.Join(lines, "\n")
}

func progressLabel(answered, total, correct int) string {
	return fmt.Sprintf("Q %d/%d  ★ %d", answered, total, correct)
}

func renderLoading(width int) string {
	return centered(width, theme.Hint).Render("\n\n\n  Opening the dungeon gate...")
}

func renderError(width int, errMsg string) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.Error)).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func centered(width int, style lipgloss.Style) lipgloss.Style {
	return style.Width(width).Align(lipgloss.Center)
}
