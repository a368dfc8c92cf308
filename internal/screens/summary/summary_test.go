package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screen"
	"github.com/abhisek/dungeonquiz/internal/session"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                              { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                       { return "" }
func (stubScreen) Title() string                              { return "stub" }

func testSummary() session.Summary {
	return session.Summary{
		Title:       "Grade 2 Midterm",
		DungeonName: "Number Gold Mine",
		DungeonIcon: "⛏️",
		Score:       "4 / 5",
		Accuracy:    0.8,
		PartLines:   []string{"🪵 Wood x3"},
		HouseLines:  []string{session.NoHousesMessage},
	}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func TestSummaryScreen_View(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 40)

	for _, want := range []string{"Quest complete!", "Number Gold Mine", "4 / 5", "80%", "Wood x3", session.NoHousesMessage, "Back to dungeons"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_PlayAgainReplaces(t *testing.T) {
	built := 0
	s := New(testSummary(), func() screen.Screen {
		built++
		return stubScreen{}
	})

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected command from Play again")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(stubScreen); !ok {
		t.Errorf("replacement screen = %T, want stubScreen", msg.Screen)
	}
	if built != 1 {
		t.Errorf("playAgain called %d times, want 1", built)
	}
}

func TestSummaryScreen_BackPops(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} })

	s.Update(down())
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected command from Back to dungeons")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg")
	}
}

func TestSummaryScreen_NoReplayWithoutFactory(t *testing.T) {
	s := New(testSummary(), nil)

	// The disabled first item is skipped, so Enter goes back.
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg")
	}
}
