package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/config"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screens/dungeons"
)

type stubSource struct {
	index *catalog.Index
	err   error
}

func (s *stubSource) Index(context.Context) (*catalog.Index, error) { return s.index, s.err }
func (s *stubSource) Pack(context.Context, string) ([]byte, error) { return nil, s.err }

var testKids = []config.Kid{
	{Name: "Xigua", Emoji: "🍉"},
	{Name: "Youzi", Emoji: "🍊"},
}

func testIndex() *catalog.Index {
	return &catalog.Index{Packs: []catalog.Descriptor{
		{ID: "g1-math", Grade: 1, Term: "1-2", Phase: catalog.PhaseFinal, Dungeon: "math_mine", Title: "G1", File: "g1-math.json"},
		{ID: "g2-math", Grade: 2, Term: "2-1", Phase: catalog.PhaseMidterm, Dungeon: "math_mine", Title: "G2", File: "g2-math.json"},
	}}
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func loadedHome(t *testing.T, src *stubSource) *HomeScreen {
	t.Helper()
	h := New(src, testKids, 5)
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected index load command")
	}
	h.Update(cmd())
	return h
}

func TestHomeScreen_DefaultStage(t *testing.T) {
	h := loadedHome(t, &stubSource{index: testIndex()})

	got := h.Stage()
	want := catalog.Stage{Grade: 1, Term: "2-1", Phase: catalog.PhaseMidterm}
	if got != want {
		t.Errorf("Stage() = %+v, want %+v", got, want)
	}
	if _, ok := h.Kid(); ok {
		t.Error("no kid should be selected initially")
	}
}

func TestHomeScreen_StartRequiresKid(t *testing.T) {
	h := loadedHome(t, &stubSource{index: testIndex()})

	h.row = rowStart
	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("start without a kid should not navigate")
	}
	if !strings.Contains(h.View(80, 40), "Pick a player first!") {
		t.Error("expected pick-a-player notice")
	}
}

func TestHomeScreen_PickKidAndStart(t *testing.T) {
	h := loadedHome(t, &stubSource{index: testIndex()})

	h.Update(char('2'))
	kid, ok := h.Kid()
	if !ok || kid.Name != "Youzi" {
		t.Fatalf("Kid() = %+v, %v; want Youzi", kid, ok)
	}
	if h.Status() != "🍊 Youzi" {
		t.Errorf("Status() = %q", h.Status())
	}

	h.row = rowGrade
	h.Update(key(tea.KeyRight))
	h.row = rowStart
	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	board, ok := msg.Screen.(*dungeons.DungeonsScreen)
	if !ok {
		t.Fatalf("expected *dungeons.DungeonsScreen, got %T", msg.Screen)
	}

	unlocked := 0
	for _, st := range board.Board() {
		if st.Unlocked() {
			unlocked++
			if st.Pack.ID != "g2-math" {
				t.Errorf("unlocked pack = %s, want g2-math", st.Pack.ID)
			}
		}
	}
	if unlocked != 1 {
		t.Errorf("unlocked dungeons = %d, want 1", unlocked)
	}
}

func TestHomeScreen_CycleStage(t *testing.T) {
	h := loadedHome(t, &stubSource{index: testIndex()})

	h.row = rowGrade
	h.Update(key(tea.KeyRight))
	if got := h.Stage().Grade; got != 2 {
		t.Errorf("grade after right = %d, want 2", got)
	}
	h.Update(key(tea.KeyRight))
	if got := h.Stage().Grade; got != 1 {
		t.Errorf("grade after second right = %d, want 1 (wraps)", got)
	}
	h.Update(key(tea.KeyLeft))
	if got := h.Stage().Grade; got != 2 {
		t.Errorf("grade after left = %d, want 2 (wraps)", got)
	}

	h.row = rowPhase
	h.Update(key(tea.KeyRight))
	if got := h.Stage().Phase; got != catalog.PhaseFinal {
		t.Errorf("phase after right = %s, want final", got)
	}
}

func TestHomeScreen_CyclePlayer(t *testing.T) {
	h := loadedHome(t, &stubSource{index: testIndex()})

	h.Update(key(tea.KeyRight))
	if kid, _ := h.Kid(); kid.Name != "Xigua" {
		t.Errorf("first right should pick Xigua, got %q", kid.Name)
	}
	h.Update(key(tea.KeyRight))
	if kid, _ := h.Kid(); kid.Name != "Youzi" {
		t.Errorf("second right should pick Youzi, got %q", kid.Name)
	}
	h.Update(key(tea.KeyRight))
	if kid, _ := h.Kid(); kid.Name != "Xigua" {
		t.Errorf("third right should wrap to Xigua, got %q", kid.Name)
	}
}

func TestHomeScreen_IndexUnavailable(t *testing.T) {
	h := loadedHome(t, &stubSource{err: errors.New("no network")})

	if !strings.Contains(h.View(80, 40), "no network") {
		t.Error("expected index error in view")
	}
	// Defaults still apply so the board can show every dungeon locked.
	if got := h.Stage().Grade; got != 2 {
		t.Errorf("grade = %d, want 2", got)
	}
}

func TestHomeScreen_Exit(t *testing.T) {
	h := loadedHome(t, &stubSource{index: testIndex()})

	h.row = rowExit
	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
