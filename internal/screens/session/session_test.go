package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/pack"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screens/summary"
	sess "github.com/abhisek/dungeonquiz/internal/session"
)

// stubSource serves a single pack file.
type stubSource struct {
	data []byte
	err  error
}

func (s *stubSource) Index(context.Context) (*catalog.Index, error) {
	return &catalog.Index{}, nil
}

func (s *stubSource) Pack(context.Context, string) ([]byte, error) {
	return s.data, s.err
}

func testPack() *pack.Pack {
	return &pack.Pack{
		Meta: pack.Meta{
			ID:      "g2-math-mid",
			Title:   "Grade 2 Math Midterm",
			Grade:   2,
			Term:    "2-1",
			Phase:   catalog.PhaseMidterm,
			Dungeon: "math_mine",
		},
		Questions: []pack.Question{
			{ID: "q1", Type: pack.TypeMCQ, Difficulty: 1, Prompt: "2 + 2 = ?", Choices: []string{"3", "4", "5"}, Answer: "4", Explain: "Two and two make four."},
			{ID: "q2", Type: pack.TypeFill, Difficulty: 2, Prompt: "5 - 3 = ?", Answer: "2"},
		},
	}
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// answer submits the given text for whatever question is showing.
func answer(t *testing.T, s *SessionScreen, text string) {
	t.Helper()
	q, ok := s.Session().Current()
	if !ok {
		t.Fatal("no current question")
	}
	if q.Type == pack.TypeMCQ {
		for i, c := range q.Choices {
			if c == text {
				s.Update(press(rune('1' + i)))
				return
			}
		}
		// Not one of the choices: pick the first one that differs.
		for i, c := range q.Choices {
			if c != q.Answer {
				s.Update(press(rune('1' + i)))
				return
			}
		}
		t.Fatalf("no choice to submit for %q", text)
	}
	for _, r := range text {
		s.Update(press(r))
	}
	s.Update(enter())
}

func TestSessionScreen_CorrectAnswersThenSummary(t *testing.T) {
	s := NewWithPack(testPack(), 5, seeded())
	if cmd := s.Init(); cmd != nil {
		if _, ok := cmd().(router.ReplaceScreenMsg); ok {
			t.Fatal("non-empty session should not finish on init")
		}
	}

	_, total := s.Session().Progress()
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}

	var last tea.Cmd
	for i := 0; i < total; i++ {
		q, _ := s.Session().Current()
		answer(t, s, q.Answer)

		if s.Session().Phase() != sess.PhaseAnswered {
			t.Fatalf("question %d: phase = %v, want answered", i, s.Session().Phase())
		}
		if !strings.Contains(s.View(80, 30), "Correct!") {
			t.Errorf("question %d: feedback missing Correct!", i)
		}
		_, last = s.Update(press('x'))
	}

	if !s.Session().Done() {
		t.Fatal("session should be complete")
	}
	if last == nil {
		t.Fatal("expected a command after the last question")
	}
	msg, ok := last().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", last())
	}
	sum, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected *summary.SummaryScreen, got %T", msg.Screen)
	}
	if got := sum.Summary().Score; got != "2 / 2" {
		t.Errorf("score = %q, want 2 / 2", got)
	}
	if got := sum.Summary().DungeonName; got != "Number Gold Mine" {
		t.Errorf("dungeon = %q", got)
	}
}

func TestSessionScreen_WrongAnswerShowsExpected(t *testing.T) {
	p := testPack()
	p.Questions = p.Questions[:1]
	s := NewWithPack(p, 5, seeded())

	answer(t, s, "wrong")

	res, ok := s.Session().LastAnswer()
	if !ok || res.Correct {
		t.Fatalf("expected an incorrect answer, got %+v", res)
	}
	view := s.View(80, 30)
	for _, want := range []string{"Not quite", "Correct answer: 4", "Two and two make four."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSessionScreen_AnswerLockedUntilAdvance(t *testing.T) {
	p := testPack()
	p.Questions = p.Questions[:1]
	s := NewWithPack(p, 5, seeded())

	s.Update(press('2'))
	if s.Session().Correct() != 1 {
		t.Fatalf("correct = %d, want 1", s.Session().Correct())
	}

	// The next key advances rather than re-answering.
	s.Update(press('1'))
	if s.Session().Correct() != 1 {
		t.Errorf("correct changed to %d after the question was locked", s.Session().Correct())
	}
	if !s.Session().Done() {
		t.Error("expected session to be complete")
	}
}

func TestSessionScreen_EmptyFillIgnored(t *testing.T) {
	p := testPack()
	p.Questions = p.Questions[1:]
	s := NewWithPack(p, 5, seeded())

	s.Update(enter())
	if s.Session().Phase() != sess.PhaseAwaitingAnswer {
		t.Errorf("phase = %v, want awaiting answer", s.Session().Phase())
	}
}

func TestSessionScreen_EmptyPackFinishesImmediately(t *testing.T) {
	p := testPack()
	p.Questions = nil
	s := NewWithPack(p, 5, seeded())

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg for an empty session")
	}
}

func TestSessionScreen_LoadsPackFromSource(t *testing.T) {
	data, err := pack.Marshal(testPack())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	desc := pack.IndexEntry(testPack().Meta)
	s := New(&stubSource{data: data}, desc, 1)

	if s.Session() != nil {
		t.Fatal("session should not start before the pack loads")
	}
	msg := s.Init()()
	s.Update(msg)

	if s.Session() == nil {
		t.Fatal("session not started after load")
	}
	if _, total := s.Session().Progress(); total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	if got := s.Title(); got != "Grade 2 Math Midterm" {
		t.Errorf("Title() = %q", got)
	}
}

func TestSessionScreen_LoadFailure(t *testing.T) {
	s := New(&stubSource{err: errors.New("disk on fire")}, catalog.Descriptor{File: "x.json"}, 5)

	s.Update(s.Init()())
	if !strings.Contains(s.View(80, 30), "disk on fire") {
		t.Error("expected load error in view")
	}

	_, cmd := s.Update(press('x'))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after a load failure")
	}
}
