package session

import (
	"context"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/pack"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screen"
	"github.com/abhisek/dungeonquiz/internal/screens/summary"
	sess "github.com/abhisek/dungeonquiz/internal/session"
	"github.com/abhisek/dungeonquiz/internal/ui/components"
	"github.com/abhisek/dungeonquiz/internal/ui/layout"
)

const answerCharLimit = 40

// SessionScreen runs one quiz session over a dungeon's pack.
type SessionScreen struct {
	src   catalog.Source
	desc  catalog.Descriptor
	count int
	rng   *rand.Rand

	pack   *pack.Pack
	state  *sess.Session
	mc     components.MultiChoice
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen that loads the pack for desc from src.
func New(src catalog.Source, desc catalog.Descriptor, count int) *SessionScreen {
	return &SessionScreen{
		src:   src,
		desc:  desc,
		count: count,
	}
}

// NewWithPack creates a SessionScreen over an already loaded pack. A nil
// rng uses the global source.
func NewWithPack(p *pack.Pack, count int, rng *rand.Rand) *SessionScreen {
	s := &SessionScreen{count: count, rng: rng}
	s.begin(p)
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.state != nil {
		if cmd := s.finishIfDone(); cmd != nil {
			return cmd
		}
		return s.focusInput()
	}
	src, desc := s.src, s.desc
	return func() tea.Msg {
		p, err := pack.Load(context.Background(), src, desc)
		return packLoadedMsg{Pack: p, Err: err}
	}
}

func (s *SessionScreen) Title() string {
	if s.pack != nil && s.pack.Meta.Title != "" {
		return s.pack.Meta.Title
	}
	return "Quest"
}

func (s *SessionScreen) Status() string {
	if s.state == nil {
		return ""
	}
	answered, total := s.state.Progress()
	return progressLabel(answered, total, s.state.Correct())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.state == nil {
		return nil
	}
	if s.state.Phase() == sess.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.isMCQ() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

// Session exposes the running session, nil until the pack is loaded.
func (s *SessionScreen) Session() *sess.Session {
	return s.state
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case packLoadedMsg:
		return s.handlePackLoaded(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like to the text input.
	if s.awaitingFill() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handlePackLoaded(msg packLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.begin(msg.Pack)
	if cmd := s.finishIfDone(); cmd != nil {
		return s, cmd
	}
	return s, s.focusInput()
}

// begin starts a fresh sample over p and prepares the first question.
func (s *SessionScreen) begin(p *pack.Pack) {
	s.pack = p
	s.state = sess.Start(p, s.count, s.rng)
	s.prepareQuestion()
}

func (s *SessionScreen) prepareQuestion() {
	q, ok := s.state.Current()
	if !ok {
		return
	}
	if q.Type == pack.TypeMCQ {
		s.mc = components.NewMultiChoice(q.Choices)
		return
	}
	s.input = components.NewTextInput("Type your answer...", answerCharLimit)
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	switch s.state.Phase() {
	case sess.PhaseAnswered:
		return s.advance()
	case sess.PhaseAwaitingAnswer:
		if s.isMCQ() {
			var submitted bool
			s.mc, submitted = s.mc.Update(msg)
			if !submitted {
				return s, nil
			}
			choice, _ := s.mc.Chosen()
			return s.submit(choice)
		}
		if msg.String() == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s.submit(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit locks the current question with the child's answer.
func (s *SessionScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	q, _ := s.state.Current()
	res, err := s.state.SubmitAnswer(answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.isMCQ() {
		s.mc.Reveal(func(opt string) bool { return sess.CheckAnswer(opt, q) })
	} else {
		s.input.Submit(res.Correct)
	}
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.state.Advance(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if cmd := s.finishIfDone(); cmd != nil {
		return s, cmd
	}
	s.prepareQuestion()
	return s, s.focusInput()
}

// focusInput starts the cursor for a fill question.
func (s *SessionScreen) focusInput() tea.Cmd {
	if !s.awaitingFill() {
		return nil
	}
	return s.input.Init()
}

// finishIfDone swaps this screen for the result screen once the session
// is complete.
func (s *SessionScreen) finishIfDone() tea.Cmd {
	if !s.state.Done() {
		return nil
	}
	res, err := s.state.Result()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	p, count := s.pack, s.count
	next := summary.New(sess.Summarize(res, p.Meta), func() screen.Screen {
		return NewWithPack(p, count, nil)
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SessionScreen) isMCQ() bool {
	q, ok := s.state.Current()
	return ok && q.Type == pack.TypeMCQ
}

func (s *SessionScreen) awaitingFill() bool {
	return s.state != nil && s.state.Phase() == sess.PhaseAwaitingAnswer && !s.isMCQ()
}
