package home

import (
	"context"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/config"
	"github.com/abhisek/dungeonquiz/internal/pack"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screen"
	"github.com/abhisek/dungeonquiz/internal/screens/dungeons"
	"github.com/abhisek/dungeonquiz/internal/ui/components"
	"github.com/abhisek/dungeonquiz/internal/ui/layout"
)

// Rows of the home card, top to bottom.
const (
	rowPlayer = iota
	rowGrade
	rowTerm
	rowPhase
	rowStart
	rowExit
	rowCount
)

const pickPlayerNotice = "Pick a player first! Use ←/→ on Player."

// indexLoadedMsg carries the pack index once fetched.
type indexLoadedMsg struct {
	Index *catalog.Index
	Err   error
}

// HomeScreen lets a child pick who is playing and which stage to play.
type HomeScreen struct {
	src   catalog.Source
	kids  []config.Kid
	count int

	descs  []catalog.Descriptor
	grades []int
	terms  []string
	phases []catalog.Phase

	kid, grade, term, phase int
	row                     int

	loaded bool
	err    error
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. No player is selected until the child picks one.
func New(src catalog.Source, kids []config.Kid, count int) *HomeScreen {
	return &HomeScreen{
		src:    src,
		kids:   kids,
		count:  count,
		phases: catalog.AllPhases(),
		kid:    -1,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	src := h.src
	return func() tea.Msg {
		idx, err := pack.LoadIndex(context.Background(), src)
		return indexLoadedMsg{Index: idx, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	if h.kid < 0 {
		return ""
	}
	return h.kids[h.kid].String()
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Kid returns the selected player.
func (h *HomeScreen) Kid() (config.Kid, bool) {
	if h.kid < 0 {
		return config.Kid{}, false
	}
	return h.kids[h.kid], true
}

// Stage returns the currently selected stage.
func (h *HomeScreen) Stage() catalog.Stage {
	s := catalog.Stage{Phase: h.phases[h.phase]}
	if len(h.grades) > 0 {
		s.Grade = h.grades[h.grade]
	}
	if len(h.terms) > 0 {
		s.Term = h.terms[h.term]
	}
	return s
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case indexLoadedMsg:
		h.handleIndex(msg)
		return h, nil
	case tea.KeyPressMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleIndex(msg indexLoadedMsg) {
	h.loaded = true
	if msg.Err != nil {
		h.err = msg.Err
	} else {
		h.descs = msg.Index.Packs
	}

	opts := catalog.Options(h.descs)
	h.grades = opts.Grades
	h.terms = opts.Terms
	if len(h.grades) == 0 {
		h.grades = []int{opts.Default.Grade}
	}
	if len(h.terms) == 0 {
		h.terms = []string{opts.Default.Term}
	}
	h.grade = max(0, slices.Index(h.grades, opts.Default.Grade))
	h.term = max(0, slices.Index(h.terms, opts.Default.Term))
	h.phase = max(0, slices.Index(h.phases, opts.Default.Phase))
}

func (h *HomeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if i := int(key[0] - '1'); i < len(h.kids) {
			h.kid = i
			h.notice = ""
		}
		return h, nil
	}

	switch key {
	case "up", "k":
		h.row = (h.row + rowCount - 1) % rowCount
	case "down", "j", "tab":
		h.row = (h.row + 1) % rowCount
	case "left", "h":
		h.cycle(-1)
	case "right", "l":
		h.cycle(1)
	case "enter":
		return h.activate()
	}
	return h, nil
}

// cycle changes the value on the selected row, wrapping around.
func (h *HomeScreen) cycle(delta int) {
	if !h.loaded && h.row != rowPlayer {
		return
	}
	switch h.row {
	case rowPlayer:
		if len(h.kids) == 0 {
			return
		}
		if h.kid < 0 {
			h.kid = 0
		} else {
			h.kid = wrap(h.kid+delta, len(h.kids))
		}
		h.notice = ""
	case rowGrade:
		h.grade = wrap(h.grade+delta, len(h.grades))
	case rowTerm:
		h.term = wrap(h.term+delta, len(h.terms))
	case rowPhase:
		h.phase = wrap(h.phase+delta, len(h.phases))
	}
}

func (h *HomeScreen) activate() (screen.Screen, tea.Cmd) {
	switch h.row {
	case rowPlayer:
		if h.kid < 0 && len(h.kids) > 0 {
			h.kid = 0
			h.notice = ""
		}
		h.row = rowGrade
	case rowGrade, rowTerm, rowPhase:
		h.row++
	case rowStart:
		if h.kid < 0 {
			h.notice = pickPlayerNotice
			return h, nil
		}
		if !h.loaded {
			return h, nil
		}
		board := dungeons.New(h.src, h.count, h.kids[h.kid], h.Stage(), h.descs)
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: board} }
	case rowExit:
		return h, tea.Quit
	}
	return h, nil
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.Compact(width, height)
	cab := components.Cabinet{Width: width, Height: height}
	cw := cab.Inner()

	sections := []string{renderTitle(cw, compact)}

	if !h.loaded {
		sections = append(sections, renderNotice("Opening the map...", cw, false))
		return cab.Render(strings.Join(sections, "\n\n"))
	}

	sections = append(sections, h.renderCard(cw))
	sections = append(sections, renderButtons(h.row, cw))

	switch {
	case h.notice != "":
		sections = append(sections, renderNotice(h.notice, cw, true))
	case h.err != nil:
		sections = append(sections, renderNotice("Packs unavailable: "+h.err.Error(), cw, true))
	case len(h.descs) == 0:
		sections = append(sections, renderNotice("No packs published yet.", cw, false))
	}

	return cab.Render(strings.Join(sections, "\n\n"))
}
