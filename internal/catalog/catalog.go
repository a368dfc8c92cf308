package catalog

import (
	"fmt"
	"strings"
)

// Phase is the point in a school term a pack is meant for.
type Phase string

const (
	PhasePractice Phase = "practice"
	PhaseMidterm  Phase = "midterm"
	PhaseFinal    Phase = "final"
)

// AllPhases returns the phases in curriculum order.
func AllPhases() []Phase {
	return []Phase{PhasePractice, PhaseMidterm, PhaseFinal}
}

// Label returns the human-friendly name of the phase.
func (p Phase) Label() string {
	switch p {
	case PhasePractice:
		return "Practice"
	case PhaseMidterm:
		return "Midterm"
	case PhaseFinal:
		return "Final"
	default:
		return string(p)
	}
}

// ParsePhase parses a phase name, case-insensitively.
func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPhases() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q (want practice, midterm or final)", s)
}

// Stage is the (grade, term, phase) triple a child picks before playing.
type Stage struct {
	Grade int
	Term  string
	Phase Phase
}

// Validate reports whether the stage is complete enough to resolve packs.
func (s Stage) Validate() error {
	if s.Grade <= 0 {
		return fmt.Errorf("grade must be positive, got %d", s.Grade)
	}
	if s.Term == "" {
		return fmt.Errorf("term is required")
	}
	if _, err := ParsePhase(string(s.Phase)); err != nil {
		return err
	}
	return nil
}

func (s Stage) String() string {
	return fmt.Sprintf("Grade %d / %s / %s", s.Grade, s.Term, s.Phase.Label())
}

// Descriptor is one entry of the pack index.
type Descriptor struct {
	ID      string `json:"id"`
	Grade   int    `json:"grade"`
	Term    string `json:"term"`
	Phase   Phase  `json:"phase"`
	Dungeon string `json:"dungeon"`
	Title   string `json:"title"`
	File    string `json:"file"`
}

// Stage returns the stage the descriptor is published for.
func (d Descriptor) Stage() Stage {
	return Stage{Grade: d.Grade, Term: d.Term, Phase: d.Phase}
}

// Matches reports whether the descriptor serves the given stage and dungeon.
func (d Descriptor) Matches(stage Stage, dungeonID string) bool {
	return d.Grade == stage.Grade &&
		d.Term == stage.Term &&
		d.Phase == stage.Phase &&
		d.Dungeon == dungeonID
}

// Index is the document listing every published pack.
type Index struct {
	Packs []Descriptor `json:"packs"`
}

// Resolve returns the first descriptor, in index order, that matches the
// stage and dungeon. Later duplicates are shadowed.
func Resolve(descs []Descriptor, stage Stage, dungeonID string) (Descriptor, bool) {
	for _, d := range descs {
		if d.Matches(stage, dungeonID) {
			return d, true
		}
	}
	return Descriptor{}, false
}
