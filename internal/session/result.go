package session

import (
	"fmt"
	"time"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/pack"
	"github.com/abhisek/dungeonquiz/internal/rewards"
)

// Result is the final tally of a completed session.
type Result struct {
	SessionID string
	PackID    string
	Correct   int
	Total     int
	Parts     rewards.Parts
	Houses    rewards.Houses
	Duration  time.Duration
}

// Accuracy returns the fraction answered correctly, 0 for an empty run.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Result returns the tally. It is only available once the session is
// complete.
func (s *Session) Result() (Result, error) {
	if s.phase != PhaseComplete {
		return Result{}, &StateError{Op: "read the result", Phase: s.phase}
	}
	parts := s.parts.Clone()
	return Result{
		SessionID: s.id,
		PackID:    s.packID,
		Correct:   s.correct,
		Total:     len(s.questions),
		Parts:     parts,
		Houses:    rewards.DeriveHouses(parts),
		Duration:  time.Since(s.startedAt),
	}, nil
}

// Messages shown when a run earned nothing.
const (
	NoPartsMessage  = "No parts this time."
	NoHousesMessage = "Not enough parts to build a house yet. Try again!"
)

// Summary is a display-ready view of a result.
type Summary struct {
	Title       string
	DungeonName string
	DungeonIcon string
	Score       string
	Accuracy    float64
	PartLines   []string
	HouseLines  []string
}

// Summarize prepares a result for display. Dungeons missing from the
// registry are shown by their id.
func Summarize(r Result, meta pack.Meta) Summary {
	sum := Summary{
		Title:       meta.Title,
		DungeonName: meta.Dungeon,
		Score:       fmt.Sprintf("%d / %d", r.Correct, r.Total),
		Accuracy:    r.Accuracy(),
		PartLines:   r.Parts.Lines(),
		HouseLines:  r.Houses.Lines(),
	}
	if sum.Title == "" {
		sum.Title = meta.ID
	}
	if d, err := catalog.GetDungeon(meta.Dungeon); err == nil {
		sum.DungeonName = d.Name
		sum.DungeonIcon = d.Icon
	}
	if len(sum.PartLines) == 0 {
		sum.PartLines = []string{NoPartsMessage}
	}
	if len(sum.HouseLines) == 0 {
		sum.HouseLines = []string{NoHousesMessage}
	}
	return sum
}
