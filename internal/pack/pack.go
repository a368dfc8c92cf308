package pack

import "github.com/abhisek/dungeonquiz/internal/catalog"

// QuestionType identifies how the child answers a question.
type QuestionType string

const (
	TypeMCQ  QuestionType = "mcq"
	TypeFill QuestionType = "fill"
)

// Difficulty bounds for questions.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 1
)

// Question is a single quiz item.
type Question struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Difficulty int          `json:"difficulty,omitempty"`
	Prompt     string       `json:"prompt"`
	Choices    []string     `json:"choices,omitempty"`
	Answer     string       `json:"answer"`
	Explain    string       `json:"explain,omitempty"`
}

// EffectiveDifficulty returns the difficulty used for display and linting:
// an absent or out-of-range value counts as 1.
func (q Question) EffectiveDifficulty() int {
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return DefaultDifficulty
	}
	return q.Difficulty
}

// RewardDifficulty returns the difficulty rewards are keyed on. An absent
// value counts as 1; out-of-range values are passed through unchanged so
// the reward table can ignore them.
func (q Question) RewardDifficulty() int {
	if q.Difficulty == 0 {
		return DefaultDifficulty
	}
	return q.Difficulty
}

// Meta describes where a pack is published.
type Meta struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Grade   int           `json:"grade"`
	Term    string        `json:"term"`
	Phase   catalog.Phase `json:"phase"`
	Dungeon string        `json:"dungeon"`
}

// Stage returns the stage the pack is meant for.
func (m Meta) Stage() catalog.Stage {
	return catalog.Stage{Grade: m.Grade, Term: m.Term, Phase: m.Phase}
}

// Pack is a themed collection of questions. A loaded pack is treated as
// immutable.
type Pack struct {
	Meta      Meta       `json:"meta"`
	Questions []Question `json:"questions"`
}

// IndexEntry returns the index descriptor for a pack with the given meta.
// The pack file is named after the pack id.
func IndexEntry(meta Meta) catalog.Descriptor {
	return catalog.Descriptor{
		ID:      meta.ID,
		Grade:   meta.Grade,
		Term:    meta.Term,
		Phase:   meta.Phase,
		Dungeon: meta.Dungeon,
		Title:   meta.Title,
		File:    meta.ID + ".json",
	}
}
