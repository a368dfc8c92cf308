package catalog

import (
	"sort"
)

// DungeonStatus pairs a dungeon with the pack that unlocks it for a stage.
// Pack is nil when the dungeon is locked.
type DungeonStatus struct {
	Dungeon Dungeon
	Pack    *Descriptor
}

// Unlocked reports whether a pack is available for this dungeon.
func (s DungeonStatus) Unlocked() bool {
	return s.Pack != nil
}

// Board returns the lock state of every dungeon for the stage, in board order.
func Board(descs []Descriptor, stage Stage) []DungeonStatus {
	out := make([]DungeonStatus, 0, len(dungeons))
	for _, d := range dungeons {
		st := DungeonStatus{Dungeon: d}
		if desc, ok := Resolve(descs, stage, d.ID); ok {
			st.Pack = &desc
		}
		out = append(out, st)
	}
	return out
}

// StageOptions lists the distinct grades and terms present in an index,
// with a default stage to preselect.
type StageOptions struct {
	Grades  []int
	Terms   []string
	Default Stage
}

// Fallback stage values used when the index offers nothing better.
const (
	defaultGrade = 2
	defaultTerm  = "2-1"
)

// Options derives the sorted grade and term choices from the index. The
// default stage is the lowest grade, term "2-1" when present (else the
// first term) and the midterm phase.
func Options(descs []Descriptor) StageOptions {
	var opts StageOptions
	seenGrade := make(map[int]bool)
	seenTerm := make(map[string]bool)
	for _, d := range descs {
		if !seenGrade[d.Grade] {
			seenGrade[d.Grade] = true
			opts.Grades = append(opts.Grades, d.Grade)
		}
		if d.Term != "" && !seenTerm[d.Term] {
			seenTerm[d.Term] = true
			opts.Terms = append(opts.Terms, d.Term)
		}
	}
	sort.Ints(opts.Grades)
	sort.Strings(opts.Terms)

	opts.Default = Stage{Grade: defaultGrade, Term: defaultTerm, Phase: PhaseMidterm}
	if len(opts.Grades) > 0 {
		opts.Default.Grade = opts.Grades[0]
	}
	if !seenTerm[defaultTerm] && len(opts.Terms) > 0 {
		opts.Default.Term = opts.Terms[0]
	}
	return opts
}
