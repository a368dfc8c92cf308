package extract

import "github.com/abhisek/dungeonquiz/internal/pack"

// Summary counts the kinds of drafts an extraction produced.
type Summary struct {
	Total int
	MCQ   int
	Fill  int

	// Unresolved counts drafts whose answer still needs a human: every
	// fill draft plus every mcq draft, whose answer is a placeholder.
	Unresolved int
}

// Stats summarises extracted drafts.
func Stats(drafts []pack.Question) Summary {
	var s Summary
	for _, q := range drafts {
		s.Total++
		switch q.Type {
		case pack.TypeMCQ:
			s.MCQ++
			s.Unresolved++
		case pack.TypeFill:
			s.Fill++
			if q.Answer == "" {
				s.Unresolved++
			}
		}
	}
	return s
}
