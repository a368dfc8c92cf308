package session

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/dungeonquiz/internal/pack"
	"github.com/abhisek/dungeonquiz/internal/rewards"
)

// DefaultCount is the number of questions in a run unless configured.
const DefaultCount = 5

// Session is one run through a sample of a pack. It is owned by a single
// caller and is not safe for concurrent use.
type Session struct {
	id        string
	packID    string
	questions []pack.Question
	index     int
	correct   int
	parts     rewards.Parts
	phase     Phase
	last      *AnswerResult
	table     rewards.Table
	startedAt time.Time
}

// Option customises a new session.
type Option func(*Session)

// WithTable sets the reward table used for accrual.
func WithTable(t rewards.Table) Option {
	return func(s *Session) { s.table = t }
}

// WithID sets the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// AnswerResult is the outcome of one submitted answer.
type AnswerResult struct {
	QuestionID string
	Submitted  string
	Correct    bool
	Expected   string
	Explain    string
	Grant      rewards.Grant
	Granted    bool
}

// Start samples up to n questions from the pack and returns a session
// awaiting the first answer. The pool is copied and fully shuffled, then
// truncated, so every question appears at most once. The pack is not
// modified. A nil rng uses the global source. An empty sample yields a
// session that is already complete.
func Start(p *pack.Pack, n int, rng *rand.Rand, opts ...Option) *Session {
	pool := slices.Clone(p.Questions)
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n = max(0, min(n, len(pool)))

	s := &Session{
		id:        uuid.New().String(),
		packID:    p.Meta.ID,
		questions: pool[:n:n],
		parts:     rewards.Parts{},
		phase:     PhaseAwaitingAnswer,
		table:     rewards.DefaultTable(),
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if n == 0 {
		s.phase = PhaseComplete
	}
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// PackID returns the id of the pack the questions were drawn from.
func (s *Session) PackID() string { return s.packID }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Questions returns a copy of the sampled questions in play order.
func (s *Session) Questions() []pack.Question { return slices.Clone(s.questions) }

// Correct returns the number of correct answers so far.
func (s *Session) Correct() int { return s.correct }

// Parts returns a copy of the parts earned so far.
func (s *Session) Parts() rewards.Parts { return s.parts.Clone() }

// Done reports whether the session is complete.
func (s *Session) Done() bool { return s.phase == PhaseComplete }

// Progress returns how many questions have been answered and the total.
func (s *Session) Progress() (answered, total int) {
	answered = s.index
	if s.phase == PhaseAnswered {
		answered++
	}
	return answered, len(s.questions)
}

// Position returns the zero-based index of the current question.
func (s *Session) Position() int { return s.index }

// Current returns the question being shown. It is false once complete.
func (s *Session) Current() (pack.Question, bool) {
	if s.phase == PhaseComplete || s.index >= len(s.questions) {
		return pack.Question{}, false
	}
	return s.questions[s.index], true
}

// LastAnswer returns the result of the most recent answer, if any.
func (s *Session) LastAnswer() (AnswerResult, bool) {
	if s.last == nil {
		return AnswerResult{}, false
	}
	return *s.last, true
}

// SubmitAnswer judges an answer to the current question, credits rewards
// and locks the question. Only one answer per question is accepted.
func (s *Session) SubmitAnswer(raw string) (AnswerResult, error) {
	if s.phase != PhaseAwaitingAnswer {
		return AnswerResult{}, &StateError{Op: "submit an answer", Phase: s.phase}
	}
	q := s.questions[s.index]

	ok := CheckAnswer(raw, q)
	if ok {
		s.correct++
	}
	g, granted := s.table.Apply(s.parts, q.RewardDifficulty(), ok)

	res := AnswerResult{
		QuestionID: q.ID,
		Submitted:  raw,
		Correct:    ok,
		Expected:   q.Answer,
		Explain:    q.Explain,
		Grant:      g,
		Granted:    granted,
	}
	s.last = &res
	s.phase = PhaseAnswered
	return res, nil
}

// Advance moves past an answered question. After the last question the
// session becomes complete and no longer changes.
func (s *Session) Advance() error {
	if s.phase != PhaseAnswered {
		return &StateError{Op: "advance", Phase: s.phase}
	}
	if s.index+1 >= len(s.questions) {
		s.index = len(s.questions)
		s.phase = PhaseComplete
		return nil
	}
	s.index++
	s.phase = PhaseAwaitingAnswer
	return nil
}

// CheckAnswer reports whether submitted matches the question's answer
// after normalization. Multiple-choice and fill questions compare the same
// way: exact equality of the normalized strings.
func CheckAnswer(submitted string, q pack.Question) bool {
	return pack.Normalize(submitted) == pack.Normalize(q.Answer)
}
