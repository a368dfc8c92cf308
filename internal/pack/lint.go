package pack

import (
	"fmt"
	"strings"
)

// Severity ranks a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a pack.
type Issue struct {
	QuestionID string
	Validator  string
	Severity   Severity
	Message    string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s/%s] %s", i.QuestionID, i.Severity, i.Validator, i.Message)
}

// Validator checks a single question.
type Validator interface {
	Name() string
	Validate(q Question) *Issue
}

// DefaultValidators returns the standard chain, in the order it runs.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&ChoicesValidator{},
		&AnswerValidator{},
		&DifficultyValidator{},
	}
}

// Lint runs the default validator chain over every question, plus the
// pack-wide unique id check. The pack is not modified. Each question
// reports at most one issue per validator.
func Lint(p *Pack) []Issue {
	return LintWith(p, DefaultValidators())
}

// LintWith is Lint with a custom validator chain.
func LintWith(p *Pack, validators []Validator) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(p.Questions))
	for _, q := range p.Questions {
		if q.ID != "" {
			if seen[q.ID] {
				issues = append(issues, Issue{
					QuestionID: q.ID,
					Validator:  "unique-id",
					Severity:   SeverityError,
					Message:    "id is used by an earlier question",
				})
			}
			seen[q.ID] = true
		}
		for _, v := range validators {
			if issue := v.Validate(q); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error rather than a warning.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// StructuralValidator checks required fields and the question type.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *Issue {
	switch {
	case q.ID == "":
		return v.issue(q, "id is empty")
	case strings.TrimSpace(q.Prompt) == "":
		return v.issue(q, "prompt is empty")
	case q.Type != TypeMCQ && q.Type != TypeFill:
		return v.issue(q, fmt.Sprintf("type must be %q or %q", TypeMCQ, TypeFill))
	}
	return nil
}

func (v *StructuralValidator) issue(q Question, msg string) *Issue {
	return &Issue{QuestionID: q.ID, Validator: v.Name(), Severity: SeverityError, Message: msg}
}

// ChoicesValidator checks that multiple-choice questions offer at least two
// non-empty choices.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(q Question) *Issue {
	if q.Type != TypeMCQ {
		return nil
	}
	if len(q.Choices) < 2 {
		return &Issue{QuestionID: q.ID, Validator: v.Name(), Severity: SeverityError,
			Message: fmt.Sprintf("mcq needs at least 2 choices, has %d", len(q.Choices))}
	}
	for i, c := range q.Choices {
		if strings.TrimSpace(c) == "" {
			return &Issue{QuestionID: q.ID, Validator: v.Name(), Severity: SeverityError,
				Message: fmt.Sprintf("choice %d is empty", i+1)}
		}
	}
	return nil
}

// AnswerValidator checks that an answer is set and, for multiple choice,
// matches one of the choices after normalization.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(q Question) *Issue {
	answer := Normalize(q.Answer)
	if answer == "" {
		return &Issue{QuestionID: q.ID, Validator: v.Name(), Severity: SeverityWarning,
			Message: "answer is not filled in yet"}
	}
	if q.Type != TypeMCQ {
		return nil
	}
	for _, c := range q.Choices {
		if Normalize(c) == answer {
			return nil
		}
	}
	return &Issue{QuestionID: q.ID, Validator: v.Name(), Severity: SeverityError,
		Message: fmt.Sprintf("answer %q is not one of the choices", q.Answer)}
}

// DifficultyValidator flags difficulties outside 1..5. Such questions still
// play but earn nothing when answered correctly.
type DifficultyValidator struct{}

func (v *DifficultyValidator) Name() string { return "difficulty" }

func (v *DifficultyValidator) Validate(q Question) *Issue {
	if q.Difficulty == 0 || (q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty) {
		return nil
	}
	return &Issue{QuestionID: q.ID, Validator: v.Name(), Severity: SeverityWarning,
		Message: fmt.Sprintf("difficulty %d is outside %d..%d and earns no reward", q.Difficulty, MinDifficulty, MaxDifficulty)}
}

// Normalize prepares an answer for comparison: surrounding whitespace is
// trimmed and letters are lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
