package session

import (
	"errors"
	"fmt"
)

// Phase is where a session is in its question loop.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // A question is showing and accepts one answer
	PhaseAnswered                    // The answer is locked and feedback is showing
	PhaseComplete                    // Every question was answered; the session is frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting answer"
	case PhaseAnswered:
		return "answered"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrInvalidState is the sentinel wrapped by every *StateError.
var ErrInvalidState = errors.New("invalid session state")

// StateError reports an operation called in a phase that does not allow it,
// such as answering twice or advancing before answering. It signals a bug
// in the caller, not a recoverable condition.
type StateError struct {
	Op    string
	Phase Phase
}

func (e *StateError) Error() string {
	return fmt.Sprintf("session: cannot %s while %s", e.Op, e.Phase)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }
