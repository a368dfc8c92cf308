package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies provider failures for the retry policy.
type ErrorKind int

const (
	KindUnavailable ErrorKind = iota // Network failure, 5xx or any unclassified error
	KindRateLimited                  // HTTP 429
	KindMalformed                    // Reply is not JSON or does not match the schema
	KindTruncated                    // Reply hit the token limit
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindMalformed:
		return "malformed reply"
	case KindTruncated:
		return "truncated reply"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every provider.
type Error struct {
	Kind     ErrorKind
	Provider string

	// RetryAfter is the server's requested wait, zero when not given.
	RetryAfter time.Duration

	// Content holds the offending reply for malformed and truncated errors.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("llm %s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("llm %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// statusError maps an HTTP status from a provider SDK to an *Error.
func statusError(provider string, status int, err error) *Error {
	kind := KindUnavailable
	if status == http.StatusTooManyRequests {
		kind = KindRateLimited
	}
	return &Error{Kind: kind, Provider: provider, Err: err}
}

func malformed(provider string, content json.RawMessage, err error) *Error {
	return &Error{Kind: KindMalformed, Provider: provider, Content: content, Err: err}
}
