package llm

import (
	"context"
	"log"
	"time"

	"github.com/abhisek/dungeonquiz/internal/store"
)

// LoggingProvider logs one line per completion and appends it to the
// request log. Either sink may be nil.
type LoggingProvider struct {
	inner    Provider
	name     string
	logger   *log.Logger
	requests store.RequestLog
}

func WithLogging(p Provider, name string, logger *log.Logger, requests store.RequestLog) *LoggingProvider {
	return &LoggingProvider{inner: p, name: name, logger: logger, requests: requests}
}

func (l *LoggingProvider) Model() string { return l.inner.Model() }

func (l *LoggingProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	c, err := l.inner.Complete(ctx, p)

	rec := store.LLMRequestData{
		Provider:  l.name,
		Model:     l.inner.Model(),
		Purpose:   p.Purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if c != nil {
		if c.Model != "" {
			rec.Model = c.Model
		}
		rec.InputTokens, rec.OutputTokens = c.Tokens.In, c.Tokens.Out
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	if l.logger != nil {
		if err != nil {
			l.logger.Printf("llm %s/%s %s failed after %dms: %v", l.name, rec.Model, p.Purpose, rec.LatencyMs, err)
		} else {
			l.logger.Printf("llm %s/%s %s ok in %dms (%d in, %d out)",
				l.name, rec.Model, p.Purpose, rec.LatencyMs, rec.InputTokens, rec.OutputTokens)
		}
	}
	if l.requests != nil {
		// The detached context lets a failed-by-cancel call still be recorded.
		if lerr := l.requests.AppendLLMRequest(context.WithoutCancel(ctx), rec); lerr != nil && l.logger != nil {
			l.logger.Printf("warning: request log: %v", lerr)
		}
	}
	return c, err
}
