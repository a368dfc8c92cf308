package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider retries failed completions with capped exponential backoff.
//
// Unavailable and rate-limited errors are retried until MaxAttempts runs
// out. A malformed reply is retried once. Truncation and context errors are
// returned at once.
type RetryProvider struct {
	inner   Provider
	cfg     RetryConfig
	timeout time.Duration

	sleep func(context.Context, time.Duration) error
}

// WithRetry wraps p. A positive timeout bounds each Complete call,
// retries included.
func WithRetry(p Provider, cfg RetryConfig, timeout time.Duration) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, cfg: cfg, timeout: timeout, sleep: sleepCtx}
}

func (r *RetryProvider) Model() string { return r.inner.Model() }

func (r *RetryProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	malformedSeen := false
	var err error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var c *Completion
		c, err = r.inner.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var le *Error
		if !errors.As(err, &le) {
			le = &Error{Kind: KindUnavailable}
		}
		switch le.Kind {
		case KindTruncated:
			return nil, err
		case KindMalformed:
			if malformedSeen {
				return nil, err
			}
			malformedSeen = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		wait := le.RetryAfter
		if wait <= 0 {
			wait = r.backoff(attempt)
		}
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

// backoff is InitialWait * Multiplier^attempt, capped at MaxWait, with
// 20% jitter either way.
func (r *RetryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.cfg.InitialWait)
	for range attempt {
		wait *= r.cfg.Multiplier
	}
	if r.cfg.MaxWait > 0 {
		wait = min(wait, float64(r.cfg.MaxWait))
	}
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
