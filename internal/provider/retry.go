package provider

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"sintese/internal/port"
)

// RetryCompleter wraps a TextCompleter and retries exactly once after a rate
// limit, waiting the Retry-After the provider suggested or a configured
// fallback. Any other error passes through untouched.
type RetryCompleter struct {
	inner port.TextCompleter
	wait  time.Duration
	log   *zap.Logger
}

// NewRetryCompleter wraps inner with single-retry rate-limit handling.
// fallbackWait is used when the provider sends no usable Retry-After.
func NewRetryCompleter(inner port.TextCompleter, fallbackWait time.Duration, log *zap.Logger) *RetryCompleter {
	if log == nil {
		log = zap.NewNop()
	}
	return &RetryCompleter{inner: inner, wait: fallbackWait, log: log}
}

func (r *RetryCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := r.inner.Complete(ctx, prompt)
	var rlErr *RateLimitError
	if err == nil || !errors.As(err, &rlErr) {
		return out, err
	}

	wait := rlErr.RetryAfter
	if wait <= 0 {
		wait = r.wait
	}
	r.log.Warn("rate limited, waiting before single retry",
		zap.String("provider", rlErr.Provider),
		zap.Duration("wait", wait))

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	return r.inner.Complete(ctx, prompt)
}
