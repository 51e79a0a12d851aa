package kafka

import (
	"context"
	"io"
	"time"

	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/service/events"
)

type publisher interface {
	Publish(ctx context.Context, ev events.StatusEvent) error
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingPublisher behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingPublisher retries failed publishes with bounded exponential
// backoff. It only ever delays the event side channel, never a database
// call or an HTTP response.
type RetryingPublisher struct {
	next    publisher
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingPublisher wraps next with retry behavior. Returns nil when
// next is nil so a disabled publisher stays disabled.
func NewRetryingPublisher(next publisher, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingPublisher {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingPublisher{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Publish sends the event, retrying on failure up to MaxAttempts.
func (p *RetryingPublisher) Publish(ctx context.Context, ev events.StatusEvent) error {
	if p == nil {
		return nil
	}
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, ev)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts {
			break
		}

		delay := backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("status event publish retry",
			logx.Int64("order_id", ev.OrderID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// Close closes the wrapped publisher if it supports closing.
func (p *RetryingPublisher) Close() error {
	if p == nil {
		return nil
	}
	if c, ok := p.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
