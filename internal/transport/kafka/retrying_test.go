package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courier-dispatch/internal/service/events"
	"courier-dispatch/internal/testutil/testlog"
)

type flakyPublisher struct {
	failures int
	calls    int
	closed   bool
}

func (f *flakyPublisher) Publish(_ context.Context, _ events.StatusEvent) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("broker unavailable")
	}
	return nil
}

func (f *flakyPublisher) Close() error {
	f.closed = true
	return nil
}

type fakeCounter struct{ n int }

func (c *fakeCounter) Inc() { c.n++ }

func testEvent() events.StatusEvent {
	return events.StatusEvent{OrderID: 1, Status: "Delivered", ChangedBy: "admin@example.com", OccurredAt: time.Now()}
}

func TestRetryingPublisher_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()

	next := &flakyPublisher{failures: 2}
	retries := &fakeCounter{}
	p := NewRetryingPublisher(next, testlog.New().Logger(), retries, RetryConfig{
		MaxAttempts: 4,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
	})

	err := p.Publish(context.Background(), testEvent())
	require.NoError(t, err)
	require.Equal(t, 3, next.calls)
	require.Equal(t, 2, retries.n)
}

func TestRetryingPublisher_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	next := &flakyPublisher{failures: 10}
	p := NewRetryingPublisher(next, nil, nil, RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    time.Millisecond,
	})

	err := p.Publish(context.Background(), testEvent())
	require.Error(t, err)
	require.Equal(t, 3, next.calls)
}

func TestRetryingPublisher_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	next := &flakyPublisher{failures: 10}
	p := NewRetryingPublisher(next, nil, nil, RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		MaxDelay:    time.Millisecond,
	})

	err := p.Publish(ctx, testEvent())
	require.Error(t, err)
	require.Equal(t, 1, next.calls)
}

func TestRetryingPublisher_NilWhenDisabled(t *testing.T) {
	t.Parallel()

	p := NewRetryingPublisher(nil, nil, nil, RetryConfig{MaxAttempts: 3})
	require.Nil(t, p)
	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.NoError(t, p.Close())
}

func TestRetryingPublisher_CloseClosesWrapped(t *testing.T) {
	t.Parallel()

	next := &flakyPublisher{}
	p := NewRetryingPublisher(next, nil, nil, RetryConfig{MaxAttempts: 1})
	require.NoError(t, p.Close())
	require.True(t, next.closed)
}

func TestBackoff_IsBoundedByMaxDelay(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	max := 500 * time.Millisecond

	require.Equal(t, 100*time.Millisecond, backoff(base, max, 1))
	require.Equal(t, 200*time.Millisecond, backoff(base, max, 2))
	require.Equal(t, 400*time.Millisecond, backoff(base, max, 3))
	require.Equal(t, max, backoff(base, max, 4))
	require.Equal(t, max, backoff(base, max, 10))
}
