package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu   sync.Mutex
	sent []string
}

func (c *collector) Notify(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, text)
	return nil
}

// blocker holds every delivery until release is closed.
type blocker struct {
	release chan struct{}
}

func (b *blocker) Notify(ctx context.Context, text string) error {
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestQueueDeliversInOrder(t *testing.T) {
	next := &collector{}
	queue := NewQueue(next, 8, time.Second)

	require.NoError(t, queue.Notify(context.Background(), "first"))
	require.NoError(t, queue.Notify(context.Background(), "second"))
	require.NoError(t, queue.Close(context.Background()))

	assert.Equal(t, []string{"first", "second"}, next.sent)
	assert.ErrorIs(t, queue.Notify(context.Background(), "late"), ErrQueueClosed)
}

func TestQueueSurvivesCanceledCaller(t *testing.T) {
	next := &collector{}
	queue := NewQueue(next, 1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, queue.Notify(ctx, "after cancel"))
	cancel()

	require.NoError(t, queue.Close(context.Background()))
	assert.Equal(t, []string{"after cancel"}, next.sent)
}

func TestQueueDropsWhenFull(t *testing.T) {
	next := &blocker{release: make(chan struct{})}
	queue := NewQueue(next, 1, time.Minute)

	// The worker takes at most one item, so the third must overflow.
	var overflowed bool
	for range 3 {
		if err := queue.Notify(context.Background(), "x"); err != nil {
			assert.ErrorIs(t, err, ErrQueueFull)
			overflowed = true
		}
	}
	assert.True(t, overflowed)

	close(next.release)
	require.NoError(t, queue.Close(context.Background()))
}

func TestQueueDoesNotWaitForSlowSlack(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer srv.Close()
	defer close(release)

	queue := NewQueue(NewSlack("xoxb-test", "C123", slack.OptionAPIURL(srv.URL+"/")), 4, 50*time.Millisecond)

	start := time.Now()
	require.NoError(t, queue.Notify(context.Background(), "E001: Leave applied for 1 day(s)."))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	// The delivery times out instead of holding the worker forever.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, queue.Close(ctx))
}
