package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrQueueFull is returned when an announcement is dropped because the
// queue has no room left.
var ErrQueueFull = errors.New("notification queue is full")

// ErrQueueClosed is returned by Notify after Close.
var ErrQueueClosed = errors.New("notification queue is closed")

type delivery struct {
	ctx  context.Context
	text string
}

// Queue hands announcements to a background worker so callers never wait on
// the wrapped Notifier. Each delivery is bounded by timeout.
type Queue struct {
	next    Notifier
	timeout time.Duration
	pending chan delivery

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewQueue starts a worker delivering to next. size bounds the number of
// announcements waiting for delivery.
func NewQueue(next Notifier, size int, timeout time.Duration) *Queue {
	q := &Queue{
		next:    next,
		timeout: timeout,
		pending: make(chan delivery, max(size, 1)),
		done:    make(chan struct{}),
	}

	go q.run()

	return q
}

// Notify implements Notifier. It never blocks: a full queue drops the
// announcement and reports ErrQueueFull.
func (q *Queue) Notify(ctx context.Context, text string) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.pending <- delivery{ctx: context.WithoutCancel(ctx), text: text}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting announcements and waits for the queued ones to be
// delivered or for ctx to end.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.pending)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) run() {
	defer close(q.done)

	for d := range q.pending {
		ctx, cancel := context.WithTimeout(d.ctx, q.timeout)
		if err := q.next.Notify(ctx, d.text); err != nil {
			log.Warn("Could not deliver notification", "error", err)
		}
		cancel()
	}
}
