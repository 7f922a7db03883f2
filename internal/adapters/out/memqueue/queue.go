// Package memqueue provides the in-process implementation of the background
// notification queue. Each notification kind gets its own named queue backed
// by a buffered channel and a pool of workers delivering through the
// Notifier. Delivery is at-least-once: a failed send is logged and requeued,
// never dropped and never surfaced to the producer.
package memqueue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
)

const (
	defaultBufferSize  = 64
	defaultWorkers     = 2
	defaultSendTimeout = 30 * time.Second
)

// Queue dispatches notifications to background workers, one named queue per
// notification kind. Implements ports.NotificationQueue.
type Queue struct {
	notifier    ports.Notifier
	logger      *slog.Logger
	sendTimeout time.Duration

	queues map[notification.Kind]chan notification.Notification
	wg     sync.WaitGroup

	mu     sync.Mutex
	parked []notification.Notification
	closed bool
}

// Option configures a Queue.
type Option func(*config)

type config struct {
	bufferSize  int
	workers     int
	sendTimeout time.Duration
}

// WithBufferSize sets the capacity of each named queue.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// WithWorkers sets the number of delivery workers per named queue.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithSendTimeout bounds a single delivery attempt.
func WithSendTimeout(d time.Duration) Option {
	return func(c *config) {
		c.sendTimeout = d
	}
}

// NewQueue creates the named queues and starts their worker pools.
func NewQueue(notifier ports.Notifier, logger *slog.Logger, opts ...Option) *Queue {
	cfg := config{
		bufferSize:  defaultBufferSize,
		workers:     defaultWorkers,
		sendTimeout: defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &Queue{
		notifier:    notifier,
		logger:      logger.With("component", "notification_queue"),
		sendTimeout: cfg.sendTimeout,
		queues:      make(map[notification.Kind]chan notification.Notification),
	}

	for _, kind := range notification.Kinds() {
		ch := make(chan notification.Notification, cfg.bufferSize)
		q.queues[kind] = ch

		for i := 0; i < cfg.workers; i++ {
			q.wg.Add(1)
			go q.worker(ch)
		}
	}

	return q
}

// Enqueue accepts a notification into its named queue. It never blocks: a
// closed queue or a full buffer rejects the notification with an error so the
// producing transaction can roll back.
func (q *Queue) Enqueue(_ context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	ch, ok := q.queues[n.Kind()]
	if !ok {
		return errs.NewValueIsInvalidError("notification kind")
	}

	// The mutex serializes sends with Close so intake never races a
	// channel close.
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return errs.NewConflictError("the notification queue is closed")
	}

	select {
	case ch <- n:
		return nil
	default:
		return errs.NewConflictError("the notification queue is full")
	}
}

// RedeliverParked moves parked notifications back into their queues. Jobs
// that still do not fit stay parked for the next sweep.
func (q *Queue) RedeliverParked(ctx context.Context) int {
	q.mu.Lock()
	pending := q.parked
	q.parked = nil
	q.mu.Unlock()

	redelivered := 0
	for _, n := range pending {
		if err := q.Enqueue(ctx, n); err != nil {
			q.park(n)
			continue
		}
		redelivered++
	}

	return redelivered
}

// Close stops intake and waits for the workers to drain their queues.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	for _, ch := range q.queues {
		close(ch)
	}
	q.wg.Wait()
}

func (q *Queue) worker(ch <-chan notification.Notification) {
	defer q.wg.Done()

	for n := range ch {
		q.deliver(n)
	}
}

// deliver runs one delivery attempt. A failed attempt is requeued without
// blocking the worker; when the queue has no room the job is parked for the
// redelivery sweep.
func (q *Queue) deliver(n notification.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), q.sendTimeout)
	defer cancel()

	kind := n.Kind()
	err := q.notifier.Send(ctx, n.To(), kind.Template(), kind.Subject(), n.Context())
	if err == nil {
		return
	}

	q.logger.ErrorContext(ctx, "Notification delivery failed",
		"queue", string(kind),
		"order_id", n.OrderID().String(),
		"error", err,
	)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.parked = append(q.parked, n)
		return
	}

	select {
	case q.queues[kind] <- n:
	default:
		q.parked = append(q.parked, n)
	}
}

func (q *Queue) park(n notification.Notification) {
	q.mu.Lock()
	q.parked = append(q.parked, n)
	q.mu.Unlock()
}
