package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bestcobb/orderapi/internal/domain/model"
)

// Notifier exposes the subset of application functionality required by the dispatcher.
type Notifier interface {
	Notify(ctx context.Context, order model.Order) (admin, customer model.NotificationOutcome)
}

// NotifyDispatcher delivers order notifications off the request path through
// a bounded queue and a small worker pool. Delivery is best-effort: a full
// queue drops the job, shutdown abandons in-flight attempts.
type NotifyDispatcher struct {
	notifier Notifier
	workers  int
	logger   *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifyDispatcher constructs the notification worker pool.
func NewNotifyDispatcher(notifier Notifier, workers, queueSize int, logger *slog.Logger) *NotifyDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &NotifyDispatcher{
		notifier: notifier,
		workers:  workers,
		logger:   logger,
		jobs:     make(chan model.Order, queueSize),
	}
}

// Start launches background delivery workers.
func (d *NotifyDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop cancels in-flight deliveries and waits for workers to exit.
func (d *NotifyDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue hands an order to the delivery queue without blocking. Returns
// false when the queue is full and the notification is dropped.
func (d *NotifyDispatcher) Enqueue(order model.Order) bool {
	select {
	case d.jobs <- order:
		return true
	default:
		d.logger.Warn("notification queue full, dropping order notifications",
			slog.String("order", order.ID),
		)
		return false
	}
}

func (d *NotifyDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, order)
		}
	}
}

func (d *NotifyDispatcher) deliver(ctx context.Context, order model.Order) {
	admin, customer := d.notifier.Notify(ctx, order)
	d.logger.Info("order notifications processed",
		slog.String("order", order.ID),
		slog.String("admin_channel", string(admin.Channel)),
		slog.Bool("admin_delivered", admin.Delivered),
		slog.String("customer_channel", string(customer.Channel)),
		slog.Bool("customer_delivered", customer.Delivered),
	)
}
