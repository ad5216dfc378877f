package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
)

const queueSize = 256

// NotificationWorker drains lifecycle events onto a background goroutine
// so notification delivery never sits on the request path. A full queue
// drops the event with a warning rather than blocking the publisher.
type NotificationWorker struct {
	notifications *service.NotificationService
	logger        *zap.Logger
	queue         chan events.Event
	wg            sync.WaitGroup
}

// StartNotificationWorker subscribes the worker and starts its drain loop.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService, logger *zap.Logger) *NotificationWorker {
	w := &NotificationWorker{
		notifications: notifications,
		logger:        logger,
		queue:         make(chan events.Event, queueSize),
	}

	for _, eventType := range notifications.HandledEvents() {
		dispatcher.Subscribe(eventType, w.enqueue)
	}

	w.wg.Add(1)
	go w.run()
	return w
}

// Stop drains the queue and waits for in-flight work.
func (w *NotificationWorker) Stop() {
	close(w.queue)
	w.wg.Wait()
}

func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("notification queue full, dropping event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}
	return nil
}

func (w *NotificationWorker) run() {
	defer w.wg.Done()
	// Publisher request contexts may already be canceled by the time an
	// event is drained, so handlers run against the background context.
	for event := range w.queue {
		if err := w.notifications.Handle(context.Background(), event); err != nil {
			w.logger.Warn("notification handler failed",
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
				zap.Error(err))
		}
	}
}
