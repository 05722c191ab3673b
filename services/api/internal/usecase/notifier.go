package usecase

import (
	"context"
	"time"

	"portfolio/pkg/logger"
	"portfolio/pkg/queue"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeNotifier is told about every successful collection write.
// Failures are logged and never fail the write.
type ChangeNotifier interface {
	ContentChanged(ctx context.Context, collection, action, id string)
}

type NopNotifier struct{}

func (NopNotifier) ContentChanged(context.Context, string, string, string) {}

type EventPublisher interface {
	PublishContentChanged(ctx context.Context, event queue.ContentChanged) error
}

type Revalidator interface {
	Trigger(ctx context.Context, collection string) error
}

type queueNotifier struct {
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewQueueNotifier publishes content-change events to the message broker.
func NewQueueNotifier(publisher EventPublisher, logger *logger.Logger) ChangeNotifier {
	return &queueNotifier{publisher: publisher, logger: logger, now: time.Now}
}

func (n *queueNotifier) ContentChanged(ctx context.Context, collection, action, id string) {
	// Detached from the request: the write has already been committed.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	event := queue.ContentChanged{
		Collection: collection,
		Action:     action,
		ID:         id,
		OccurredAt: n.now().UTC(),
	}
	if err := n.publisher.PublishContentChanged(publishCtx, event); err != nil {
		n.logger.Error("Failed to publish content change for %s: %v", collection, err)
	}
}

type webhookNotifier struct {
	revalidator Revalidator
	logger      *logger.Logger
	timeout     time.Duration
	done        func()
}

// NewWebhookNotifier calls the frontend revalidation hook in the background.
func NewWebhookNotifier(revalidator Revalidator, logger *logger.Logger) ChangeNotifier {
	return &webhookNotifier{revalidator: revalidator, logger: logger, timeout: 15 * time.Second}
}

func (n *webhookNotifier) ContentChanged(ctx context.Context, collection, action, id string) {
	go func() {
		if n.done != nil {
			defer n.done()
		}
		triggerCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()

		if err := n.revalidator.Trigger(triggerCtx, collection); err != nil {
			n.logger.Warn("Revalidation for %s after %s failed: %v", collection, action, err)
			return
		}
		n.logger.Info("Revalidation triggered for %s", collection)
	}()
}
