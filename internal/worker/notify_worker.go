// Package worker drains the notification queue. Actual on-device delivery
// belongs to the surrounding application; this worker only acknowledges and
// records that each event left the engine.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/amqp"
)

// NotifyWorker handles notification events published by the ledger service.
type NotifyWorker struct {
	client *amqp.Client
}

func NewNotifyWorker(client *amqp.Client) *NotifyWorker {
	return &NotifyWorker{client: client}
}

// Run consumes notification messages until ctx is cancelled.
func (w *NotifyWorker) Run(ctx context.Context) error {
	return w.client.ConsumeNotifications(ctx, func(msg *amqp.NotificationMessage) error {
		return w.handle(ctx, msg)
	})
}

func (w *NotifyWorker) handle(ctx context.Context, msg *amqp.NotificationMessage) error {
	slog.InfoContext(ctx, "Notification dispatched",
		"id", msg.ID,
		"message", msg.Message,
		"queued_for", time.Since(msg.Published).String())
	return nil
}
