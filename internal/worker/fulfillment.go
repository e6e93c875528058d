package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kiddovents/kiddovents/internal/queue"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const defaultTimeout = 30 * time.Second

type deliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

type ticketFulfiller interface {
	FulfillByCode(ctx context.Context, code string) error
}

// FulfillmentWorker consumes ticket.fulfill messages. A message is handled
// once: failures are rejected without requeue.
type FulfillmentWorker struct {
	source    deliverySource
	fulfiller ticketFulfiller
	timeout   time.Duration
	logger    logger.Logger
}

func New(
	source deliverySource,
	fulfiller ticketFulfiller,
	timeout time.Duration,
	logger logger.Logger,
) *FulfillmentWorker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FulfillmentWorker{
		source:    source,
		fulfiller: fulfiller,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start blocks until ctx is cancelled or the delivery channel closes.
func (w *FulfillmentWorker) Start(ctx context.Context) error {
	msgs, err := w.source.Deliveries(ctx)
	if err != nil {
		return err
	}

	w.logger.Info("fulfillment worker started",
		logger.Duration("timeout", w.timeout),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("fulfillment worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				w.logger.Warn("delivery channel closed, fulfillment worker stopped")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *FulfillmentWorker) handle(ctx context.Context, d amqp.Delivery) {
	var msg queue.TicketMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil || msg.ConfirmationCode == "" {
		w.logger.Error("invalid ticket message, dropped",
			logger.String("message_id", d.MessageId),
		)
		w.reject(d)
		return
	}

	hctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.fulfiller.FulfillByCode(hctx, msg.ConfirmationCode); err != nil {
		w.logger.Error("failed to fulfill ticket",
			logger.String("booking_id", msg.BookingID),
			logger.String("error", err.Error()),
		)
		w.reject(d)
		return
	}

	if err := d.Ack(false); err != nil {
		w.logger.Error("failed to ack ticket message",
			logger.String("booking_id", msg.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (w *FulfillmentWorker) reject(d amqp.Delivery) {
	if err := d.Nack(false, false); err != nil {
		w.logger.Error("failed to reject ticket message",
			logger.String("error", err.Error()),
		)
	}
}
