// Package queue carries paid bookings to the fulfillment worker over RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kiddovents/kiddovents/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingTicketFulfill = "ticket.fulfill"

// TicketMessage is the body of a ticket.fulfill message.
type TicketMessage struct {
	BookingID        string    `json:"booking_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	PaidAt           time.Time `json:"paid_at"`
}

type Broker struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
}

// New declares a durable topic exchange and a queue bound to ticket.fulfill.
func New(url, exchange, queue string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	b := &Broker{conn: conn, ch: ch, exchange: exchange, queue: queue}
	if err = b.declare(); err != nil {
		_ = b.Close()
		return nil, err
	}

	return b, nil
}

func (b *Broker) declare() error {
	if err := b.ch.ExchangeDeclare(b.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	q, err := b.ch.QueueDeclare(b.queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err = b.ch.QueueBind(q.Name, RoutingTicketFulfill, b.exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s: %w", RoutingTicketFulfill, err)
	}
	if err = b.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	b.queue = q.Name
	return nil
}

// Dispatch publishes the booking for asynchronous fulfillment.
func (b *Broker) Dispatch(ctx context.Context, booking *domain.Booking) error {
	msg := TicketMessage{
		BookingID:        booking.ID,
		ConfirmationCode: booking.ConfirmationCode,
		PaidAt:           time.Now().UTC(),
	}
	if booking.PaidAt != nil {
		msg.PaidAt = *booking.PaidAt
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode ticket message: %w", err)
	}

	if err = b.ch.PublishWithContext(ctx, b.exchange, RoutingTicketFulfill, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    booking.ConfirmationCode,
		Timestamp:    time.Now(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish ticket message: %w", err)
	}

	return nil
}

func (b *Broker) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	return b.ch.ConsumeWithContext(ctx, b.queue, "", false, false, false, false, nil)
}

func (b *Broker) Close() error {
	if b.ch != nil {
		_ = b.ch.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
