package calendar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/booking-page/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher pushes confirmed bookings to the calendar queue.
type Publisher struct {
	channel *amqp.Channel
	queue   string
	timeout time.Duration
}

func NewPublisher(ch *amqp.Channel, queue string, timeout time.Duration) *Publisher {
	return &Publisher{
		channel: ch,
		queue:   queue,
		timeout: timeout,
	}
}

// DeclareQueue makes sure the durable queue exists before anything is published or consumed.
func DeclareQueue(ch *amqp.Channel, queue string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		queue,
		true,  // durable
		false, // keep the queue when no consumer is attached
		false, // shared between api and worker
		false,
		nil,
	)
}

func (p *Publisher) Publish(event *domain.CalendarEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// the request may already be gone, the event outlives it
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		"",
		p.queue,
		true,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.BookingID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}
