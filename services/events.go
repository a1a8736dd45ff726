package services

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventPublisher emits order lifecycle events for downstream consumers
// (notifications, analytics). Publishing is best-effort: the order mutation
// has already been persisted when an event goes out.
type EventPublisher interface {
	PublishOrderEvent(orderID uint, eventType string) error
	Close()
}

// OrderEvent is the wire form of a lifecycle event
type OrderEvent struct {
	OrderID   uint      `json:"order_id"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

// NopPublisher drops all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(orderID uint, eventType string) error { return nil }
func (NopPublisher) Close()                                                {}

// RabbitMQPublisher publishes order events to a durable fanout exchange
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewRabbitMQPublisher connects to the broker and declares the exchange
func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, err
	}

	return &RabbitMQPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// PublishOrderEvent sends a persistent JSON message for the given order
func (r *RabbitMQPublisher) PublishOrderEvent(orderID uint, eventType string) error {
	body, err := json.Marshal(OrderEvent{
		OrderID:   orderID,
		Event:     eventType,
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}

	return r.channel.Publish(
		r.exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
		},
	)
}

// Close shuts down the channel and connection
func (r *RabbitMQPublisher) Close() {
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			return
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return
		}
	}
}
